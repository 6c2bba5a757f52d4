package domain

import "time"

// ClubCard is one club as presented in a list or detail view.
// The derived fields are computed fresh for every render.
type ClubCard struct {
	Club
	Urgency  Urgency `json:"urgency"`
	Badge    string  `json:"badge"`
	DaysLeft *int    `json:"daysLeft"`
	// DeadlineText is the formatted deadline shown in the detail view.
	DeadlineText string `json:"deadlineText"`
}

// NewClubCard derives the presentation fields of c relative to now.
func NewClubCard(c Club, now time.Time) ClubCard {
	return ClubCard{
		Club:         c,
		Urgency:      Classify(c, now),
		Badge:        Badge(c, now),
		DaysLeft:     DaysLeft(c, now),
		DeadlineText: FormatDeadline(c),
	}
}

// Views holds the three lists derived from one filter pass.
type Views struct {
	All        []ClubCard `json:"all"`
	Recruiting []ClubCard `json:"recruiting"`
	// Upcoming is always deadline ordered, regardless of the query's sort mode.
	Upcoming []ClubCard `json:"upcoming"`
}

// Facets lists the distinct categories and tags available as filter chips.
type Facets struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// LoadStatus is the lifecycle state of the directory's one-shot data load.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusFailed  LoadStatus = "failed"
)

// Summary describes the loaded data set for the page header.
type Summary struct {
	Status     LoadStatus `json:"status"`
	Total      int        `json:"total"`
	Recruiting int        `json:"recruiting"`
	Hint       string     `json:"hint"`
}

// Render is everything a presentation layer needs for one render cycle.
type Render struct {
	State    BrowserState `json:"state"`
	Summary  Summary      `json:"summary"`
	Views    Views        `json:"views"`
	Facets   Facets       `json:"facets"`
	Selected *ClubCard    `json:"selected"`
}
