package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

// clubResponse is the wire form of a domain.ClubCard.
type clubResponse struct {
	ID           string              `json:"id"`
	School       string              `json:"school"`
	Name         string              `json:"name"`
	OneLine      string              `json:"oneLine"`
	Categories   []string            `json:"categories"`
	Tags         []string            `json:"tags"`
	Recruiting   bool                `json:"recruiting"`
	RecruitEnd   *openapi_types.Date `json:"recruitEnd"`
	ApplyURL     string              `json:"applyUrl"`
	Description  string              `json:"description"`
	ActivityTime string              `json:"activityTime"`
	Location     string              `json:"location"`
	ContactURL   string              `json:"contactUrl"`
	Logo         string              `json:"logo"`
	Images       []string            `json:"images"`

	Urgency      domain.Urgency `json:"urgency"`
	Badge        string         `json:"badge"`
	DaysLeft     *int           `json:"daysLeft"`
	DeadlineText string         `json:"deadlineText"`
}

type renderResponse struct {
	Summary    domain.Summary `json:"summary"`
	Query      domain.Query   `json:"query"`
	SelectedID string         `json:"selectedId"`
	All        []clubResponse `json:"all"`
	Recruiting []clubResponse `json:"recruiting"`
	Upcoming   []clubResponse `json:"upcoming"`
	Facets     domain.Facets  `json:"facets"`
	Selected   *clubResponse  `json:"selected"`
}

type sessionResponse struct {
	ID           uuid.UUID      `json:"id"`
	URL          string         `json:"url"`
	CanGoBack    bool           `json:"canGoBack"`
	CanGoForward bool           `json:"canGoForward"`
	Render       renderResponse `json:"render"`
}

// --- mapping helpers --------------------------------------------------------

func cardToResponse(c domain.ClubCard) clubResponse {
	resp := clubResponse{
		ID:           c.ID,
		School:       c.School,
		Name:         c.Name,
		OneLine:      c.OneLine,
		Categories:   c.Categories,
		Tags:         c.Tags,
		Recruiting:   c.Recruiting,
		ApplyURL:     c.ApplyURL,
		Description:  c.Description,
		ActivityTime: c.ActivityTime,
		Location:     c.Location,
		ContactURL:   c.ContactURL,
		Logo:         c.Logo,
		Images:       c.Images,
		Urgency:      c.Urgency,
		Badge:        c.Badge,
		DaysLeft:     c.DaysLeft,
		DeadlineText: c.DeadlineText,
	}
	// The date is a calendar day; the zone only anchors it for encoding.
	if end, ok := c.Deadline(time.UTC); ok {
		resp.RecruitEnd = &openapi_types.Date{Time: end}
	}
	return resp
}

func cardsToResponse(cards []domain.ClubCard) []clubResponse {
	out := make([]clubResponse, len(cards))
	for i, c := range cards {
		out[i] = cardToResponse(c)
	}
	return out
}

func renderToResponse(r domain.Render) renderResponse {
	resp := renderResponse{
		Summary:    r.Summary,
		Query:      r.State.Query,
		SelectedID: r.State.SelectedID,
		All:        cardsToResponse(r.Views.All),
		Recruiting: cardsToResponse(r.Views.Recruiting),
		Upcoming:   cardsToResponse(r.Views.Upcoming),
		Facets:     r.Facets,
	}
	if r.Selected != nil {
		sel := cardToResponse(*r.Selected)
		resp.Selected = &sel
	}
	return resp
}

func sessionToResponse(v service.SessionView) sessionResponse {
	return sessionResponse{
		ID:           v.ID,
		URL:          v.URL,
		CanGoBack:    v.CanGoBack,
		CanGoForward: v.CanGoForward,
		Render:       renderToResponse(v.Render),
	}
}
