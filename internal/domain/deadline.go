package domain

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// calendarDatePattern is the only accepted shape for a recruitment deadline.
var calendarDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseCalendarDate parses a YYYY-MM-DD string into midnight of that day in loc.
// The second return value is false for any other shape and for dates that do
// not exist (e.g. "2024-02-30"). "No date" is a valid result, not an error.
func ParseCalendarDate(s string, loc *time.Location) (time.Time, bool) {
	if !calendarDatePattern.MatchString(s) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysUntil returns the number of calendar days from midnight of now to
// midnight of date, both in now's location. Positive means the date is in the
// future. The result is rounded so a DST shift of an hour cannot move it.
func DaysUntil(date, now time.Time) int {
	loc := now.Location()
	date = date.In(loc)
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// Urgency classifies how close a club's recruitment deadline is.
// The string values are the fixed display labels.
type Urgency string

const (
	UrgencyNotRecruiting Urgency = "not recruiting"
	UrgencyUnset         Urgency = "deadline unset"
	UrgencyClosed        Urgency = "closed"
	UrgencyUrgent        Urgency = "urgent"
	UrgencySoon          Urgency = "soon"
	UrgencyOpen          Urgency = "open"
)

// Urgency thresholds in days, both inclusive.
const (
	UrgentWithinDays = 3
	SoonWithinDays   = 10
)

// Deadline returns the parsed RecruitEnd of c in loc, if any.
func (c Club) Deadline(loc *time.Location) (time.Time, bool) {
	if c.RecruitEnd == nil {
		return time.Time{}, false
	}
	return ParseCalendarDate(*c.RecruitEnd, loc)
}

// Classify returns the deadline urgency of c relative to now.
// It depends on the current date and must not be cached on the record.
func Classify(c Club, now time.Time) Urgency {
	u, _ := classify(c, now)
	return u
}

// DaysLeft returns the days until c's deadline relative to now, or nil when
// c is not recruiting or has no usable deadline.
func DaysLeft(c Club, now time.Time) *int {
	if !c.Recruiting {
		return nil
	}
	d, ok := c.Deadline(now.Location())
	if !ok {
		return nil
	}
	n := DaysUntil(d, now)
	return &n
}

// Badge returns the short card badge text for c: "D-n" while the deadline is
// urgent or soon, the urgency label otherwise.
func Badge(c Club, now time.Time) string {
	u, days := classify(c, now)
	if u == UrgencyUrgent || u == UrgencySoon {
		return fmt.Sprintf("D-%d", days)
	}
	return string(u)
}

// FormatDeadline returns the human-readable deadline used by the detail view.
func FormatDeadline(c Club) string {
	if !c.Recruiting {
		return string(UrgencyNotRecruiting)
	}
	if c.RecruitEnd == nil || *c.RecruitEnd == "" {
		return string(UrgencyUnset)
	}
	return *c.RecruitEnd
}

func classify(c Club, now time.Time) (Urgency, int) {
	if !c.Recruiting {
		return UrgencyNotRecruiting, 0
	}
	d, ok := c.Deadline(now.Location())
	if !ok {
		return UrgencyUnset, 0
	}
	days := DaysUntil(d, now)
	switch {
	case days < 0:
		return UrgencyClosed, days
	case days <= UrgentWithinDays:
		return UrgencyUrgent, days
	case days <= SoonWithinDays:
		return UrgencySoon, days
	default:
		return UrgencyOpen, days
	}
}
