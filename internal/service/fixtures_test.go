package service_test

import (
	"time"

	"golang.org/x/text/language"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

// fixedNow is the "today" every engine in this package's tests sees.
var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newEngine() *service.Engine {
	return service.NewEngine(language.Und, func() time.Time { return fixedNow })
}

func strPtr(s string) *string { return &s }

// club builds a normalized club; opts tweak fields after the defaults.
func club(id, school, name string, opts ...func(*domain.Club)) domain.Club {
	c := domain.Club{ID: id, School: school, Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c.Normalized()
}

func recruiting(end string) func(*domain.Club) {
	return func(c *domain.Club) {
		c.Recruiting = true
		if end != "" {
			c.RecruitEnd = strPtr(end)
		}
	}
}

func deadline(end string) func(*domain.Club) {
	return func(c *domain.Club) { c.RecruitEnd = strPtr(end) }
}

func categories(v ...string) func(*domain.Club) {
	return func(c *domain.Club) { c.Categories = v }
}

func tags(v ...string) func(*domain.Club) {
	return func(c *domain.Club) { c.Tags = v }
}

func ids(clubs []domain.Club) []string {
	out := make([]string, len(clubs))
	for i, c := range clubs {
		out[i] = c.ID
	}
	return out
}

func cardIDs(cards []domain.ClubCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// staticSet is a ClubSet over a fixed slice, always ready.
type staticSet []domain.Club

func (s staticSet) Clubs() []domain.Club { return s }

func (s staticSet) Summary() domain.Summary {
	return domain.Summary{Status: domain.StatusReady, Total: len(s), Hint: service.HintLoaded}
}

var _ service.ClubSet = staticSet(nil)
