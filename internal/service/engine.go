package service

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// UpcomingLimit is the number of clubs shown in the upcoming-deadline list.
const UpcomingLimit = 6

// Engine sorts and composes views. It fixes the collation language used for
// name and school ordering and the clock that defines "today".
type Engine struct {
	lang language.Tag
	now  func() time.Time
}

// NewEngine constructs an Engine. now must return the current time in the
// location whose midnight starts a new day; nil means time.Now.
func NewEngine(lang language.Tag, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{lang: lang, now: now}
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Sort returns a new slice holding clubs in mode order. The sort is stable,
// so clubs equal under every key keep their input order.
//
//   - name: by name.
//   - school: by school, then name.
//   - deadline: recruiting clubs first; within each group clubs with a
//     usable deadline come first, earliest date first; clubs without one
//     fall back to school, then name.
func (e *Engine) Sort(clubs []domain.Club, mode domain.SortMode) []domain.Club {
	// collate.Collator keeps internal buffers; one per call keeps Sort safe
	// for concurrent callers.
	col := collate.New(e.lang)
	byText := func(a, b string) int { return col.CompareString(a, b) }

	out := slices.Clone(clubs)
	if out == nil {
		out = []domain.Club{}
	}

	switch domain.ParseSortMode(string(mode)) {
	case domain.SortName:
		slices.SortStableFunc(out, func(a, b domain.Club) int {
			return byText(a.Name, b.Name)
		})
	case domain.SortSchool:
		slices.SortStableFunc(out, func(a, b domain.Club) int {
			if c := byText(a.School, b.School); c != 0 {
				return c
			}
			return byText(a.Name, b.Name)
		})
	default:
		e.sortByDeadline(out, byText)
	}
	return out
}

type deadlineKey struct {
	club  domain.Club
	date  time.Time
	dated bool
}

func (e *Engine) sortByDeadline(clubs []domain.Club, byText func(a, b string) int) {
	loc := e.now().Location()
	keys := make([]deadlineKey, len(clubs))
	for i, c := range clubs {
		d, ok := c.Deadline(loc)
		keys[i] = deadlineKey{club: c, date: d, dated: ok}
	}

	slices.SortStableFunc(keys, func(a, b deadlineKey) int {
		if a.club.Recruiting != b.club.Recruiting {
			if a.club.Recruiting {
				return -1
			}
			return 1
		}
		switch {
		case a.dated && b.dated:
			return a.date.Compare(b.date)
		case a.dated:
			return -1
		case b.dated:
			return 1
		}
		if c := byText(a.club.School, b.club.School); c != 0 {
			return c
		}
		return byText(a.club.Name, b.club.Name)
	})

	for i, k := range keys {
		clubs[i] = k.club
	}
}

// DeriveViews runs one filter pass over clubs and composes the three lists:
// all matches in q's sort order, the recruiting subset in the same order,
// and the first UpcomingLimit recruiting clubs in deadline order.
func (e *Engine) DeriveViews(clubs []domain.Club, q domain.Query) domain.Views {
	q = q.Normalized()
	now := e.now()

	filtered := ApplyFilters(clubs, q)
	recruiting := recruitingOnly(filtered)

	upcoming := e.Sort(recruiting, domain.SortDeadline)
	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}

	return domain.Views{
		All:        cards(e.Sort(filtered, q.Sort), now),
		Recruiting: cards(e.Sort(recruiting, q.Sort), now),
		Upcoming:   cards(upcoming, now),
	}
}

// Card derives the presentation fields of one club as of now.
func (e *Engine) Card(c domain.Club) domain.ClubCard {
	return domain.NewClubCard(c, e.now())
}

// Facets returns the distinct non-empty categories and tags across clubs,
// in collation order.
func (e *Engine) Facets(clubs []domain.Club) domain.Facets {
	var cats, tags []string
	for _, c := range clubs {
		cats = append(cats, c.Categories...)
		tags = append(tags, c.Tags...)
	}
	return domain.Facets{
		Categories: e.uniqSorted(cats),
		Tags:       e.uniqSorted(tags),
	}
}

func (e *Engine) uniqSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	col := collate.New(e.lang)
	slices.SortStableFunc(out, col.CompareString)
	return out
}

func cards(clubs []domain.Club, now time.Time) []domain.ClubCard {
	out := make([]domain.ClubCard, len(clubs))
	for i, c := range clubs {
		out[i] = domain.NewClubCard(c, now)
	}
	return out
}
