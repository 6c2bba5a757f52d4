// Package service contains the directory's derivation logic: filtering,
// sorting, view composition, the one-shot data load and the browsing state
// machine. Everything except Directory and SessionStore is a pure function
// of its inputs plus the current time.
package service

import (
	"strings"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// Matches reports whether text occurs, case-insensitively, in the club's
// name, school, one-line summary, description, categories or tags.
// Empty text matches every club.
func Matches(c domain.Club, text string) bool {
	if text == "" {
		return true
	}
	fields := make([]string, 0, 4+len(c.Categories)+len(c.Tags))
	fields = append(fields, c.Name, c.School, c.OneLine, c.Description)
	fields = append(fields, c.Categories...)
	fields = append(fields, c.Tags...)
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, strings.ToLower(text))
}

// ApplyFilters returns the clubs that pass every active filter of q, in
// input order: text search, category, tag and recruiting-only. The input is
// not modified and the result is never nil.
func ApplyFilters(clubs []domain.Club, q domain.Query) []domain.Club {
	q = q.Normalized()
	out := make([]domain.Club, 0, len(clubs))
	for _, c := range clubs {
		if !Matches(c, q.SearchText) {
			continue
		}
		if q.Category != "" && !c.HasCategory(q.Category) {
			continue
		}
		if q.Tag != "" && !c.HasTag(q.Tag) {
			continue
		}
		if q.RecruitingOnly && !c.Recruiting {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ResolveSelected finds the club with the given id in the full, unfiltered
// record set. A club hidden by the current filters is still resolved.
// The second return value is false for an empty or unknown id.
func ResolveSelected(clubs []domain.Club, id string) (domain.Club, bool) {
	if id == "" {
		return domain.Club{}, false
	}
	for _, c := range clubs {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Club{}, false
}

func recruitingOnly(clubs []domain.Club) []domain.Club {
	out := make([]domain.Club, 0, len(clubs))
	for _, c := range clubs {
		if c.Recruiting {
			out = append(out, c)
		}
	}
	return out
}
