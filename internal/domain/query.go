package domain

import "strings"

// SortMode selects the ordering of the derived club lists.
type SortMode string

const (
	// SortDeadline orders recruiting clubs first, then by closing date.
	// It is the default mode.
	SortDeadline SortMode = "deadline"
	// SortName orders by club name.
	SortName SortMode = "name"
	// SortSchool orders by school, then by club name.
	SortSchool SortMode = "school"
)

// ParseSortMode maps a user-supplied string to a SortMode.
// Empty or unknown values fall back to SortDeadline.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.TrimSpace(s)) {
	case SortName:
		return SortName
	case SortSchool:
		return SortSchool
	default:
		return SortDeadline
	}
}

// Query is the mutable query state consulted by every derivation.
// Empty Category or Tag means "no filter".
type Query struct {
	SearchText     string   `json:"q"`
	Category       string   `json:"category"`
	Tag            string   `json:"tag"`
	RecruitingOnly bool     `json:"recruitingOnly"`
	Sort           SortMode `json:"sort"`
}

// DefaultQuery returns the query state a fresh page starts with.
func DefaultQuery() Query {
	return Query{Sort: SortDeadline}
}

// Normalized returns q with SearchText trimmed and Sort defaulted.
func (q Query) Normalized() Query {
	q.SearchText = strings.TrimSpace(q.SearchText)
	q.Sort = ParseSortMode(string(q.Sort))
	return q
}

// BrowserState is the single owned state of one browsing session:
// the query plus the id of the club shown in the detail view.
type BrowserState struct {
	Query Query `json:"query"`
	// SelectedID is empty when no club is selected.
	SelectedID string `json:"selectedId"`
}
