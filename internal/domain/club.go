// Package domain contains the core data types for the club directory.
// This package performs no I/O and is imported by every other internal
// package (repo, service, handler).
package domain

import "time"

// Club is the canonical record of one directory entry.
// JSON tags follow the spelling of the published data file.
//
// After normalization every field has a defined value: the slice fields are
// never nil and RecruitEnd is either a well-formed YYYY-MM-DD string or nil.
type Club struct {
	ID         string   `json:"id"`
	School     string   `json:"school"`
	Name       string   `json:"name"`
	OneLine    string   `json:"oneLine"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Recruiting bool     `json:"recruiting"`
	// RecruitEnd is only meaningful when Recruiting is true.
	RecruitEnd *string `json:"recruitEnd"`
	ApplyURL   string  `json:"applyUrl"`

	Description  string   `json:"description"`
	ActivityTime string   `json:"activityTime"`
	Location     string   `json:"location"`
	ContactURL   string   `json:"contactUrl"`
	Logo         string   `json:"logo"`
	Images       []string `json:"images"`
}

// Normalized returns a copy of c with nil slices replaced by empty slices and
// a malformed RecruitEnd replaced by nil. Record sources call it so the
// defaults hold no matter where the record came from.
func (c Club) Normalized() Club {
	c.Categories = nonNil(c.Categories)
	c.Tags = nonNil(c.Tags)
	c.Images = nonNil(c.Images)
	if c.RecruitEnd != nil {
		if _, ok := ParseCalendarDate(*c.RecruitEnd, time.UTC); !ok {
			c.RecruitEnd = nil
		}
	}
	return c
}

// HasCategory reports whether v is one of the club's categories (exact match).
func (c Club) HasCategory(v string) bool {
	return contains(c.Categories, v)
}

// HasTag reports whether v is one of the club's tags (exact match).
func (c Club) HasTag(v string) bool {
	return contains(c.Tags, v)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
