package repo

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeClubs turns the raw data file into canonical clubs.
//
// Only a document that is not JSON at all is an error (wrapping
// domain.ErrLoadFailed). Everything else is absorbed: a non-array document
// yields an empty set, and every array element yields exactly one club in the
// same order, whatever its shape. Fields of the wrong type fall back to their
// defaults; a club without id or name is still emitted. A leading UTF-8
// byte-order mark is ignored.
func DecodeClubs(data []byte) ([]domain.Club, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("repo.DecodeClubs: %w: invalid JSON", domain.ErrLoadFailed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return []domain.Club{}, nil
	}

	elems := root.Array()
	clubs := make([]domain.Club, 0, len(elems))
	for _, raw := range elems {
		clubs = append(clubs, decodeClub(raw))
	}
	return clubs, nil
}

// decodeClub reads one element. A non-object element becomes a club with
// every field defaulted.
func decodeClub(raw gjson.Result) domain.Club {
	if !raw.IsObject() {
		return domain.Club{}.Normalized()
	}
	c := domain.Club{
		ID:           text(raw.Get("id")),
		School:       text(raw.Get("school")),
		Name:         text(raw.Get("name")),
		OneLine:      text(raw.Get("oneLine")),
		Categories:   textList(raw.Get("categories")),
		Tags:         textList(raw.Get("tags")),
		Recruiting:   raw.Get("recruiting").Type == gjson.True,
		ApplyURL:     text(raw.Get("applyUrl")),
		Description:  text(raw.Get("description")),
		ActivityTime: text(raw.Get("activityTime")),
		Location:     text(raw.Get("location")),
		ContactURL:   text(raw.Get("contactUrl")),
		Logo:         text(raw.Get("logo")),
		Images:       textList(raw.Get("images")),
	}
	if end := raw.Get("recruitEnd"); end.Type == gjson.String {
		s := end.Str
		c.RecruitEnd = &s
	}
	return c.Normalized()
}

// text renders scalar JSON values as display text. Absent, null, object and
// array values become "".
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number, gjson.True, gjson.False:
		return r.String()
	default:
		return ""
	}
}

// textList reads an array of scalars. Anything that is not an array becomes
// an empty list.
func textList(r gjson.Result) []string {
	if !r.IsArray() {
		return []string{}
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, text(item))
	}
	return out
}
