package service

import (
	"net/url"
	"strings"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// ClubSet is the record set a Browser renders from. *Directory satisfies it.
type ClubSet interface {
	Clubs() []domain.Club
	Summary() domain.Summary
}

// Browser is the state machine behind one browsing session. It owns a
// domain.BrowserState, changes it only through its command methods, and
// keeps the selection in sync with the "club" parameter of its History.
//
// Every command leaves re-derivation to Render; nothing is cached between
// renders. A Browser is not safe for concurrent use.
type Browser struct {
	engine  *Engine
	clubs   ClubSet
	history History
	state   domain.BrowserState
	cancel  func()
}

// NewBrowser returns a Browser with the default query. A selection already
// present in the history's current URL is primed before the first render,
// without pushing a new entry.
func NewBrowser(engine *Engine, clubs ClubSet, history History) *Browser {
	b := &Browser{
		engine:  engine,
		clubs:   clubs,
		history: history,
		state:   domain.BrowserState{Query: domain.DefaultQuery()},
	}
	b.state.SelectedID = selectionOf(history.Current())
	b.cancel = history.Subscribe(b.navigate)
	return b
}

// Close stops listening to history navigation.
func (b *Browser) Close() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// State returns a copy of the current state.
func (b *Browser) State() domain.BrowserState {
	return b.state
}

// Select opens the club with the given id: it becomes the selection, the
// URL's club parameter is set to id and a history entry is pushed.
// An id that does not resolve changes nothing and reports false.
func (b *Browser) Select(id string) bool {
	if _, ok := ResolveSelected(b.clubs.Clubs(), id); !ok {
		return false
	}
	b.state.SelectedID = id
	b.history.Push(withSelection(b.history.Current(), id))
	return true
}

// SetSearch sets the search text, trimmed.
func (b *Browser) SetSearch(text string) {
	b.state.Query.SearchText = strings.TrimSpace(text)
}

// ToggleCategory makes v the category filter, or clears the filter when v
// is already active.
func (b *Browser) ToggleCategory(v string) {
	b.state.Query.Category = toggle(b.state.Query.Category, v)
}

// ToggleTag makes v the tag filter, or clears the filter when v is already active.
func (b *Browser) ToggleTag(v string) {
	b.state.Query.Tag = toggle(b.state.Query.Tag, v)
}

// SetSort sets the sort mode; unknown modes mean deadline.
func (b *Browser) SetSort(mode string) {
	b.state.Query.Sort = domain.ParseSortMode(mode)
}

// ToggleRecruitingOnly flips the recruiting-only filter.
func (b *Browser) ToggleRecruitingOnly() {
	b.state.Query.RecruitingOnly = !b.state.Query.RecruitingOnly
}

// Reset clears every filter and the selection, removes the club parameter
// from the URL and pushes a history entry without a selection.
func (b *Browser) Reset() {
	b.state = domain.BrowserState{Query: domain.DefaultQuery()}
	b.history.Push(withSelection(b.history.Current(), ""))
}

// Render derives everything the presentation layer shows for the current
// state. The selection is resolved against the full record set, so a club
// hidden by the filters can still be open in the detail view. Rendering
// never touches the history.
func (b *Browser) Render() domain.Render {
	clubs := b.clubs.Clubs()
	r := domain.Render{
		State:   b.state,
		Summary: b.clubs.Summary(),
		Views:   b.engine.DeriveViews(clubs, b.state.Query),
		Facets:  b.engine.Facets(clubs),
	}
	if c, ok := ResolveSelected(clubs, b.state.SelectedID); ok {
		card := b.engine.Card(c)
		r.Selected = &card
	}
	return r
}

// navigate reacts to a back/forward move. A club parameter that resolves
// becomes the selection; a missing or unknown one leaves the detail view as is.
func (b *Browser) navigate(u url.URL) {
	id := selectionOf(u)
	if id == "" {
		return
	}
	if _, ok := ResolveSelected(b.clubs.Clubs(), id); ok {
		b.state.SelectedID = id
	}
}

func toggle(current, v string) string {
	if current == v {
		return ""
	}
	return v
}
