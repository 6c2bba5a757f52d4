package service

import "net/url"

// SelectionParam is the URL query parameter that carries the selected club id.
const SelectionParam = "club"

// History is the browser-history capability the Browser needs: read the
// current location, push a new entry, and hear about back/forward moves.
// Push must not notify subscribers; only navigation does.
type History interface {
	Current() url.URL
	Push(u url.URL)
	Subscribe(fn func(url.URL)) (cancel func())
}

// MemoryHistory is an in-memory History with a back/forward cursor, the way a
// browser tab keeps its session history. It is not safe for concurrent use;
// SessionStore serializes access.
type MemoryHistory struct {
	entries []url.URL
	cursor  int
	subs    map[int]func(url.URL)
	nextSub int
}

// NewMemoryHistory returns a history whose only entry is start.
func NewMemoryHistory(start url.URL) *MemoryHistory {
	return &MemoryHistory{
		entries: []url.URL{start},
		subs:    make(map[int]func(url.URL)),
	}
}

// Current returns the location at the cursor.
func (h *MemoryHistory) Current() url.URL {
	return h.entries[h.cursor]
}

// Push discards any forward entries and appends u as the new current entry.
func (h *MemoryHistory) Push(u url.URL) {
	h.entries = append(h.entries[:h.cursor+1], u)
	h.cursor++
}

// Subscribe registers fn to be called with the new location after Back or Forward.
func (h *MemoryHistory) Subscribe(fn func(url.URL)) func() {
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

// Back moves one entry back and notifies subscribers.
// It reports false, doing nothing, at the first entry.
func (h *MemoryHistory) Back() bool {
	if !h.CanGoBack() {
		return false
	}
	h.cursor--
	h.notify()
	return true
}

// Forward moves one entry forward and notifies subscribers.
// It reports false, doing nothing, at the last entry.
func (h *MemoryHistory) Forward() bool {
	if !h.CanGoForward() {
		return false
	}
	h.cursor++
	h.notify()
	return true
}

// CanGoBack reports whether Back would move.
func (h *MemoryHistory) CanGoBack() bool { return h.cursor > 0 }

// CanGoForward reports whether Forward would move.
func (h *MemoryHistory) CanGoForward() bool { return h.cursor < len(h.entries)-1 }

// Len returns the number of entries.
func (h *MemoryHistory) Len() int { return len(h.entries) }

func (h *MemoryHistory) notify() {
	cur := h.Current()
	for _, fn := range h.subs {
		fn(cur)
	}
}

// selectionOf returns the selection parameter of u, or "".
func selectionOf(u url.URL) string {
	return u.Query().Get(SelectionParam)
}

// withSelection returns u with the selection parameter set to id, or
// removed when id is empty. Other parameters are kept.
func withSelection(u url.URL, id string) url.URL {
	q := u.Query()
	if id == "" {
		q.Del(SelectionParam)
	} else {
		q.Set(SelectionParam, id)
	}
	u.RawQuery = q.Encode()
	return u
}
