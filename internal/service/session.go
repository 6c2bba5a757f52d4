package service

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// Browser command names accepted by SessionStore.Do.
const (
	CmdSelect         = "select"
	CmdSearch         = "search"
	CmdCategory       = "category"
	CmdTag            = "tag"
	CmdSort           = "sort"
	CmdRecruitingOnly = "recruitingOnly"
	CmdReset          = "reset"
	CmdBack           = "back"
	CmdForward        = "forward"
)

// DefaultMaxSessions bounds the number of live sessions in a SessionStore.
const DefaultMaxSessions = 1000

// Command is one user interaction issued against a session.
// Value is the argument for select, search, category, tag and sort.
type Command struct {
	Name  string
	Value string
}

// SessionView is a session's render plus its current shareable URL.
type SessionView struct {
	ID           uuid.UUID
	URL          string
	CanGoBack    bool
	CanGoForward bool
	Render       domain.Render
}

type session struct {
	browser *Browser
	history *MemoryHistory
}

// SessionStore keeps one Browser and MemoryHistory per browsing session so
// HTTP clients can drive the command set. Every operation on a session runs
// under the store's lock. When full, the oldest session is evicted.
type SessionStore struct {
	engine *Engine
	clubs  ClubSet
	base   url.URL
	limit  int

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	order    []uuid.UUID
}

// NewSessionStore constructs a SessionStore whose sessions start at base
// (the public page URL). limit <= 0 means DefaultMaxSessions.
func NewSessionStore(engine *Engine, clubs ClubSet, base url.URL, limit int) *SessionStore {
	if limit <= 0 {
		limit = DefaultMaxSessions
	}
	return &SessionStore{
		engine:   engine,
		clubs:    clubs,
		base:     base,
		limit:    limit,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Create starts a session. A non-empty deepLink is parsed and its club
// parameter primes the selection, the way opening a shared link would.
// A deepLink that is not a URL returns domain.ErrValidation.
func (s *SessionStore) Create(deepLink string) (SessionView, error) {
	start := s.base
	if deepLink != "" {
		u, err := url.Parse(deepLink)
		if err != nil {
			return SessionView{}, fmt.Errorf("service.SessionStore.Create: %w: url: %v", domain.ErrValidation, err)
		}
		start = withSelection(s.base, u.Query().Get(SelectionParam))
	}

	h := NewMemoryHistory(start)
	sess := &session{browser: NewBrowser(s.engine, s.clubs, h), history: h}
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) >= s.limit {
		s.evictOldest()
	}
	s.sessions[id] = sess
	s.order = append(s.order, id)
	return view(id, sess), nil
}

// Get renders a session. Unknown ids return domain.ErrNotFound.
func (s *SessionStore) Get(id uuid.UUID) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return SessionView{}, fmt.Errorf("service.SessionStore.Get: %w", domain.ErrNotFound)
	}
	return view(id, sess), nil
}

// Do applies cmd to a session and returns the new render.
// Unknown ids return domain.ErrNotFound; unknown commands domain.ErrValidation.
// Selecting an unknown club, or going back at the first entry, is a no-op.
func (s *SessionStore) Do(id uuid.UUID, cmd Command) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return SessionView{}, fmt.Errorf("service.SessionStore.Do: %w", domain.ErrNotFound)
	}

	b := sess.browser
	switch cmd.Name {
	case CmdSelect:
		b.Select(cmd.Value)
	case CmdSearch:
		b.SetSearch(cmd.Value)
	case CmdCategory:
		b.ToggleCategory(cmd.Value)
	case CmdTag:
		b.ToggleTag(cmd.Value)
	case CmdSort:
		b.SetSort(cmd.Value)
	case CmdRecruitingOnly:
		b.ToggleRecruitingOnly()
	case CmdReset:
		b.Reset()
	case CmdBack:
		sess.history.Back()
	case CmdForward:
		sess.history.Forward()
	default:
		return SessionView{}, fmt.Errorf("service.SessionStore.Do: %w: unknown command %q", domain.ErrValidation, cmd.Name)
	}
	return view(id, sess), nil
}

// Delete ends a session. Unknown ids return domain.ErrNotFound.
func (s *SessionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("service.SessionStore.Delete: %w", domain.ErrNotFound)
	}
	s.remove(id)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) evictOldest() {
	if len(s.order) == 0 {
		return
	}
	s.remove(s.order[0])
}

func (s *SessionStore) remove(id uuid.UUID) {
	if sess, ok := s.sessions[id]; ok {
		sess.browser.Close()
		delete(s.sessions, id)
	}
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func view(id uuid.UUID, sess *session) SessionView {
	cur := sess.history.Current()
	return SessionView{
		ID:           id,
		URL:          cur.String(),
		CanGoBack:    sess.history.CanGoBack(),
		CanGoForward: sess.history.CanGoForward(),
		Render:       sess.browser.Render(),
	}
}
