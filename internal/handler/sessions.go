package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

type createSessionRequest struct {
	URL string `json:"url"`
}

type commandRequest struct {
	Command string `json:"command"`
	Value   string `json:"value"`
}

// CreateSession handles POST /sessions.
// The body is optional; its url field primes the selection from a shared link.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if err := decodeBody(r, &body); err != nil {
		bodyError(w, err)
		return
	}

	view, err := s.sessions.Create(body.URL)
	if err != nil {
		serviceError(w, r, err, "session not found")
		return
	}
	writeJSON(w, http.StatusCreated, sessionToResponse(view))
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	view, err := s.sessions.Get(id)
	if err != nil {
		serviceError(w, r, err, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(view))
}

// RunCommand handles POST /sessions/{id}/commands.
// Unknown commands are rejected with 422; commands that resolve to nothing
// (selecting an unknown club, going back at the first entry) return the
// unchanged render.
func (s *Server) RunCommand(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body commandRequest
	if err := decodeBody(r, &body); err != nil {
		bodyError(w, err)
		return
	}

	view, err := s.sessions.Do(id, service.Command{Name: body.Command, Value: body.Value})
	if err != nil {
		serviceError(w, r, err, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(view))
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Delete(id); err != nil {
		serviceError(w, r, err, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionID parses the {id} path parameter. Ids that are not UUIDs cannot
// name a session, so they get the same 404 as unknown ones.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "session not found")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes a JSON body into dest. An empty body leaves dest untouched.
func decodeBody(r *http.Request, dest any) error {
	err := json.NewDecoder(r.Body).Decode(dest)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
