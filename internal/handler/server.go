// Package handler implements the HTTP handlers for the club directory API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, clubs.go, sessions.go, site.go) but share the same Server
// struct so they can access its dependencies. Routes wires them into chi.
package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/middleware"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
	"github.com/homesweetlove/club-of-dcu.io/internal/site"
)

// maxCommandBody bounds the JSON bodies of the session endpoints.
const maxCommandBody = 16 << 10

// ClubCatalog is the loaded record set. *service.Directory satisfies it.
type ClubCatalog interface {
	Clubs() []domain.Club
	Summary() domain.Summary
}

// ViewDeriver derives lists, facets and cards from the record set.
// *service.Engine satisfies it.
type ViewDeriver interface {
	DeriveViews(clubs []domain.Club, q domain.Query) domain.Views
	Facets(clubs []domain.Club) domain.Facets
	Card(c domain.Club) domain.ClubCard
}

// SessionServicer defines the browsing-session operations the session
// handlers depend on. *service.SessionStore satisfies it.
type SessionServicer interface {
	Create(deepLink string) (service.SessionView, error)
	Get(id uuid.UUID) (service.SessionView, error)
	Do(id uuid.UUID, cmd service.Command) (service.SessionView, error)
	Delete(id uuid.UUID) error
}

// Server holds the dependencies of every handler.
type Server struct {
	catalog  ClubCatalog
	views    ViewDeriver
	sessions SessionServicer
	settings site.Settings
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog ClubCatalog, views ViewDeriver, sessions SessionServicer, settings site.Settings) *Server {
	return &Server{catalog: catalog, views: views, sessions: sessions, settings: settings}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, site.Defaults())
}

// Routes returns a chi router with every endpoint registered.
// Cross-cutting middleware (request id, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(s.routeNotFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/site", s.GetSite)

	r.Get("/clubs", s.ListClubs)
	r.Get("/clubs/{id}", s.GetClub)
	r.Get("/facets", s.GetFacets)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewMaxBodySizeHandler(maxCommandBody))
		r.Post("/sessions", s.CreateSession)
		r.Post("/sessions/{id}/commands", s.RunCommand)
	})
	r.Get("/sessions/{id}", s.GetSession)
	r.Delete("/sessions/{id}", s.DeleteSession)

	return r
}
