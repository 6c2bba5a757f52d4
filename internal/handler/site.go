package handler

import (
	"net/http"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/site"
)

type siteResponse struct {
	site.Settings
	Summary domain.Summary `json:"summary"`
}

// GetSite handles GET /site: the site settings plus the load summary that
// drives the page header.
func (s *Server) GetSite(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, siteResponse{Settings: s.settings, Summary: s.catalog.Summary()})
}
