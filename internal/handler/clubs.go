package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

// ListClubsParams holds the optional query parameters of GET /clubs.
// A nil field means the parameter was absent.
type ListClubsParams struct {
	Q              *string
	Category       *string
	Tag            *string
	RecruitingOnly *bool
	Sort           *string
	Club           *string
}

// bindListClubsParams binds the form-style query parameters of GET /clubs.
// An empty value (recruitingOnly=) counts as absent. A value that cannot be
// converted (e.g. recruitingOnly=maybe) is an error.
func bindListClubsParams(r *http.Request) (ListClubsParams, error) {
	var p ListClubsParams
	values := r.URL.Query()
	for name, vs := range values {
		if len(vs) == 0 || vs[0] == "" {
			delete(values, name)
		}
	}
	for _, b := range []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"category", &p.Category},
		{"tag", &p.Tag},
		{"recruitingOnly", &p.RecruitingOnly},
		{"sort", &p.Sort},
		{"club", &p.Club},
	} {
		if err := runtime.BindQueryParameter("form", true, false, b.name, values, b.dest); err != nil {
			return ListClubsParams{}, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}
	return p, nil
}

// Query converts the parameters into a normalized domain.Query.
// Unknown sort values fall back to deadline ordering.
func (p ListClubsParams) Query() domain.Query {
	q := domain.DefaultQuery()
	if p.Q != nil {
		q.SearchText = *p.Q
	}
	if p.Category != nil {
		q.Category = *p.Category
	}
	if p.Tag != nil {
		q.Tag = *p.Tag
	}
	if p.RecruitingOnly != nil {
		q.RecruitingOnly = *p.RecruitingOnly
	}
	if p.Sort != nil {
		q.Sort = domain.SortMode(*p.Sort)
	}
	return q.Normalized()
}

// ListClubs handles GET /clubs.
// It renders the directory for the query in the URL without keeping any
// state: the three lists, facets, load summary and the selected club.
// While the data is loading or after a failed load the lists are empty.
func (s *Server) ListClubs(w http.ResponseWriter, r *http.Request) {
	p, err := bindListClubsParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	q := p.Query()
	clubs := s.catalog.Clubs()
	render := domain.Render{
		State:   domain.BrowserState{Query: q},
		Summary: s.catalog.Summary(),
		Views:   s.views.DeriveViews(clubs, q),
		Facets:  s.views.Facets(clubs),
	}
	if p.Club != nil {
		render.State.SelectedID = *p.Club
		if c, ok := service.ResolveSelected(clubs, *p.Club); ok {
			card := s.views.Card(c)
			render.Selected = &card
		}
	}

	writeJSON(w, http.StatusOK, renderToResponse(render))
}

// GetClub handles GET /clubs/{id}.
func (s *Server) GetClub(w http.ResponseWriter, r *http.Request) {
	c, ok := service.ResolveSelected(s.catalog.Clubs(), chi.URLParam(r, "id"))
	if !ok {
		notFound(w, "club not found")
		return
	}
	writeJSON(w, http.StatusOK, cardToResponse(s.views.Card(c)))
}

// GetFacets handles GET /facets.
func (s *Server) GetFacets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.views.Facets(s.catalog.Clubs()))
}
