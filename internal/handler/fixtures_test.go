package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/handler"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
	"github.com/homesweetlove/club-of-dcu.io/internal/site"
)

// fixedNow is the "today" the engine in these tests sees.
var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

// stubCatalog is a fixed handler.ClubCatalog.
type stubCatalog struct {
	clubs   []domain.Club
	summary domain.Summary
}

func (s stubCatalog) Clubs() []domain.Club { return s.clubs }
func (s stubCatalog) Summary() domain.Summary { return s.summary }

// compile-time checks: the production types must satisfy the handler's interfaces.
var (
	_ handler.ClubCatalog     = (*service.Directory)(nil)
	_ handler.ViewDeriver     = (*service.Engine)(nil)
	_ handler.SessionServicer = (*service.SessionStore)(nil)
	_ handler.ClubCatalog     = stubCatalog{}
)

func strPtr(s string) *string { return &s }

// clubsFixture returns three clubs:
//
//	a  Chess   recruiting, closes 2026-03-12 (D-2, urgent)
//	b  Band    recruiting, closes 2026-03-18 (D-8, soon)
//	c  Archery not recruiting, category sports, tag outdoor
func clubsFixture() []domain.Club {
	return []domain.Club{
		domain.Club{ID: "a", School: "Alpha U", Name: "Chess", Recruiting: true, RecruitEnd: strPtr("2026-03-12")}.Normalized(),
		domain.Club{ID: "b", School: "Beta U", Name: "Band", Recruiting: true, RecruitEnd: strPtr("2026-03-18")}.Normalized(),
		domain.Club{ID: "c", School: "Alpha U", Name: "Archery", Categories: []string{"sports"}, Tags: []string{"outdoor"}}.Normalized(),
	}
}

func readyCatalog() stubCatalog {
	return stubCatalog{
		clubs:   clubsFixture(),
		summary: domain.Summary{Status: domain.StatusReady, Total: 3, Recruiting: 2, Hint: service.HintLoaded},
	}
}

// newHTTPHandler wires a Server the way main.go does, with a fixed clock.
func newHTTPHandler(catalog handler.ClubCatalog, sessions handler.SessionServicer) http.Handler {
	engine := service.NewEngine(language.English, func() time.Time { return fixedNow })
	return handler.NewServer(catalog, engine, sessions, site.Defaults()).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// ---- response shapes -------------------------------------------------------

type clubJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	RecruitEnd   *string `json:"recruitEnd"`
	Urgency      string  `json:"urgency"`
	Badge        string  `json:"badge"`
	DaysLeft     *int    `json:"daysLeft"`
	DeadlineText string  `json:"deadlineText"`
}

type renderJSON struct {
	Summary    domain.Summary `json:"summary"`
	Query      domain.Query   `json:"query"`
	SelectedID string         `json:"selectedId"`
	All        []clubJSON     `json:"all"`
	Recruiting []clubJSON     `json:"recruiting"`
	Upcoming   []clubJSON     `json:"upcoming"`
	Facets     domain.Facets  `json:"facets"`
	Selected   *clubJSON      `json:"selected"`
}

type sessionJSON struct {
	ID           string     `json:"id"`
	URL          string     `json:"url"`
	CanGoBack    bool       `json:"canGoBack"`
	CanGoForward bool       `json:"canGoForward"`
	Render       renderJSON `json:"render"`
}

func clubIDs(cs []clubJSON) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, code, body.Error.Code)
	require.NotEmpty(t, body.Error.Message)
}
