// Package middleware provides reusable HTTP middleware for the club directory API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, a browser may cache a preflight
// for the session command endpoint.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
//
// The read endpoints are simple GETs. The session endpoints need preflights:
// POST /sessions and POST /sessions/{id}/commands carry a JSON body, and
// DELETE /sessions/{id} is not a simple method. The API has no credentials,
// so only Content-Type is allowed as a request header.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
