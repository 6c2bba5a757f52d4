package domain

import "errors"

// ErrNotFound is returned when a club or browsing session does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a command or setting fails validation
// (e.g. an unknown browser command, a malformed site URL).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrLoadFailed marks a failed load of the club data file. A failed load is
// terminal for the directory: it is never retried.
var ErrLoadFailed = errors.New("data load failed")
