// Package repo loads club records for the directory.
// Each source reads the full record set once; nothing here ever writes back.
// Every source returns normalized clubs (see DecodeClubs and domain.Club.Normalized).
package repo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// ClubSource defines how the directory obtains its records.
// The service layer depends on this interface, not on a concrete source,
// which lets the directory be unit-tested with a stub.
type ClubSource interface {
	// Load returns the full record set. Errors mean the load failed as a
	// whole; malformed individual records are never errors.
	Load(ctx context.Context) ([]domain.Club, error)
}

// NewSource returns an HTTPSource when path is an http(s) URL and a
// FileSource otherwise. A nil client means http.DefaultClient.
func NewSource(path string, client *http.Client) ClubSource {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return NewHTTPSource(path, client)
	}
	return NewFileSource(path)
}

// FileSource reads the data file from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource constructs a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the data file.
func (s *FileSource) Load(ctx context.Context) ([]domain.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.FileSource.Load: %w", err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("repo.FileSource.Load: %w: %w", domain.ErrLoadFailed, err)
	}
	clubs, err := DecodeClubs(data)
	if err != nil {
		return nil, fmt.Errorf("repo.FileSource.Load: %w", err)
	}
	return clubs, nil
}

// HTTPSource fetches the data file over HTTP. It makes exactly one request
// per Load and never retries.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource constructs an HTTPSource for url.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

// Load fetches and decodes the data file. Any non-2xx status is a failed load.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Club, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.HTTPSource.Load: %w: %w", domain.ErrLoadFailed, err)
	}
	// The data file is republished in place; never serve a stale copy.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repo.HTTPSource.Load: %w: %w", domain.ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("repo.HTTPSource.Load: %w: status %d", domain.ErrLoadFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("repo.HTTPSource.Load: read body: %w: %w", domain.ErrLoadFailed, err)
	}
	clubs, err := DecodeClubs(data)
	if err != nil {
		return nil, fmt.Errorf("repo.HTTPSource.Load: %w", err)
	}
	return clubs, nil
}
