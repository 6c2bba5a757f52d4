package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/repo"
)

// Summary hints shown in the page header.
const (
	HintLoading = "loading"
	HintLoaded  = "data loaded"
	HintEmpty   = "data is empty"
	HintFailed  = "data load failed"
)

// Directory owns the one-shot asynchronous load of the club records.
//
// It moves from loading to ready or failed exactly once. While loading, and
// after a failure, readers see an empty record set. A failure is terminal:
// the directory never retries or revalidates. Directory is safe for
// concurrent use.
type Directory struct {
	source repo.ClubSource
	log    *slog.Logger

	once sync.Once
	done chan struct{}

	mu     sync.RWMutex
	status domain.LoadStatus
	clubs  []domain.Club
	err    error
}

// NewDirectory constructs a Directory that will load from source.
// A nil logger means slog.Default().
func NewDirectory(source repo.ClubSource, log *slog.Logger) *Directory {
	if log == nil {
		log = slog.Default()
	}
	return &Directory{
		source: source,
		log:    log,
		done:   make(chan struct{}),
		status: domain.StatusLoading,
		clubs:  []domain.Club{},
	}
}

// Start begins the load in a new goroutine. Only the first call has any
// effect. Cancelling ctx aborts an in-flight load, which then counts as failed.
func (d *Directory) Start(ctx context.Context) {
	d.once.Do(func() {
		go d.load(ctx)
	})
}

// Load starts the load if needed and waits for it to finish.
func (d *Directory) Load(ctx context.Context) error {
	d.Start(ctx)
	return d.Wait(ctx)
}

// Done is closed once the load has finished, successfully or not.
func (d *Directory) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until the load finishes or ctx is done. It returns the load
// error, which wraps domain.ErrLoadFailed, or ctx's error.
func (d *Directory) Wait(ctx context.Context) error {
	select {
	case <-d.done:
		return d.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the cause of a failed load, or nil.
func (d *Directory) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// Status returns the current lifecycle state.
func (d *Directory) Status() domain.LoadStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Clubs returns the loaded record set. It is empty until the load succeeds.
// Callers must treat the returned slice as read-only.
func (d *Directory) Clubs() []domain.Club {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.clubs
}

// Summary returns the record counts and header hint for the current state.
func (d *Directory) Summary() domain.Summary {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := domain.Summary{Status: d.status, Total: len(d.clubs)}
	for _, c := range d.clubs {
		if c.Recruiting {
			s.Recruiting++
		}
	}
	switch {
	case d.status == domain.StatusLoading:
		s.Hint = HintLoading
	case d.status == domain.StatusFailed:
		s.Hint = HintFailed
	case s.Total == 0:
		s.Hint = HintEmpty
	default:
		s.Hint = HintLoaded
	}
	return s
}

func (d *Directory) load(ctx context.Context) {
	defer close(d.done)

	clubs, err := d.source.Load(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.status = domain.StatusFailed
		d.err = fmt.Errorf("service.Directory.load: %w", err)
		d.log.ErrorContext(ctx, "club data load failed", "error", err)
		return
	}
	if clubs == nil {
		clubs = []domain.Club{}
	}
	d.status = domain.StatusReady
	d.clubs = clubs
	d.log.InfoContext(ctx, "club data loaded", "clubs", len(clubs))
}
