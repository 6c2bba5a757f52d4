package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/repo"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

// ---- mock ClubSource -------------------------------------------------------------

type mockSource struct {
	mu    sync.Mutex
	calls int
	load  func(ctx context.Context) ([]domain.Club, error)
}

func (m *mockSource) Load(ctx context.Context) ([]domain.Club, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.load(ctx)
}

func (m *mockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// compile-time check: mockSource must satisfy repo.ClubSource.
var _ repo.ClubSource = (*mockSource)(nil)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ---- Directory ---------------------------------------------------------------------

func TestDirectory_LoadingSeesEmptySet(t *testing.T) {
	release := make(chan struct{})
	src := &mockSource{load: func(context.Context) ([]domain.Club, error) {
		<-release
		return []domain.Club{club("a", "X", "Alpha", recruiting(""))}, nil
	}}
	d := service.NewDirectory(src, quietLogger())

	d.Start(context.Background())

	assert.Equal(t, domain.StatusLoading, d.Status())
	assert.Empty(t, d.Clubs())
	assert.Equal(t, service.HintLoading, d.Summary().Hint)

	close(release)
	require.NoError(t, d.Wait(context.Background()))

	assert.Equal(t, domain.StatusReady, d.Status())
	assert.Len(t, d.Clubs(), 1)
	assert.Equal(t, domain.Summary{Status: domain.StatusReady, Total: 1, Recruiting: 1, Hint: service.HintLoaded}, d.Summary())
}

func TestDirectory_EmptyDataHint(t *testing.T) {
	src := &mockSource{load: func(context.Context) ([]domain.Club, error) { return nil, nil }}
	d := service.NewDirectory(src, quietLogger())

	require.NoError(t, d.Load(context.Background()))

	assert.NotNil(t, d.Clubs())
	assert.Equal(t, service.HintEmpty, d.Summary().Hint)
}

// TestDirectory_FailureIsTerminal verifies that a failed load leaves the
// directory empty and failed, and that starting again does not retry.
func TestDirectory_FailureIsTerminal(t *testing.T) {
	src := &mockSource{load: func(context.Context) ([]domain.Club, error) {
		return nil, fmt.Errorf("boom: %w", domain.ErrLoadFailed)
	}}
	d := service.NewDirectory(src, quietLogger())

	err := d.Load(context.Background())

	require.ErrorIs(t, err, domain.ErrLoadFailed)
	assert.Equal(t, domain.StatusFailed, d.Status())
	assert.Empty(t, d.Clubs())
	assert.Equal(t, service.HintFailed, d.Summary().Hint)

	d.Start(context.Background())
	require.ErrorIs(t, d.Wait(context.Background()), domain.ErrLoadFailed)
	assert.Equal(t, 1, src.Calls())
}

func TestDirectory_StartIsOnce(t *testing.T) {
	src := &mockSource{load: func(context.Context) ([]domain.Club, error) { return []domain.Club{}, nil }}
	d := service.NewDirectory(src, quietLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Start(context.Background())
		}()
	}
	wg.Wait()
	<-d.Done()

	assert.Equal(t, 1, src.Calls())
}

func TestDirectory_WaitHonoursContext(t *testing.T) {
	release := make(chan struct{})
	src := &mockSource{load: func(context.Context) ([]domain.Club, error) {
		<-release
		return nil, nil
	}}
	d := service.NewDirectory(src, quietLogger())
	d.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := d.Wait(ctx)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, domain.StatusLoading, d.Status())

	close(release)
	<-d.Done()
}

func TestDirectory_ConcurrentReaders(t *testing.T) {
	src := &mockSource{load: func(context.Context) ([]domain.Club, error) {
		return []domain.Club{club("a", "X", "Alpha")}, nil
	}}
	d := service.NewDirectory(src, quietLogger())
	e := newEngine()

	var wg sync.WaitGroup
	d.Start(context.Background())
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.DeriveViews(d.Clubs(), domain.DefaultQuery())
			_ = d.Summary()
		}()
	}
	wg.Wait()
	<-d.Done()
}
