// Package app wires the directory's dependencies from configuration:
// logger, site settings, record source, directory and engine. Both the
// API server and the CLI start from here; no business logic belongs here.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/homesweetlove/club-of-dcu.io/internal/config"
	"github.com/homesweetlove/club-of-dcu.io/internal/repo"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
	"github.com/homesweetlove/club-of-dcu.io/internal/site"
	"github.com/homesweetlove/club-of-dcu.io/migrations"
)

// fetchTimeout bounds the single request an HTTPSource makes.
const fetchTimeout = 15 * time.Second

// App holds the wired components.
type App struct {
	Settings  site.Settings
	Directory *service.Directory
	Engine    *service.Engine

	pool *pgxpool.Pool
}

// NewLogger returns a JSON slog.Logger writing to w at the named level.
// Unknown levels mean info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// New loads the site settings, opens the record source and starts the
// directory's one-shot load. With cfg.DatabaseURL set, the clubs table is
// migrated and used as the source; otherwise the data file is read from
// cfg.DataPath, falling back to the settings' data_path.
// Call Close when done.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	settings, err := site.Load(cfg.SiteConfig)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}
	if cfg.DataPath != "" {
		settings.DataPath = cfg.DataPath
	}

	a := &App{
		Settings: settings,
		Engine:   service.NewEngine(cfg.Collation, cfg.Now),
	}

	var source repo.ClubSource
	if cfg.DatabaseURL != "" {
		pool, err := openPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("app.New: %w", err)
		}
		a.pool = pool
		source = repo.NewPostgresSource(pool)
		log.Info("loading clubs from postgres")
	} else {
		source = repo.NewSource(settings.DataPath, &http.Client{Timeout: fetchTimeout})
		log.Info("loading clubs from data file", "path", settings.DataPath)
	}

	a.Directory = service.NewDirectory(source, log)
	a.Directory.Start(ctx)
	return a, nil
}

// BaseURL returns the public page URL that session links point at.
func (a *App) BaseURL() (url.URL, error) {
	u, err := url.Parse(a.Settings.SiteURL)
	if err != nil {
		return url.URL{}, fmt.Errorf("app.App.BaseURL: %w", err)
	}
	return *u, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// openPostgres connects, verifies the database is reachable and applies
// pending migrations before any rows are read.
func openPostgres(ctx context.Context, dsn string, log *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("database ready", "migrations_applied", len(results))
	return pool, nil
}
