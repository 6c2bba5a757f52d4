// Package main is the entry point for the club directory API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/homesweetlove/club-of-dcu.io/internal/app"
	"github.com/homesweetlove/club-of-dcu.io/internal/config"
	"github.com/homesweetlove/club-of-dcu.io/internal/handler"
	"github.com/homesweetlove/club-of-dcu.io/internal/middleware"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := app.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	// --- Directory --------------------------------------------------------
	// The load runs in the background; requests made before it finishes see
	// status "loading" and empty lists.
	ctx, stopLoad := context.WithCancel(context.Background())
	defer stopLoad()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		slog.Error("failed to start directory", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	base, err := a.BaseURL()
	if err != nil {
		slog.Error("invalid site url", "error", err)
		os.Exit(1)
	}
	sessions := service.NewSessionStore(a.Engine, a.Directory, base, cfg.SessionLimit)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))

	srv := handler.NewServer(a.Directory, a.Engine, sessions, a.Settings)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "site", a.Settings.SiteName)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
