// Package app runs the startup sequence: storage check, payment configuration
// warm-up, then the HTTP server. The storage check is the only fatal step;
// everything after it degrades instead of aborting.
package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/logger"
)

// StorageProbe verifies that the database is reachable before the server
// binds its port.
type StorageProbe interface {
	VerifyConnection(ctx context.Context) error
}

const (
	probeTimeout    = 10 * time.Second
	warmupTimeout   = 30 * time.Second
	shutdownTimeout = 30 * time.Second
)

// App owns the ordered startup sequence.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	probe   StorageProbe
	warmup  func(ctx context.Context) error
	handler http.Handler

	// OnReady, when set, is called with the bound address once the server
	// is accepting connections.
	OnReady func(addr string)
}

// New creates an App. warmup loads the payment configuration; it runs in a
// supervised goroutine and may be nil.
func New(cfg *config.Config, log *logger.Logger, probe StorageProbe, warmup func(ctx context.Context) error, handler http.Handler) *App {
	return &App{
		cfg:     cfg,
		log:     log.WithComponent("app"),
		probe:   probe,
		warmup:  warmup,
		handler: handler,
	}
}

// Run executes the startup sequence and serves until ctx is cancelled or the
// server fails. A storage check failure aborts before the port is bound.
func (a *App) Run(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := a.probe.VerifyConnection(probeCtx); err != nil {
		return fmt.Errorf("database unreachable at startup: %w", err)
	}
	a.log.Info().Msg("database connection verified")

	// Payment warm-up never blocks or aborts startup. The goroutine is
	// supervised here: both outcomes are observed and logged.
	if a.warmup != nil {
		go func() {
			warmupCtx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
			defer cancel()
			if err := a.warmup(warmupCtx); err != nil {
				a.log.Warn().Err(err).Msg("payment configuration warm-up failed, continuing in degraded mode")
				return
			}
			a.log.Info().Msg("payment configuration warm-up complete")
		}()
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
		serveErr <- srv.Serve(ln)
	}()

	if a.OnReady != nil {
		a.OnReady(ln.Addr().String())
	}

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	a.log.Info().Msg("server stopped")
	return nil
}
