package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/relay-server/internal/config"
	"github.com/vovakirdan/relay-server/internal/core"
	"github.com/vovakirdan/relay-server/internal/diag"
	transporthttp "github.com/vovakirdan/relay-server/internal/transport/http"
)

// App wires together the coordinator and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	reporter        *diag.Reporter
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	hub := core.NewHub(cfg.RoomCodeLength, logger)
	server := transporthttp.NewServer(hub, cfg, logger)
	reporter := diag.New(hub, cfg.SnapshotInterval, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		reporter:        reporter,
		log:             logger,
	}
}

// Run starts the hub, the diagnostics reporter and the HTTP server, and
// blocks until context cancellation or a fatal server error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)
	go a.reporter.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
