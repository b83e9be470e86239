// Package diag periodically dumps a read-only view of the coordinator's
// registries to the log.
package diag

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/relay-server/internal/core"
)

// Reporter logs a registry snapshot on a fixed interval.
type Reporter struct {
	hub      *core.Hub
	interval time.Duration
	log      *zerolog.Logger
}

// New builds a reporter. A non-positive interval falls back to 5s.
func New(hub *core.Hub, interval time.Duration, logger *zerolog.Logger) *Reporter {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Reporter{hub: hub, interval: interval, log: logger}
}

// Run ticks until ctx is cancelled. Snapshot failures are logged and the
// loop keeps going; diagnostics must never take the coordinator down.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := r.hub.Snapshot(ctx)
			if err != nil {
				r.log.Warn().Err(err).Msg("snapshot unavailable")
				continue
			}
			r.report(snap)
		}
	}
}

func (r *Reporter) report(snap core.Snapshot) {
	r.log.Info().
		Int("rooms", len(snap.Rooms)).
		Int("identities", len(snap.Identities)).
		Msg("registry snapshot")

	if r.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	// Full dump only at debug. Snapshots carry value fields only, so this
	// can never serialize channels or cycles.
	r.log.Debug().
		Interface("rooms", snap.Rooms).
		Interface("identities", snap.Identities).
		Msg("registry contents")
}
