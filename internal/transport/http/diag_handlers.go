package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/relay-server/internal/core"
)

// DiagHandlers exposes read-only registry snapshots over HTTP.
type DiagHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewDiagHandlers creates a new diagnostics handlers instance.
func NewDiagHandlers(hub *core.Hub, logger *zerolog.Logger) *DiagHandlers {
	return &DiagHandlers{hub: hub, log: logger}
}

// Snapshot handles the diagnostics dump.
// GET /api/diagnostics
func (h *DiagHandlers) Snapshot(c *gin.Context) {
	snap, err := h.hub.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to take snapshot")
		c.JSON(stdhttp.StatusServiceUnavailable, ErrorResponse{Error: "coordinator unavailable"})
		return
	}
	c.JSON(stdhttp.StatusOK, snap)
}
