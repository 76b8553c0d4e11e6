// Package health exposes the liveness probe.
package health

import (
	"net/http"
	"time"

	"github.com/de-tools/shift-report/pkg/handlers/respond"
	"github.com/de-tools/shift-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	err := respond.JSON(w, http.StatusOK, api.Health{
		Status:    "ok",
		Message:   "shift report service is running",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode health response")
	}
}
