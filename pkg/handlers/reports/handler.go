// Package reports exposes on-demand PDF report generation. The report is
// compiled in memory and streamed back; nothing is persisted server side.
package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/shift-report/pkg/handlers/respond"
	"github.com/de-tools/shift-report/pkg/models/domain"
	"github.com/de-tools/shift-report/pkg/services/report"
	"github.com/rs/zerolog"
)

// Renderer paginates layout blocks into a binary document.
type Renderer interface {
	Render(blocks []domain.Block) ([]byte, error)
}

type Handler struct {
	renderer Renderer
}

func NewHandler(renderer Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// Generate assembles and renders the PDF for the posted shift report.
// Individual malformed fields degrade silently; only an empty or non-object
// body is rejected up front.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rep, ok := decodeShiftReport(r, logger)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "no data provided")
		return
	}

	blocks := report.Assemble(rep)
	pdfBytes, err := h.renderer.Render(blocks)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build report")
		respond.Error(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	filename := fmt.Sprintf("relatorio_%s.pdf", time.Now().UTC().Format("20060102150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))

	if _, err := w.Write(pdfBytes); err != nil {
		logger.Error().Err(err).Msg("failed to stream report")
	}
}

// decodeShiftReport parses the request body. A field of the wrong type keeps
// whatever else decoded instead of failing the request; only an empty or
// non-object body reports failure.
func decodeShiftReport(r *http.Request, logger *zerolog.Logger) (domain.ShiftReport, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return domain.ShiftReport{}, false
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || len(probe) == 0 {
		return domain.ShiftReport{}, false
	}

	var rep domain.ShiftReport
	if err := json.Unmarshal(body, &rep); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return domain.ShiftReport{}, false
		}
		logger.Warn().Str("field", typeErr.Field).Msg("ignoring malformed report field")
	}
	return rep, true
}
