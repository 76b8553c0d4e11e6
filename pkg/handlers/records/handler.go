// Package records exposes the production record endpoints.
package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/shift-report/pkg/handlers/respond"
	"github.com/de-tools/shift-report/pkg/models/api"
	"github.com/de-tools/shift-report/pkg/models/store"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Store is the record storage the handler depends on.
type Store interface {
	Append(data map[string]any) store.Record
	List() []store.Record
	Get(id int) (store.Record, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Save stores the posted shift data under a new sequential id. An empty or
// non-object body is rejected; the payload itself is not interpreted.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil || len(data) == 0 {
		respond.Error(w, http.StatusBadRequest, "no data provided")
		return
	}

	rec := h.store.Append(data)
	logger.Info().Int("id", rec.ID).Msg("record saved")

	err := respond.JSON(w, http.StatusCreated, api.RecordSaved{
		Success:   true,
		Message:   "record saved successfully",
		ID:        rec.ID,
		Timestamp: rec.Timestamp,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode save response")
	}
}

// List returns every stored record in insertion order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	records := h.store.List()
	out := make([]api.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, api.Record(rec))
	}

	err := respond.JSON(w, http.StatusOK, api.RecordList{
		Success: true,
		Records: out,
		Total:   len(out),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode record list")
	}
}

// Get returns one record by id. Unknown and non-numeric ids are both 404.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "record not found")
		return
	}

	rec, err := h.store.Get(id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Error().Err(err).Int("id", id).Msg("record lookup failed")
		}
		respond.Error(w, http.StatusNotFound, "record not found")
		return
	}

	err = respond.JSON(w, http.StatusOK, api.RecordEnvelope{
		Success: true,
		Record:  api.Record(rec),
	})
	if err != nil {
		logger.Error().Err(err).Int("id", id).Msg("failed to encode record")
	}
}
