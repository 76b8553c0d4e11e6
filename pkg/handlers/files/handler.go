// Package files relays front-end generated PDFs: upload returns a fetch URL,
// download streams the stored bytes back as an attachment.
package files

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/de-tools/shift-report/pkg/handlers/respond"
	"github.com/de-tools/shift-report/pkg/models/api"
	"github.com/de-tools/shift-report/pkg/store/filestore"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxUploadBytes bounds multipart memory buffering, not the file size.
const maxUploadBytes = 32 << 20

type Handler struct {
	files filestore.Store
}

func NewHandler(files filestore.Store) *Handler {
	return &Handler{files: files}
}

// Upload accepts a multipart form with a "file" field, stores it under a
// generated name, and returns the URL it can be fetched from.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(w, http.StatusBadRequest, "no file provided")
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer f.Close()

	if header.Filename == "" {
		respond.Error(w, http.StatusBadRequest, "invalid file name")
		return
	}

	name, err := h.files.Save(ctx, header.Filename, f)
	if err != nil {
		logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to store file")
		respond.Error(w, http.StatusInternalServerError, "failed to store file")
		return
	}
	logger.Info().Str("name", name).Msg("file stored")

	url := fmt.Sprintf("%s://%s/files/%s", requestScheme(r), r.Host, name)
	err = respond.JSON(w, http.StatusCreated, api.FileStored{Success: true, URL: url})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode upload response")
	}
}

// Download streams a previously stored file as an attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "name")

	content, err := h.files.Open(ctx, name)
	if errors.Is(err, filestore.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "file not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("failed to open file")
		respond.Error(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	defer content.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(name)))

	if _, err := io.Copy(w, content); err != nil {
		logger.Error().Err(err).Str("name", name).Msg("failed to stream file")
	}
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
