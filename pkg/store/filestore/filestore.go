// Package filestore relays already-rendered report files: the front end
// uploads a PDF, gets a name back, and fetches it later by that name.
package filestore

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file not found")

// Store saves uploaded files under generated names and serves them back.
type Store interface {
	// Save stores the content and returns the generated name. The original
	// name only contributes its extension.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Open returns the stored content or ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// generateName builds a collision-resistant file name, keeping the original
// extension and defaulting to ".pdf" when there is none.
func generateName(originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".pdf"
	}
	id := uuid.New()
	return hex.EncodeToString(id[:]) + ext
}
