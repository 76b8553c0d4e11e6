// Package respond writes the JSON envelopes shared by all handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/shift-report/pkg/models/api"
)

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error writes the uniform {"success":false,"error":...} failure body.
func Error(w http.ResponseWriter, status int, message string) {
	// An encode failure here leaves nothing sensible to do; the status line
	// is already out.
	_ = JSON(w, status, api.Error{Success: false, Error: message})
}
