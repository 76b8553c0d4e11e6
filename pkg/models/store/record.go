package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by record stores when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Record is a stored production record. Data holds the submitted shift
// report verbatim; the store never interprets it.
type Record struct {
	ID        int
	Timestamp time.Time
	Data      map[string]any
}
