// Package memory provides the in-memory record store. Records live for the
// lifetime of the process only; the front end keeps its own durable copy.
package memory

import (
	"sync"
	"time"

	"github.com/de-tools/shift-report/pkg/models/store"
)

// RecordStore is an append-only list of records with sequential ids.
// Safe for concurrent use.
type RecordStore struct {
	mu      sync.Mutex
	records []store.Record
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Append stores a copy of data under the next sequential id and stamps it
// with the current UTC time. Ids start at 1 and are never reused.
func (s *RecordStore) Append(data map[string]any) store.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := store.Record{
		ID:        len(s.records) + 1,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	s.records = append(s.records, rec)
	return rec
}

// List returns all records in insertion order.
func (s *RecordStore) List() []store.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]store.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id or store.ErrNotFound.
func (s *RecordStore) Get(id int) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || id > len(s.records) {
		return store.Record{}, store.ErrNotFound
	}
	return s.records[id-1], nil
}
