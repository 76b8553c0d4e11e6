package api

import "time"

// Record is a stored production record as returned over the wire.
type Record struct {
	ID        int            `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Error is the uniform failure envelope; Success is always false.
type Error struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type RecordSaved struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

type RecordList struct {
	Success bool     `json:"success"`
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

type RecordEnvelope struct {
	Success bool   `json:"success"`
	Record  Record `json:"record"`
}

type FileStored struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type Health struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
