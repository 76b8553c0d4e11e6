package memory

import (
	"sync"
	"testing"

	"github.com/de-tools/shift-report/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAssignsSequentialIDs(t *testing.T) {
	s := NewRecordStore()

	first := s.Append(map[string]any{"operador": "Alice"})
	second := s.Append(map[string]any{"operador": "Bob"})
	third := s.Append(map[string]any{"operador": "Carol"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
	assert.False(t, first.Timestamp.IsZero())
}

func TestGet(t *testing.T) {
	s := NewRecordStore()
	s.Append(map[string]any{"operador": "Alice"})
	s.Append(map[string]any{"operador": "Bob"})

	rec, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", rec.Data["operador"])

	_, err = s.Get(99)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Get(0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := NewRecordStore()
	assert.Empty(t, s.List())

	s.Append(map[string]any{"turno": "A"})
	s.Append(map[string]any{"turno": "B"})

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Data["turno"])
	assert.Equal(t, "B", records[1].Data["turno"])
}

func TestConcurrentAppends(t *testing.T) {
	s := NewRecordStore()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Append(map[string]any{})
		}()
	}
	wg.Wait()

	records := s.List()
	require.Len(t, records, n)

	seen := make(map[int]bool, n)
	for _, rec := range records {
		assert.False(t, seen[rec.ID], "duplicate id %d", rec.ID)
		seen[rec.ID] = true
	}
}
