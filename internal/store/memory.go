package store

import (
	"context"
	"sync"
)

// MemoryStore keeps collections in process. Records are copied on the way in
// and out so callers never share maps with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Record
	saves       map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Record),
		saves:       make(map[string]int),
	}
}

func (m *MemoryStore) Load(ctx context.Context, kind string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.collections[kind])
}

func (m *MemoryStore) Save(ctx context.Context, kind string, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	copied, err := cloneRecords(records)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[kind] = copied
	m.saves[kind]++
	return nil
}

// Saves reports how many times kind has been written.
func (m *MemoryStore) Saves(kind string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves[kind]
}

func cloneRecords(in []Record) ([]Record, error) {
	out := make([]Record, 0, len(in))
	for _, r := range in {
		c, err := r.Clone()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
