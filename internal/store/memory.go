package store

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps values in a map. Values are copied on the way in and out
// so callers cannot mutate stored state by accident.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Batcher = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Batch snapshots the map, runs fn and restores the snapshot if fn fails.
// The store is single-actor, so no lock is held while fn runs.
func (m *MemoryStore) Batch(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.mu.Lock()
	snapshot := maps.Clone(m.data)
	m.mu.Unlock()

	if err := fn(ctx, m); err != nil {
		m.mu.Lock()
		m.data = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}
