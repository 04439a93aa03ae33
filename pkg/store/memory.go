package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store backed by a map.
// Used by tests and by runs where persistence is explicitly disabled;
// nothing survives the process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// EnsureTable initializes the backing map if needed.
func (m *Memory) EnsureTable(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]int)
	}
	return nil
}

// Get looks up key.
func (m *Memory) Get(ctx context.Context, key string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

// Put upserts the value for key.
func (m *Memory) Put(ctx context.Context, key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]int)
	}
	m.entries[key] = value
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close does nothing for the in-memory store.
func (m *Memory) Close() error {
	return nil
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)
