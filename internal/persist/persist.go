// Package persist durably stores named JSON collections. The warehouse core
// treats persistence as a collaborator: it hands over a full replacement
// collection after every mutation and reads collections back on load.
package persist

import (
	"context"
	"sync"
)

// Persister stores and retrieves named collections as raw JSON.
// Load returns (nil, nil) when nothing is stored under the name.
type Persister interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// Memory is an in-memory Persister for tests and ephemeral runs.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]byte
}

// NewMemory creates an empty in-memory persister.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]byte)}
}

// Load returns the stored collection, or (nil, nil) if absent.
func (m *Memory) Load(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.collections[name]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// Save replaces the stored collection.
func (m *Memory) Save(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.collections[name] = cp
	return nil
}
