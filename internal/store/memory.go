package store

import (
	"context"
	"sync"
)

// MemoryPersister is a minimal in-memory Persister intended for tests and
// for running without durable storage.
type MemoryPersister struct {
	mu    sync.Mutex
	state PersistedState
	saved bool
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Load returns the last saved document, ok=false if nothing was saved yet.
func (m *MemoryPersister) Load(_ context.Context) (PersistedState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return PersistedState{}, false, nil
	}
	return m.state, true, nil
}

// Save replaces the stored document.
func (m *MemoryPersister) Save(_ context.Context, state PersistedState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.saved = true
	return nil
}
