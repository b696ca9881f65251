// Package filestore persists the resume state document to a JSON file on
// local disk, the durable-storage backend for single-user deployments.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/store"
)

// Persister writes the state document to <dir>/<StorageKey>.json using a
// temp-file-and-rename so a crash mid-write cannot corrupt the document.
type Persister struct {
	path string
}

// New creates a file persister rooted at dir, creating dir if needed.
func New(dir string) (*Persister, error) {
	if dir == "" {
		return nil, fmt.Errorf("filestore: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: failed to create dir %s: %w", dir, err)
	}
	return &Persister{path: filepath.Join(dir, store.StorageKey+".json")}, nil
}

// Path returns the location of the state document.
func (p *Persister) Path() string {
	return p.path
}

// Load reads the persisted document. A missing file is not an error; it
// reports ok=false so the store starts from defaults.
func (p *Persister) Load(_ context.Context) (store.PersistedState, bool, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.PersistedState{}, false, nil
		}
		return store.PersistedState{}, false, fmt.Errorf("filestore: failed to read %s: %w", p.path, err)
	}

	var state store.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return store.PersistedState{}, false, fmt.Errorf("filestore: failed to parse %s: %w", p.path, err)
	}
	return state, true, nil
}

// Save replaces the persisted document atomically.
func (p *Persister) Save(_ context.Context, state store.PersistedState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: failed to marshal state: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("filestore: failed to replace %s: %w", p.path, err)
	}
	return nil
}
