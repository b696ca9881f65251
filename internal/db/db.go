// Package db provides PostgreSQL-backed persistence for the resume state
// document, used by server deployments instead of the local file store.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-builder/internal/store"
)

// DB wraps a PostgreSQL connection pool and implements store.Persister over
// a single-row state table keyed by store.StorageKey.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the resume_states table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS resume_states (
			key        TEXT PRIMARY KEY,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create resume_states table: %w", err)
	}
	return nil
}

// Load fetches the persisted state document. ok=false when no row exists.
func (db *DB) Load(ctx context.Context) (store.PersistedState, bool, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT state FROM resume_states WHERE key = $1`,
		store.StorageKey,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return store.PersistedState{}, false, nil
		}
		return store.PersistedState{}, false, fmt.Errorf("failed to load resume state: %w", err)
	}

	var state store.PersistedState
	if err := json.Unmarshal(content, &state); err != nil {
		return store.PersistedState{}, false, fmt.Errorf("failed to parse resume state: %w", err)
	}
	return state, true, nil
}

// Save upserts the state document.
func (db *DB) Save(ctx context.Context, state store.PersistedState) error {
	content, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal resume state: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_states (key, state)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET state = $2, updated_at = NOW()`,
		store.StorageKey, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume state: %w", err)
	}
	return nil
}
