// Package store persists outline snapshots to a local SQLite database.
// The document is an opaque {byId, currentId} JSON blob in a single-row
// table: the cache is a dumb snapshot holder, not a queryable schema, so
// the core's contract stays "one command, one resulting snapshot".
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/jigargosar/ingrid/pkg/model"
)

// DefaultFileName is the snapshot database filename inside the state dir.
const DefaultFileName = "outline.db"

const schema = `
CREATE TABLE IF NOT EXISTS snapshot (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store is a snapshot cache for a single outline document.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the snapshot database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists the document snapshot, replacing any previous one.
func (s *Store) Save(doc *model.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshot (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the cached snapshot and merges it over a freshly constructed
// default document, repairing whatever is stale or missing. A missing or
// unreadable snapshot degrades to the default document; Load never
// returns an invalid model.
func (s *Store) Load() (*model.Document, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshot WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var cached model.Document
	if err := json.Unmarshal(data, &cached); err != nil {
		// A corrupted blob is not fatal; the next Save overwrites it.
		return model.NewDocument(), nil
	}
	return Repair(&cached), nil
}
