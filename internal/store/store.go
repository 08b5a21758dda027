// Package store persists component state as whole-snapshot JSON blobs in
// a SQLite database. Every mutation overwrites the full snapshot inside a
// transaction, so a reader never observes a partially written state. An
// optional expiry timestamp is honored on read. The blobs are plain JSON;
// nothing here is an encryption layer.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    expires_at TEXT
);
`

// Store is a SQLite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant location of the snapshot database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finsight", "finsight.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finsight", "finsight.db")
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Set serializes value and overwrites the snapshot under key.
func (s *Store) Set(key string, value any) error {
	return s.set(key, value, time.Time{})
}

// SetWithExpiry stores a snapshot that Get treats as missing after
// expiresAt.
func (s *Store) SetWithExpiry(key string, value any, expiresAt time.Time) error {
	return s.set(key, value, expiresAt)
}

func (s *Store) set(key string, value any, expiresAt time.Time) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding snapshot %q: %w", key, err)
	}

	var expires any
	if !expiresAt.IsZero() {
		expires = expiresAt.UTC().Format(time.RFC3339)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT OR REPLACE INTO snapshots (key, value, updated_at, expires_at)
		VALUES (?, ?, ?, ?)`,
		key, string(blob), time.Now().UTC().Format(time.RFC3339), expires,
	)
	if err != nil {
		return fmt.Errorf("writing snapshot %q: %w", key, err)
	}
	return tx.Commit()
}

// Get unmarshals the snapshot under key into dest. It reports false when
// no snapshot exists or the stored one has expired; an expired row is
// removed on the way out.
func (s *Store) Get(key string, dest any) (bool, error) {
	var blob string
	var expires sql.NullString
	err := s.db.QueryRow("SELECT value, expires_at FROM snapshots WHERE key = ?", key).
		Scan(&blob, &expires)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading snapshot %q: %w", key, err)
	}

	if expires.Valid && expires.String != "" {
		t, err := time.Parse(time.RFC3339, expires.String)
		if err == nil && time.Now().After(t) {
			_ = s.Remove(key)
			return false, nil
		}
	}

	if err := json.Unmarshal([]byte(blob), dest); err != nil {
		return false, fmt.Errorf("decoding snapshot %q: %w", key, err)
	}
	return true, nil
}

// Remove deletes the snapshot under key. Removing a missing key is not
// an error.
func (s *Store) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", key)
	return err
}

// Keys lists the stored snapshot keys.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM snapshots ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
