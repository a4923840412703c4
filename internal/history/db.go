// Package history persists solve requests and their results to a local
// SQLite file: an audit trail of what was solved and how, not solver state.
// Pruning tables are never persisted here — they're rebuilt in memory every
// process start, per spec.md's non-goal on precomputed table persistence.
//
// Grounded on gocube_ble_library's internal/app/storage package: the same
// DB wrapper, schema_version-gated migrations, and repository-per-table
// shape, adapted to this domain's one table.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// DefaultPath returns the default history database path under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("history: failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".thistlecube")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("history: failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens (creating if necessary) the SQLite database at path and
// applies any pending migrations.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("history: failed to enable WAL mode: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenDefault opens the database at DefaultPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
