package history

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/001_initial.sql
var migration001 string

var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

// migrate applies all pending migrations, gated by schema_version.
func (db *DB) migrate() error {
	currentVersion := 0

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("history: failed to check schema version table: %w", err)
	}

	if count > 0 {
		if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion); err != nil {
			return fmt.Errorf("history: failed to get current schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("history: failed to apply migration %d: %w", m.version, err)
		}
	}
	return nil
}
