package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
// Every statement is idempotent, so the full list re-runs on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Daily work records, keyed by ISO date. All three value columns are
	// nullable: a row may exist with nothing but its date (created when a
	// note arrives before any times were recorded).
	`CREATE TABLE IF NOT EXISTS work_hours (
		date          TEXT PRIMARY KEY,
		start_time    TEXT,
		end_time      TEXT,
		break_minutes INTEGER
	)`,

	// Free-text notes attached to a date. AUTOINCREMENT keeps ids
	// monotonic and never reused, even after deletes.
	`CREATE TABLE IF NOT EXISTS notes (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		note TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_date ON notes(date)`,

	`CREATE TABLE IF NOT EXISTS config (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	// Seed the expected workday length on first initialization.
	`INSERT OR IGNORE INTO config (key, value) VALUES ('expected_workday_hours', '7.8')`,
}
