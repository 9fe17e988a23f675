package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are written to be safe to
// re-run on an already-migrated database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id       TEXT PRIMARY KEY,
		user_id  TEXT NOT NULL,
		score    INTEGER NOT NULL CHECK(score BETWEEN 0 AND 27),
		answers  TEXT NOT NULL DEFAULT '',
		taken_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assessments_user_taken ON assessments(user_id, taken_at)`,

	`CREATE TABLE IF NOT EXISTS calendar_entries (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		title        TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		color        TEXT NOT NULL DEFAULT '#6f42c1',
		is_generated INTEGER NOT NULL DEFAULT 0,
		completed    INTEGER NOT NULL DEFAULT 0,
		user_mood    INTEGER CHECK(user_mood IN (-1, 0, 1))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_calendar_user ON calendar_entries(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_user_generated ON calendar_entries(user_id, is_generated)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_user_start ON calendar_entries(user_id, start_time)`,
}
