package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Only festival ids are stored. Festival records live in the catalog and
// are never copied into the database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS favorites (
		festival_id TEXT PRIMARY KEY CHECK(festival_id != ''),
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_favorites_created ON favorites(created_at)`,
}
