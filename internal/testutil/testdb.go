package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/utsav/internal/db"
)

// seededAt is the created_at stamp given to seeded favorites.
const seededAt = "2025-10-01T09:00:00Z"

// NewTestDB returns a migrated in-memory favorites database that is closed
// at the end of the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedFavorites stores ids as favorites without going through a repository,
// so tests can plant ids the catalog does not know.
func SeedFavorites(t *testing.T, database *sql.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if _, err := database.Exec(
			`INSERT INTO favorites (festival_id, created_at) VALUES (?, ?)`, id, seededAt,
		); err != nil {
			t.Fatalf("seeding favorite %q: %v", id, err)
		}
	}
}
