package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/utsav/internal/db"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB opens a file-backed database so the pool really hands
// out several connections.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	database, err := db.OpenDB(filepath.Join(dir, "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// A TUI session and a one-shot `utsav fav` command may share the database
// file. One writer with several readers must not fail or see torn rows.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteFavoriteRepo(database)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := repo.Add(ctx, &domain.Favorite{FestivalID: fmt.Sprintf("festival-%02d", i)}); err != nil {
				t.Errorf("writer: add favorite %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := repo.List(ctx)
				if err != nil {
					t.Errorf("reader %d: list favorites: %v", reader, err)
					return
				}
				for _, f := range list {
					if f.FestivalID == "" || f.CreatedAt.IsZero() {
						t.Errorf("reader %d: got incomplete favorite %+v", reader, f)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

// Two processes toggling different festivals both land their writes; the
// busy timeout serialises them instead of surfacing SQLITE_BUSY.
func TestConcurrentAccess_TwoWriters(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	a := NewSQLiteFavoriteRepo(database)
	b := NewSQLiteFavoriteRepo(database)

	var wg sync.WaitGroup
	for w, repo := range []*SQLiteFavoriteRepo{a, b} {
		wg.Add(1)
		go func(writer int, repo *SQLiteFavoriteRepo) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				id := fmt.Sprintf("w%d-%02d", writer, i)
				if err := repo.Add(ctx, &domain.Favorite{FestivalID: id}); err != nil {
					t.Errorf("writer %d: add %s: %v", writer, id, err)
					return
				}
				if i%2 == 1 {
					if err := repo.Remove(ctx, id); err != nil {
						t.Errorf("writer %d: remove %s: %v", writer, id, err)
						return
					}
				}
			}
		}(w, repo)
	}
	wg.Wait()

	list, err := a.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10, "five kept per writer")
}
