package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/utsav/internal/db"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepo_AddAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFavoriteRepo(db)
	ctx := context.Background()

	at := time.Date(2025, time.October, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "diwali", CreatedAt: at}))

	fetched, err := repo.Get(ctx, "diwali")
	require.NoError(t, err)
	assert.Equal(t, "diwali", fetched.FestivalID)
	assert.True(t, at.Equal(fetched.CreatedAt))
}

func TestFavoriteRepo_AddTwiceKeepsFirstTimestamp(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFavoriteRepo(db)
	ctx := context.Background()

	first := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "holi", CreatedAt: first}))
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "holi", CreatedAt: first.AddDate(0, 1, 0)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, first.Equal(list[0].CreatedAt))
}

func TestFavoriteRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFavoriteRepo(db)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteRepo_Remove(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFavoriteRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "navratri"}))
	_, err := repo.Get(ctx, "navratri")
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, "navratri"))
	_, err = repo.Get(ctx, "navratri")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing again is not an error.
	assert.NoError(t, repo.Remove(ctx, "navratri"))
}

func TestFavoriteRepo_ListOldestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFavoriteRepo(db)
	ctx := context.Background()

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "c", CreatedAt: base.Add(2 * time.Hour)}))
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "a", CreatedAt: base}))
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "b", CreatedAt: base.Add(time.Hour)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, f := range list {
		ids = append(ids, f.FestivalID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestFavoriteRepo_ZeroCreatedAtDefaultsToNow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFavoriteRepo(db)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	require.NoError(t, repo.Add(ctx, &domain.Favorite{FestivalID: "holi"}))

	f, err := repo.Get(ctx, "holi")
	require.NoError(t, err)
	assert.True(t, f.CreatedAt.After(before))
}

func TestFavoriteRepo_WorksInsideTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteFavoriteRepo(tx).Add(ctx, &domain.Favorite{FestivalID: "diwali"})
	})
	require.NoError(t, err)

	f, err := NewSQLiteFavoriteRepo(database).Get(ctx, "diwali")
	require.NoError(t, err)
	assert.Equal(t, "diwali", f.FestivalID)
}
