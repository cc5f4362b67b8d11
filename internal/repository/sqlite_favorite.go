package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/utsav/internal/db"
	"github.com/alexanderramin/utsav/internal/domain"
)

// SQLiteFavoriteRepo implements FavoriteRepo using a SQLite database.
type SQLiteFavoriteRepo struct {
	db db.DBTX
}

// NewSQLiteFavoriteRepo creates a new SQLiteFavoriteRepo.
func NewSQLiteFavoriteRepo(conn db.DBTX) *SQLiteFavoriteRepo {
	return &SQLiteFavoriteRepo{db: conn}
}

func (r *SQLiteFavoriteRepo) Add(ctx context.Context, f *domain.Favorite) error {
	query := `INSERT OR IGNORE INTO favorites (festival_id, created_at) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, f.FestivalID, formatTimestamp(f.CreatedAt)); err != nil {
		return fmt.Errorf("inserting favorite: %w", err)
	}
	return nil
}

func (r *SQLiteFavoriteRepo) Remove(ctx context.Context, festivalID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE festival_id = ?`, festivalID); err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	return nil
}

func (r *SQLiteFavoriteRepo) Get(ctx context.Context, festivalID string) (*domain.Favorite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT festival_id, created_at FROM favorites WHERE festival_id = ?`, festivalID)

	var f domain.Favorite
	var createdAt string
	if err := row.Scan(&f.FestivalID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("favorite %s: %w", festivalID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning favorite: %w", err)
	}
	f.CreatedAt = parseTimestamp(createdAt)
	return &f, nil
}

func (r *SQLiteFavoriteRepo) List(ctx context.Context) ([]*domain.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT festival_id, created_at FROM favorites ORDER BY created_at, festival_id`)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var out []*domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		var createdAt string
		if err := rows.Scan(&f.FestivalID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		f.CreatedAt = parseTimestamp(createdAt)
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favorites: %w", err)
	}
	return out, nil
}
