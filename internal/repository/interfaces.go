package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/utsav/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

type FavoriteRepo interface {
	// Add marks id as a favorite. Adding an existing favorite keeps its
	// original timestamp.
	Add(ctx context.Context, f *domain.Favorite) error
	Remove(ctx context.Context, festivalID string) error
	Get(ctx context.Context, festivalID string) (*domain.Favorite, error)
	// List returns favorites oldest first.
	List(ctx context.Context) ([]*domain.Favorite, error)
}
