package service

import (
	"context"

	"github.com/alexanderramin/utsav/internal/catalog"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/favorites"
)

// CatalogService loads the festival catalog once at startup.
type CatalogService interface {
	// Load returns the catalog and the records that were excluded from it.
	// Excluded records are also logged; they never fail the load.
	Load(ctx context.Context) (*catalog.Catalog, []catalog.Warning, error)
}

// FavoriteService persists the favorite set. Only festival ids are stored.
type FavoriteService interface {
	// Load reads stored favorites, keeping only ids present in cat. The
	// dropped ids are returned but not deleted from storage.
	Load(ctx context.Context, cat *catalog.Catalog) (favorites.Store, []string, error)
	// Save records the outcome of a toggle.
	Save(ctx context.Context, festivalID string, on bool) error
	List(ctx context.Context) ([]*domain.Favorite, error)
	// Get returns one stored favorite, wrapping repository.ErrNotFound when
	// the id is not stored.
	Get(ctx context.Context, festivalID string) (*domain.Favorite, error)
	// Prune deletes stored ids that are not in cat, in one transaction.
	Prune(ctx context.Context, cat *catalog.Catalog) ([]string, error)
}
