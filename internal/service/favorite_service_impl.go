package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/utsav/internal/catalog"
	"github.com/alexanderramin/utsav/internal/db"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/favorites"
	"github.com/alexanderramin/utsav/internal/repository"
)

type favoriteService struct {
	favorites repository.FavoriteRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewFavoriteService(
	favs repository.FavoriteRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) FavoriteService {
	return &favoriteService{
		favorites: favs,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *favoriteService) Load(ctx context.Context, cat *catalog.Catalog) (favorites.Store, []string, error) {
	var (
		store   favorites.Store
		dropped []string
	)
	fields := map[string]any{}
	err := observe(ctx, s.observer, "load-favorites", fields, func() error {
		list, err := s.favorites.List(ctx)
		if err != nil {
			return fmt.Errorf("loading favorites: %w", err)
		}
		ids := make([]string, 0, len(list))
		for _, f := range list {
			ids = append(ids, f.FestivalID)
		}
		store, dropped = favorites.New(ids...).Retain(cat.Has)
		fields["count"] = store.Len()
		fields["dropped"] = len(dropped)
		return nil
	})
	if err != nil {
		return favorites.Store{}, nil, err
	}
	return store, dropped, nil
}

func (s *favoriteService) Save(ctx context.Context, festivalID string, on bool) error {
	fields := map[string]any{"festival_id": festivalID, "on": on}
	return observe(ctx, s.observer, "save-favorite", fields, func() error {
		if on {
			return s.favorites.Add(ctx, &domain.Favorite{FestivalID: festivalID, CreatedAt: s.now().UTC()})
		}
		return s.favorites.Remove(ctx, festivalID)
	})
}

func (s *favoriteService) List(ctx context.Context) ([]*domain.Favorite, error) {
	return s.favorites.List(ctx)
}

func (s *favoriteService) Get(ctx context.Context, festivalID string) (*domain.Favorite, error) {
	return s.favorites.Get(ctx, festivalID)
}

func (s *favoriteService) Prune(ctx context.Context, cat *catalog.Catalog) ([]string, error) {
	var removed []string
	fields := map[string]any{}
	err := observe(ctx, s.observer, "prune-favorites", fields, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txFavorites := repository.NewSQLiteFavoriteRepo(tx)

			list, err := txFavorites.List(ctx)
			if err != nil {
				return err
			}
			for _, f := range list {
				if cat.Has(f.FestivalID) {
					continue
				}
				if err := txFavorites.Remove(ctx, f.FestivalID); err != nil {
					return err
				}
				removed = append(removed, f.FestivalID)
			}
			fields["removed"] = len(removed)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("pruning favorites: %w", err)
	}
	return removed, nil
}
