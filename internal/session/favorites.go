package session

import (
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/favorites"
)

// ToggleFavorite flips the favorite flag of a catalog festival and reports
// the new flag. ok is false, and nothing changes, when id is not in the
// catalog. The active filter plays no part.
func (s *Session) ToggleFavorite(id string) (on bool, ok bool) {
	if !s.catalog.Has(id) {
		return false, false
	}
	s.favorites = s.favorites.Toggle(id)
	return s.favorites.Has(id), true
}

func (s *Session) IsFavorite(id string) bool { return s.favorites.Has(id) }

// Favorites returns the favorite set as a value.
func (s *Session) Favorites() favorites.Store { return s.favorites }

// AllFavorites returns the favorited festivals in catalog order, ignoring
// the active filter.
func (s *Session) AllFavorites() []*domain.Festival {
	return s.favorites.All(s.catalog.Festivals())
}
