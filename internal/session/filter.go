package session

import (
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/query"
)

func (s *Session) SearchText() string { return s.searchText }

func (s *Session) SetSearchText(text string) { s.searchText = text }

func (s *Session) Category() domain.Category { return s.category }

// SetCategory sets the category filter. Empty means "all".
func (s *Session) SetCategory(c domain.Category) {
	if c == "" {
		c = domain.CategoryAll
	}
	s.category = c
}

func (s *Session) Collection() string { return s.collection }

// SetCollection restricts every view to a named collection. An empty name
// clears the restriction. Unknown names are rejected and leave the current
// collection in place.
func (s *Session) SetCollection(name string) bool {
	if name == "" {
		s.collection = ""
		return true
	}
	if _, ok := s.catalog.Collection(name); !ok {
		return false
	}
	s.collection = name
	return true
}

func (s *Session) Sort() query.SortMode { return s.sort }

func (s *Session) SetSort(m query.SortMode) { s.sort = m }

// ClearFilters resets search, category and collection.
func (s *Session) ClearFilters() {
	s.searchText = ""
	s.category = domain.CategoryAll
	s.collection = ""
}

// Filtered returns the festivals passing the active filters, ordered by
// the active sort. Every view reads from here.
func (s *Session) Filtered() []*domain.Festival {
	return query.Sorted(s.view(), s.sort)
}

// view is the filtered festival list in catalog order.
func (s *Session) view() []*domain.Festival {
	festivals := s.catalog.Festivals()
	if s.collection != "" {
		if col, ok := s.catalog.Collection(s.collection); ok {
			festivals = query.InCollection(festivals, col.FestivalIDs)
		}
	}
	return query.FilterCatalog(festivals, s.searchText, s.category)
}

// Upcoming returns filtered festivals after today, soonest first.
func (s *Session) Upcoming(limit int) []*domain.Festival {
	return query.Upcoming(s.view(), s.clock.Today(), limit)
}
