// Package session owns the per-user browsing state: the displayed month,
// the active filter, the favorite set and the detail selection. Every
// surface (TUI views, one-shot commands) reads and changes that state
// through a Session. A Session is not safe for concurrent use; it belongs
// to the goroutine driving the surface.
package session

import (
	"github.com/alexanderramin/utsav/internal/calendar"
	"github.com/alexanderramin/utsav/internal/catalog"
	"github.com/alexanderramin/utsav/internal/detail"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/favorites"
	"github.com/alexanderramin/utsav/internal/query"
)

// Session is created at startup and discarded at exit. It performs no I/O.
type Session struct {
	id      string
	catalog *catalog.Catalog
	clock   calendar.Clock

	month      domain.Month
	searchText string
	category   domain.Category
	collection string
	sort       query.SortMode

	favorites favorites.Store
	detail    *detail.Machine
}

type Option func(*Session)

func WithClock(c calendar.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithFavorites seeds the favorite set, typically from storage.
func WithFavorites(f favorites.Store) Option {
	return func(s *Session) { s.favorites = f }
}

// WithMonth sets the initially displayed month. Without it the session
// opens on the clock's current month.
func WithMonth(m domain.Month) Option {
	return func(s *Session) { s.month = m }
}

func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New starts a session over cat. Filters start at "all" with no search.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:  cat,
		clock:    calendar.NewClock(nil),
		category: domain.CategoryAll,
		sort:     query.SortCatalog,
		detail:   detail.NewMachine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.month == (domain.Month{}) {
		s.month = s.clock.CurrentMonth()
	}
	return s
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
func (s *Session) Clock() calendar.Clock     { return s.clock }
