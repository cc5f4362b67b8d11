package testutil

import (
	"time"

	"github.com/alexanderramin/utsav/internal/calendar"
	"github.com/alexanderramin/utsav/internal/catalog"
	"github.com/alexanderramin/utsav/internal/domain"
)

// Festival options
type FestivalOption func(*domain.Festival)

// WithDate sets the festival date. It panics on a malformed date since
// fixtures are static test input.
func WithDate(date string) FestivalOption {
	return func(f *domain.Festival) {
		f.Date = MustDay(date)
	}
}

func WithName(name string) FestivalOption {
	return func(f *domain.Festival) {
		f.Name = name
	}
}

func WithLocalizedName(name string) FestivalOption {
	return func(f *domain.Festival) {
		f.NameLocalized = name
	}
}

func WithCategory(c domain.Category) FestivalOption {
	return func(f *domain.Festival) {
		f.Category = c
	}
}

// WithShopping appends one shopping category.
func WithShopping(category string, items ...string) FestivalOption {
	return func(f *domain.Festival) {
		f.Shopping = append(f.Shopping, domain.ShoppingCategory{Name: category, Items: items})
	}
}

func WithRecipe(id, name string) FestivalOption {
	return func(f *domain.Festival) {
		f.Recipes = append(f.Recipes, domain.Recipe{ID: id, Name: name, Difficulty: domain.DifficultyEasy})
	}
}

func WithOverview(brief string) FestivalOption {
	return func(f *domain.Festival) {
		f.Overview.Brief = brief
	}
}

// NewTestFestival builds a religious festival dated 2025-10-20 named after
// its id.
func NewTestFestival(id string, opts ...FestivalOption) *domain.Festival {
	f := &domain.Festival{
		ID:       id,
		Name:     id,
		Date:     MustDay("2025-10-20"),
		Category: domain.CategoryReligious,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewTestCatalog wraps festivals in a catalog without collections.
func NewTestCatalog(festivals ...*domain.Festival) *catalog.Catalog {
	return catalog.New(festivals, nil)
}

// MustDay parses a YYYY-MM-DD fixture date.
func MustDay(date string) domain.CivilDay {
	d, err := domain.ParseCivilDay(date)
	if err != nil {
		panic(err)
	}
	return d
}

// ClockAt returns a clock frozen at noon UTC on date.
func ClockAt(date string) calendar.Clock {
	d := MustDay(date)
	return calendar.FixedClock(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC))
}
