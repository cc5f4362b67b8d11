package domain

import "time"

// Festival is one catalog record. Festivals are shared by pointer between
// the catalog, filtered views and the detail state, and are never mutated
// after the catalog is loaded.
type Festival struct {
	ID            string
	Name          string
	NameLocalized string
	Date          CivilDay
	Category      Category
	Color         string
	Tagline       string
	HeroImage     string
	Overview      Overview
	Celebrate     []CelebrationStep
	Recipes       []Recipe
	Decorations   []Decoration
	Shopping      ShoppingList
}

type Overview struct {
	Brief        string
	History      string
	Significance string
	Duration     string
	Region       string
}

type CelebrationStep struct {
	Step        int
	Title       string
	Description string
	TimeNeeded  string
	Difficulty  Difficulty
}

type Recipe struct {
	ID            string
	Name          string
	NameLocalized string
	Image         string
	Description   string
	Difficulty    Difficulty
	PrepTime      string
	CookTime      string
	Servings      string
	Ingredients   []string
	Instructions  []string
	Tips          []string
}

type Decoration struct {
	Type         string
	Title        string
	Description  string
	Materials    []string
	Difficulty   Difficulty
	TimeNeeded   string
	Steps        []string
	Images       []string
	BeginnerTips []string
}

// ShoppingCategory is one named group of a shopping list.
type ShoppingCategory struct {
	Name  string
	Items []string
}

// ShoppingList keeps categories in the order the catalog declared them.
type ShoppingList []ShoppingCategory

// Contains reports whether item is listed under category.
func (l ShoppingList) Contains(category, item string) bool {
	for _, c := range l {
		if c.Name != category {
			continue
		}
		for _, it := range c.Items {
			if it == item {
				return true
			}
		}
	}
	return false
}

// TotalItems counts items across all categories.
func (l ShoppingList) TotalItems() int {
	n := 0
	for _, c := range l {
		n += len(c.Items)
	}
	return n
}

// RecipeByID returns the festival's recipe with the given id.
func (f *Festival) RecipeByID(id string) (*Recipe, bool) {
	for i := range f.Recipes {
		if f.Recipes[i].ID == id {
			return &f.Recipes[i], true
		}
	}
	return nil, false
}

// DisplayName returns "Name (NameLocalized)" when a localized name exists.
func (f *Festival) DisplayName() string {
	if f.NameLocalized == "" {
		return f.Name
	}
	return f.Name + " (" + f.NameLocalized + ")"
}

// Favorite is a persisted favorite marker. Only the festival id is stored,
// never the record itself.
type Favorite struct {
	FestivalID string
	CreatedAt  time.Time
}
