package catalog

import "github.com/alexanderramin/utsav/internal/domain"

// Collection is a named, ordered subset of the catalog.
type Collection struct {
	Name        string
	Title       string
	FestivalIDs []string
}

// Catalog is the immutable, loaded-once festival collection. Accessors
// return fresh slices; the records themselves are shared and must not be
// modified by callers.
type Catalog struct {
	festivals   []*domain.Festival
	byID        map[string]*domain.Festival
	collections []Collection
}

// New builds a Catalog from already-validated festivals. Ids are assumed to
// be unique; a later duplicate is not reachable through ByID.
func New(festivals []*domain.Festival, collections []Collection) *Catalog {
	c := &Catalog{
		festivals:   append([]*domain.Festival(nil), festivals...),
		byID:        make(map[string]*domain.Festival, len(festivals)),
		collections: append([]Collection(nil), collections...),
	}
	for _, f := range festivals {
		if _, dup := c.byID[f.ID]; !dup {
			c.byID[f.ID] = f
		}
	}
	return c
}

// Festivals returns all records in catalog order.
func (c *Catalog) Festivals() []*domain.Festival {
	return append([]*domain.Festival(nil), c.festivals...)
}

func (c *Catalog) Len() int { return len(c.festivals) }

// ByID looks up a festival by id.
func (c *Catalog) ByID(id string) (*domain.Festival, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Has reports whether id names a festival in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Categories returns the distinct category tags in order of first
// appearance.
func (c *Catalog) Categories() []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, f := range c.festivals {
		if f.Category == "" || seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		out = append(out, f.Category)
	}
	return out
}

func (c *Catalog) Collections() []Collection {
	return append([]Collection(nil), c.collections...)
}

// Collection looks up a collection by name.
func (c *Catalog) Collection(name string) (Collection, bool) {
	for _, col := range c.collections {
		if col.Name == name {
			return col, true
		}
	}
	return Collection{}, false
}
