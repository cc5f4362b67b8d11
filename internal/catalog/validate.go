package catalog

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
)

var validDifficulties = map[string]bool{"": true, "easy": true, "medium": true, "hard": true}

// Warning describes a catalog record or collection that was excluded, or a
// field that was ignored, while loading.
type Warning struct {
	Index  int // position in the source list; -1 for collection-level warnings
	ID     string
	Reason string
}

func (w Warning) String() string {
	if w.ID != "" {
		return fmt.Sprintf("festivals[%d] (%s): %s", w.Index, w.ID, w.Reason)
	}
	if w.Index >= 0 {
		return fmt.Sprintf("festivals[%d]: %s", w.Index, w.Reason)
	}
	return w.Reason
}

// validateFestival returns the reasons a record must be excluded. An empty
// result means the record is usable. seen tracks ids already accepted.
func validateFestival(f *FestivalImport, seen map[string]bool) []string {
	var reasons []string

	id := strings.TrimSpace(f.ID)
	if id == "" {
		reasons = append(reasons, "id is required")
	} else if seen[id] {
		reasons = append(reasons, fmt.Sprintf("duplicate id %q", id))
	}
	if strings.TrimSpace(f.Name) == "" {
		reasons = append(reasons, "name is required")
	}
	if f.Date == "" {
		reasons = append(reasons, "date is required")
	} else if _, err := domain.ParseCivilDay(f.Date); err != nil {
		reasons = append(reasons, err.Error())
	}

	return reasons
}

// softWarnings reports problems that do not exclude the record: the
// offending value is normalized instead.
func softWarnings(f *FestivalImport) []string {
	var warns []string

	recipeIDs := make(map[string]bool)
	for i, r := range f.Recipes {
		if r.ID == "" {
			warns = append(warns, fmt.Sprintf("recipes[%d].id is empty; recipe cannot be opened", i))
		} else if recipeIDs[r.ID] {
			warns = append(warns, fmt.Sprintf("recipes[%d].id: duplicate id %q; only the first can be opened", i, r.ID))
		}
		recipeIDs[r.ID] = true
		if !validDifficulties[strings.ToLower(r.Difficulty)] {
			warns = append(warns, fmt.Sprintf("recipes[%d].difficulty: unknown value %q", i, r.Difficulty))
		}
	}
	for i, s := range f.HowToCelebrate {
		if !validDifficulties[strings.ToLower(s.Difficulty)] {
			warns = append(warns, fmt.Sprintf("how_to_celebrate[%d].difficulty: unknown value %q", i, s.Difficulty))
		}
	}
	for i, d := range f.Decorations {
		if !validDifficulties[strings.ToLower(d.Difficulty)] {
			warns = append(warns, fmt.Sprintf("decorations[%d].difficulty: unknown value %q", i, d.Difficulty))
		}
	}
	seenCats := make(map[string]bool)
	for _, c := range f.ShoppingList {
		if seenCats[c.Name] {
			warns = append(warns, fmt.Sprintf("shopping_list: duplicate category %q", c.Name))
			continue
		}
		seenCats[c.Name] = true
		seenItems := make(map[string]bool)
		for _, item := range c.Items {
			if seenItems[item] {
				warns = append(warns, fmt.Sprintf("shopping_list[%q]: duplicate item %q", c.Name, item))
			}
			seenItems[item] = true
		}
	}

	return warns
}

// validateCollections drops unknown festival ids and unnamed or duplicate
// collections.
func validateCollections(cols []CollectionImport, known map[string]bool) ([]Collection, []Warning) {
	var out []Collection
	var warns []Warning
	names := make(map[string]bool)

	for i, c := range cols {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			warns = append(warns, Warning{Index: -1, Reason: fmt.Sprintf("collections[%d].name is required", i)})
			continue
		}
		if names[name] {
			warns = append(warns, Warning{Index: -1, Reason: fmt.Sprintf("collections[%d]: duplicate name %q", i, name)})
			continue
		}
		names[name] = true

		col := Collection{Name: name, Title: c.Title}
		if col.Title == "" {
			col.Title = name
		}
		for _, id := range c.FestivalIDs {
			if !known[id] {
				warns = append(warns, Warning{Index: -1, Reason: fmt.Sprintf("collection %q: unknown festival id %q", name, id)})
				continue
			}
			col.FestivalIDs = append(col.FestivalIDs, id)
		}
		out = append(out, col)
	}
	return out, warns
}
