// Package detail models what the festival detail view shows: nothing, or
// one open festival with its active tab, checked shopping items and an
// optional recipe popup.
//
// State is a closed sum type. Closed carries no data. Operations that only
// make sense on an open festival are methods of Open, so setting a tab with
// nothing open cannot be written. Open values are immutable; every
// transition returns a new Open.
package detail

import (
	"sort"

	"github.com/alexanderramin/utsav/internal/domain"
)

// State is either Closed or Open.
type State interface {
	isState()
}

// Closed is the state with no festival selected.
type Closed struct{}

func (Closed) isState() {}

// ItemKey identifies one shopping-list entry of the open festival.
type ItemKey struct {
	Category string
	Item     string
}

// Open is a selected festival.
type Open struct {
	festival *domain.Festival
	tab      domain.Tab
	checked  map[ItemKey]struct{}
	recipe   *domain.Recipe
}

func (Open) isState() {}

// OpenFestival selects f on the overview tab with an empty checklist and no
// recipe open. Selecting always starts fresh, including a festival that
// was open before.
func OpenFestival(f *domain.Festival) Open {
	return Open{festival: f, tab: domain.TabOverview}
}

func (o Open) Festival() *domain.Festival { return o.festival }
func (o Open) Tab() domain.Tab            { return o.tab }

// Recipe returns the open recipe, if any.
func (o Open) Recipe() (*domain.Recipe, bool) {
	return o.recipe, o.recipe != nil
}

// WithTab switches tabs. Checked items and the open recipe are kept.
// Unknown tabs leave the state unchanged.
func (o Open) WithTab(t domain.Tab) Open {
	if !t.Valid() {
		return o
	}
	o.tab = t
	return o
}

// ToggleItem flips the checked flag of one shopping item. Keys that are not
// on the open festival's shopping list are ignored.
func (o Open) ToggleItem(category, item string) Open {
	if !o.festival.Shopping.Contains(category, item) {
		return o
	}
	key := ItemKey{Category: category, Item: item}
	next := make(map[ItemKey]struct{}, len(o.checked)+1)
	for k := range o.checked {
		next[k] = struct{}{}
	}
	if _, ok := next[key]; ok {
		delete(next, key)
	} else {
		next[key] = struct{}{}
	}
	o.checked = next
	return o
}

func (o Open) IsChecked(category, item string) bool {
	_, ok := o.checked[ItemKey{Category: category, Item: item}]
	return ok
}

// ClearChecked unchecks everything.
func (o Open) ClearChecked() Open {
	o.checked = nil
	return o
}

func (o Open) CheckedCount() int { return len(o.checked) }

// ShoppingTotal is the number of items on the open festival's list.
func (o Open) ShoppingTotal() int { return o.festival.Shopping.TotalItems() }

// CheckedItems lists checked keys in shopping-list order.
func (o Open) CheckedItems() []ItemKey {
	out := make([]ItemKey, 0, len(o.checked))
	for k := range o.checked {
		out = append(out, k)
	}
	order := make(map[ItemKey]int)
	i := 0
	for _, c := range o.festival.Shopping {
		for _, it := range c.Items {
			order[ItemKey{Category: c.Name, Item: it}] = i
			i++
		}
	}
	sort.Slice(out, func(a, b int) bool { return order[out[a]] < order[out[b]] })
	return out
}

// OpenRecipe shows one of the open festival's recipes. Ids that do not
// belong to the festival are ignored.
func (o Open) OpenRecipe(id string) Open {
	r, ok := o.festival.RecipeByID(id)
	if !ok {
		return o
	}
	o.recipe = r
	return o
}

// CloseRecipe hides the recipe popup. The festival stays open.
func (o Open) CloseRecipe() Open {
	o.recipe = nil
	return o
}
