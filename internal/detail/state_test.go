package detail

import (
	"testing"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diwali() *domain.Festival {
	return &domain.Festival{
		ID:   "diwali",
		Name: "Diwali",
		Recipes: []domain.Recipe{
			{ID: "besan-laddu", Name: "Besan Laddu"},
			{ID: "chakli", Name: "Chakli"},
		},
		Shopping: domain.ShoppingList{
			{Name: "Puja", Items: []string{"Diyas", "Camphor"}},
			{Name: "Sweets", Items: []string{"Besan", "Ghee"}},
		},
	}
}

func holi() *domain.Festival {
	return &domain.Festival{
		ID:       "holi",
		Name:     "Holi",
		Recipes:  []domain.Recipe{{ID: "gujiya", Name: "Gujiya"}},
		Shopping: domain.ShoppingList{{Name: "Colors", Items: []string{"Gulal"}}},
	}
}

func TestOpenFestival_StartsOnOverview(t *testing.T) {
	o := OpenFestival(diwali())
	assert.Equal(t, domain.TabOverview, o.Tab())
	assert.Equal(t, 0, o.CheckedCount())
	_, open := o.Recipe()
	assert.False(t, open)
	assert.Equal(t, 4, o.ShoppingTotal())
}

func TestOpen_WithTabKeepsChecklistAndRecipe(t *testing.T) {
	o := OpenFestival(diwali()).
		ToggleItem("Puja", "Diyas").
		OpenRecipe("chakli").
		WithTab(domain.TabShopping)

	assert.Equal(t, domain.TabShopping, o.Tab())
	assert.True(t, o.IsChecked("Puja", "Diyas"))
	r, ok := o.Recipe()
	require.True(t, ok)
	assert.Equal(t, "chakli", r.ID)

	assert.Equal(t, domain.TabShopping, o.WithTab("bogus").Tab())
}

func TestOpen_ToggleItem(t *testing.T) {
	o := OpenFestival(diwali())
	checked := o.ToggleItem("Sweets", "Ghee")

	assert.True(t, checked.IsChecked("Sweets", "Ghee"))
	assert.False(t, o.IsChecked("Sweets", "Ghee"), "transitions do not modify the receiver")
	assert.False(t, checked.ToggleItem("Sweets", "Ghee").IsChecked("Sweets", "Ghee"))
}

func TestOpen_ToggleItemIgnoresUnknownKeys(t *testing.T) {
	o := OpenFestival(diwali())
	assert.Equal(t, 0, o.ToggleItem("Puja", "Gulal").CheckedCount(), "item from another category")
	assert.Equal(t, 0, o.ToggleItem("Colors", "Gulal").CheckedCount(), "category from another festival")
}

func TestOpen_ClearChecked(t *testing.T) {
	o := OpenFestival(diwali()).ToggleItem("Puja", "Diyas").ToggleItem("Sweets", "Besan")
	require.Equal(t, 2, o.CheckedCount())

	cleared := o.ClearChecked()
	assert.Equal(t, 0, cleared.CheckedCount())
	assert.Equal(t, 2, o.CheckedCount())
}

func TestOpen_CheckedItemsInListOrder(t *testing.T) {
	o := OpenFestival(diwali()).
		ToggleItem("Sweets", "Ghee").
		ToggleItem("Puja", "Camphor").
		ToggleItem("Sweets", "Besan")

	assert.Equal(t, []ItemKey{
		{Category: "Puja", Item: "Camphor"},
		{Category: "Sweets", Item: "Besan"},
		{Category: "Sweets", Item: "Ghee"},
	}, o.CheckedItems())
}

func TestOpen_RecipeOnlyFromOpenFestival(t *testing.T) {
	o := OpenFestival(diwali())

	_, ok := o.OpenRecipe("gujiya").Recipe()
	assert.False(t, ok)

	withRecipe := o.OpenRecipe("besan-laddu")
	closed := withRecipe.CloseRecipe()
	_, ok = closed.Recipe()
	assert.False(t, ok)
	assert.Equal(t, "diwali", closed.Festival().ID, "closing the recipe keeps the festival open")
}
