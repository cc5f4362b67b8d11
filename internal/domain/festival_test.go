package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingList_Contains(t *testing.T) {
	l := ShoppingList{
		{Name: "Puja", Items: []string{"Diya", "Incense"}},
		{Name: "Food", Items: []string{"Ghee"}},
	}
	assert.True(t, l.Contains("Puja", "Diya"))
	assert.False(t, l.Contains("Food", "Diya"), "item exists only under a different category")
	assert.False(t, l.Contains("Sweets", "Ghee"))
	assert.Equal(t, 3, l.TotalItems())
}

func TestFestival_RecipeByID(t *testing.T) {
	f := &Festival{Recipes: []Recipe{{ID: "modak"}, {ID: "puran-poli"}}}

	r, ok := f.RecipeByID("puran-poli")
	require.True(t, ok)
	assert.Same(t, &f.Recipes[1], r)

	_, ok = f.RecipeByID("laddu")
	assert.False(t, ok)
}

func TestTab_Offset(t *testing.T) {
	assert.Equal(t, TabCelebrate, TabOverview.Offset(1))
	assert.Equal(t, TabShopping, TabOverview.Offset(-1))
	assert.Equal(t, TabOverview, TabShopping.Offset(1))
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" Recipes ")
	require.NoError(t, err)
	assert.Equal(t, TabRecipes, tab)

	_, err = ParseTab("gallery")
	assert.Error(t, err)
}
