package session

import (
	"testing"

	"github.com/alexanderramin/utsav/internal/detail"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/favorites"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavorite_IndependentOfFilter(t *testing.T) {
	s := newTestSession()
	s.SetCategory(domain.CategoryCultural)

	on, ok := s.ToggleFavorite("diwali")
	require.True(t, ok)
	assert.True(t, on)
	assert.NotContains(t, festivalIDs(s.Filtered()), "diwali")
	assert.True(t, s.IsFavorite("diwali"))
	assert.Equal(t, []string{"diwali"}, festivalIDs(s.AllFavorites()))
}

func TestToggleFavorite_UnknownIDIsNoop(t *testing.T) {
	s := newTestSession()
	on, ok := s.ToggleFavorite("not-a-festival")
	assert.False(t, ok)
	assert.False(t, on)
	assert.Equal(t, 0, s.Favorites().Len())
}

func TestToggleFavorite_Twice(t *testing.T) {
	s := newTestSession(WithFavorites(favorites.New("holi")))
	before := s.Favorites()

	s.ToggleFavorite("diwali")
	on, _ := s.ToggleFavorite("diwali")

	assert.False(t, on)
	assert.True(t, s.Favorites().Equal(before))
}

func TestAllFavorites_CatalogOrder(t *testing.T) {
	s := newTestSession(WithFavorites(favorites.New("holi", "navratri")))
	assert.Equal(t, []string{"navratri", "holi"}, festivalIDs(s.AllFavorites()))
}

func TestSelect_UnknownID(t *testing.T) {
	s := newTestSession()
	assert.False(t, s.Select("nope"))
	assert.Equal(t, detail.Closed{}, s.Detail())
}

func TestSelectAnother_ClearsChecklist(t *testing.T) {
	s := newTestSession()
	require.True(t, s.Select("diwali"))
	s.ToggleChecklistItem("Puja", "Diyas")
	s.ToggleChecklistItem("Sweets", "Besan")

	o, ok := s.OpenDetail()
	require.True(t, ok)
	require.Equal(t, 2, o.CheckedCount())

	require.True(t, s.Select("holi"))
	o, ok = s.OpenDetail()
	require.True(t, ok)
	assert.Equal(t, "holi", o.Festival().ID)
	assert.Equal(t, 0, o.CheckedCount())
}

func TestDetail_TabSwitchKeepsChecklist(t *testing.T) {
	s := newTestSession()
	s.Select("diwali")
	s.ToggleChecklistItem("Puja", "Camphor")
	s.SetTab(domain.TabRecipes)

	o, _ := s.OpenDetail()
	assert.Equal(t, domain.TabRecipes, o.Tab())
	assert.True(t, o.IsChecked("Puja", "Camphor"))

	s.ClearChecklist()
	o, _ = s.OpenDetail()
	assert.Equal(t, 0, o.CheckedCount())
}

func TestDetail_RecipeLifecycle(t *testing.T) {
	s := newTestSession()
	s.Select("diwali")
	s.OpenRecipe("besan-laddu")

	s.CloseRecipe()
	o, ok := s.OpenDetail()
	require.True(t, ok, "closing the recipe keeps the detail open")
	_, recipeOpen := o.Recipe()
	assert.False(t, recipeOpen)

	s.OpenRecipe("besan-laddu")
	s.Close()
	assert.Equal(t, detail.Closed{}, s.Detail())
}

func TestDetail_OperationsWhileClosed(t *testing.T) {
	s := newTestSession()
	s.SetTab(domain.TabShopping)
	s.ToggleChecklistItem("Puja", "Diyas")
	s.OpenRecipe("besan-laddu")
	s.CloseRecipe()
	s.ClearChecklist()

	assert.Equal(t, detail.Closed{}, s.Detail())
}

func TestSelectDay(t *testing.T) {
	s := newTestSession()

	assert.False(t, s.SelectDay(21))
	require.True(t, s.SelectDay(20))
	o, _ := s.OpenDetail()
	assert.Equal(t, "diwali", o.Festival().ID)
}
