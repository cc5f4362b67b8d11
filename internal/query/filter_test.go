package query

import (
	"testing"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFestivals() []*domain.Festival {
	return []*domain.Festival{
		{ID: "ganesh", Name: "Ganesh Chaturthi", NameLocalized: "गणेश चतुर्थी", Category: domain.CategoryReligious},
		{ID: "dussehra", Name: "Dussehra", NameLocalized: "दसरा", Category: domain.CategoryCultural},
		{ID: "diwali", Name: "Diwali", NameLocalized: "दिवाळी", Category: domain.CategoryReligious},
		{ID: "sankranti", Name: "Makar Sankranti", Category: domain.CategoryHarvest},
	}
}

func ids(festivals []*domain.Festival) []string {
	out := make([]string, 0, len(festivals))
	for _, f := range festivals {
		out = append(out, f.ID)
	}
	return out
}

func TestFilterCatalog_EmptyTextAllCategoryReturnsEverything(t *testing.T) {
	all := sampleFestivals()
	got := FilterCatalog(all, "", domain.CategoryAll)
	assert.Equal(t, ids(all), ids(got))
}

func TestFilterCatalog_ByCategoryKeepsOrder(t *testing.T) {
	got := FilterCatalog(sampleFestivals(), "", domain.CategoryReligious)
	assert.Equal(t, []string{"ganesh", "diwali"}, ids(got))
}

func TestFilterCatalog_EmptyCategoryMatchesAll(t *testing.T) {
	assert.Len(t, FilterCatalog(sampleFestivals(), "", ""), 4)
}

func TestFilterCatalog_UnknownCategoryMatchesNothing(t *testing.T) {
	assert.Empty(t, FilterCatalog(sampleFestivals(), "", "harvest-moon"))
}

func TestFilterCatalog_NameIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"diwali"}, ids(FilterCatalog(sampleFestivals(), "DIWA", domain.CategoryAll)))
	assert.Equal(t, []string{"ganesh", "sankranti"}, ids(FilterCatalog(sampleFestivals(), "an", domain.CategoryAll)))
}

func TestFilterCatalog_LocalizedNameExactMatch(t *testing.T) {
	got := FilterCatalog(sampleFestivals(), "दसरा", domain.CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "dussehra", got[0].ID)
	assert.NotContains(t, got[0].Name, "दसरा")
}

func TestFilterCatalog_TextAndCategoryCombine(t *testing.T) {
	got := FilterCatalog(sampleFestivals(), "d", domain.CategoryReligious)
	assert.Equal(t, []string{"diwali"}, ids(got))
}

func TestFilterCatalog_NarrowingNeverGrows(t *testing.T) {
	all := sampleFestivals()
	queries := []string{"Ganesh Chaturthi", "Makar", "दिवाळी", "xyz"}
	for _, q := range queries {
		prev := len(all)
		for i := 0; i <= len(q); i++ {
			n := len(FilterCatalog(all, q[:i], domain.CategoryAll))
			assert.LessOrEqual(t, n, prev, "prefix %q", q[:i])
			prev = n
		}
	}
}

func TestFilterCatalog_DoesNotMutateInput(t *testing.T) {
	all := sampleFestivals()
	before := ids(all)

	first := FilterCatalog(all, "a", domain.CategoryReligious)
	second := FilterCatalog(all, "a", domain.CategoryReligious)

	assert.Equal(t, before, ids(all))
	assert.Equal(t, first, second)
}

func TestMatchesText(t *testing.T) {
	f := &domain.Festival{Name: "Holi", NameLocalized: "होळी"}
	assert.True(t, MatchesText(f, ""))
	assert.True(t, MatchesText(f, "hol"))
	assert.True(t, MatchesText(f, "होळी"))
	assert.False(t, MatchesText(f, "diwali"))
}

func TestInCollection(t *testing.T) {
	got := InCollection(sampleFestivals(), []string{"sankranti", "ganesh", "unknown"})
	assert.Equal(t, []string{"ganesh", "sankranti"}, ids(got), "catalog order, unknown ids ignored")
	assert.Empty(t, InCollection(sampleFestivals(), nil))
}
