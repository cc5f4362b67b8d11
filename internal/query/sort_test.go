package query

import (
	"testing"
	"time"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(id, date string) *domain.Festival {
	d, err := domain.ParseCivilDay(date)
	if err != nil {
		panic(err)
	}
	return &domain.Festival{ID: id, Name: id, Date: d}
}

func TestParseSortMode(t *testing.T) {
	m, err := ParseSortMode("Date")
	require.NoError(t, err)
	assert.Equal(t, SortDate, m)

	m, err = ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortCatalog, m)

	_, err = ParseSortMode("random")
	assert.Error(t, err)
}

func TestSorted_ByDateIsStable(t *testing.T) {
	in := []*domain.Festival{
		dated("holi", "2026-03-04"),
		dated("diwali", "2025-10-20"),
		dated("lakshmi", "2025-10-20"),
		dated("navratri", "2025-09-22"),
	}

	got := Sorted(in, SortDate)
	assert.Equal(t, []string{"navratri", "diwali", "lakshmi", "holi"}, ids(got))
	assert.Equal(t, "holi", in[0].ID, "input left untouched")
}

func TestSorted_ByName(t *testing.T) {
	in := []*domain.Festival{dated("holi", "2026-03-04"), dated("Diwali", "2025-10-20"), dated("bhau-beej", "2025-10-23")}
	assert.Equal(t, []string{"bhau-beej", "Diwali", "holi"}, ids(Sorted(in, SortName)))
}

func TestSorted_CatalogReturnsCopy(t *testing.T) {
	in := []*domain.Festival{dated("b", "2025-01-01"), dated("a", "2024-01-01")}
	got := Sorted(in, SortCatalog)
	got[0] = nil
	assert.NotNil(t, in[0])
}

func TestUpcoming_StrictlyAfterToday(t *testing.T) {
	in := []*domain.Festival{
		dated("holi", "2026-03-04"),
		dated("diwali", "2025-10-20"),
		dated("bhau-beej", "2025-10-23"),
		dated("dussehra", "2025-10-02"),
	}
	today := domain.CivilDay{Year: 2025, Month: time.October, Day: 20}

	assert.Equal(t, []string{"bhau-beej", "holi"}, ids(Upcoming(in, today, 0)))
	assert.Equal(t, []string{"bhau-beej"}, ids(Upcoming(in, today, 1)))
	assert.Empty(t, Upcoming(in, domain.CivilDay{Year: 2030, Month: time.January, Day: 1}, 5))
}
