package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fest(id, date string) *domain.Festival {
	d, err := domain.ParseCivilDay(date)
	if err != nil {
		panic(err)
	}
	return &domain.Festival{ID: id, Name: id, Date: d}
}

func TestGrid_LeadingBlanksMatchFirstWeekday(t *testing.T) {
	tests := []struct {
		month  domain.Month
		blanks int
		days   int
	}{
		{domain.NewMonth(2025, time.October), 3, 31},  // Wednesday
		{domain.NewMonth(2026, time.February), 0, 28}, // Sunday
		{domain.NewMonth(2025, time.November), 6, 30}, // Saturday
		{domain.NewMonth(2024, time.February), 4, 29}, // Thursday, leap
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			cells := Grid(tt.month, nil)
			require.Len(t, cells, tt.blanks+tt.days)
			for i := 0; i < tt.blanks; i++ {
				assert.True(t, cells[i].Blank())
			}
			assert.Equal(t, 1, cells[tt.blanks].Day)
			assert.Equal(t, tt.days, cells[len(cells)-1].Day)
		})
	}
}

func TestGrid_CellsCarryFestivalsOfThatDay(t *testing.T) {
	festivals := []*domain.Festival{
		fest("diwali", "2025-10-20"),
		fest("dussehra", "2025-10-02"),
		fest("lakshmi-puja", "2025-10-20"),
		fest("holi", "2026-03-04"),
	}

	cells := Grid(domain.NewMonth(2025, time.October), festivals)

	var onDays int
	for _, c := range cells {
		if len(c.Festivals) > 0 {
			onDays++
		}
	}
	assert.Equal(t, 2, onDays)

	day20 := cells[3+19]
	require.Equal(t, 20, day20.Day)
	require.Len(t, day20.Festivals, 2)
	assert.Equal(t, "diwali", day20.Festivals[0].ID, "catalog order is kept within a day")
	assert.Equal(t, "lakshmi-puja", day20.Festivals[1].ID)
}

func TestGrid_EmptyMonthIsValid(t *testing.T) {
	cells := Grid(domain.NewMonth(2025, time.December), []*domain.Festival{fest("holi", "2026-03-04")})
	for _, c := range cells {
		assert.Empty(t, c.Festivals)
	}
}

func TestWeeks_LastRowIsRagged(t *testing.T) {
	cells := Grid(domain.NewMonth(2025, time.October), nil) // 3 + 31 = 34
	rows := Weeks(cells)

	require.Len(t, rows, 5)
	for _, r := range rows[:4] {
		assert.Len(t, r, 7)
	}
	assert.Len(t, rows[4], 6)
}

func TestWeeks_Empty(t *testing.T) {
	assert.Empty(t, Weeks(nil))
}

func TestFestivalsOnDay(t *testing.T) {
	festivals := []*domain.Festival{
		fest("b", "2025-10-20"),
		fest("x", "2025-10-21"),
		fest("a", "2025-10-20"),
	}

	got := FestivalsOnDay(festivals, domain.CivilDay{Year: 2025, Month: time.October, Day: 20})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	assert.Empty(t, FestivalsOnDay(festivals, domain.CivilDay{Year: 2024, Month: time.October, Day: 20}))
}

func TestFestivalsInMonth_ExcludesSameMonthOtherYear(t *testing.T) {
	festivals := []*domain.Festival{
		fest("2025", "2025-10-20"),
		fest("2026", "2026-10-08"),
		fest("nov", "2025-11-01"),
	}

	got := FestivalsInMonth(festivals, domain.NewMonth(2025, time.October))
	require.Len(t, got, 1)
	assert.Equal(t, "2025", got[0].ID)
}

func TestNavigate(t *testing.T) {
	dec := domain.NewMonth(2025, time.December)
	assert.Equal(t, domain.NewMonth(2026, time.January), Navigate(dec, Next))
	assert.Equal(t, domain.NewMonth(2025, time.November), Navigate(dec, Prev))
	assert.Equal(t, dec, Navigate(dec, Direction(0)))

	jan := domain.NewMonth(2026, time.January)
	assert.Equal(t, domain.NewMonth(2025, time.December), Navigate(jan, Prev))
}

func TestNavigate_IsInvertible(t *testing.T) {
	m := domain.NewMonth(2025, time.January)
	for i := 0; i < 30; i++ {
		assert.Equal(t, m, Navigate(Navigate(m, Next), Prev))
		assert.Equal(t, m, Navigate(Navigate(m, Prev), Next))
		m = Navigate(m, Next)
	}
}
