package calendar

import "github.com/alexanderramin/utsav/internal/domain"

// Direction is a month navigation step.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Cell is one slot of a month grid. Padding cells have Day == 0.
type Cell struct {
	Day       int
	Festivals []*domain.Festival
}

// Blank reports whether the cell is padding before the 1st.
func (c Cell) Blank() bool { return c.Day == 0 }

// Grid lays out a month: one blank cell per weekday before the 1st
// (Sunday first), then one cell per day. The result is not padded at the
// end, so the last week may be short. festivals should be the already
// filtered view; each day cell keeps their order.
func Grid(m domain.Month, festivals []*domain.Festival) []Cell {
	lead := int(m.FirstWeekday())
	days := m.Days()
	cells := make([]Cell, lead, lead+days)

	byDay := make(map[int][]*domain.Festival)
	for _, f := range FestivalsInMonth(festivals, m) {
		byDay[f.Date.Day] = append(byDay[f.Date.Day], f)
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day, Festivals: byDay[day]})
	}
	return cells
}

// Weeks splits grid cells into rows of seven. The final row is returned as
// is, without trailing padding.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

// FestivalsOnDay returns the festivals dated on day, in input order. The
// first element is the one opened when a day with several festivals is
// picked.
func FestivalsOnDay(festivals []*domain.Festival, day domain.CivilDay) []*domain.Festival {
	var out []*domain.Festival
	for _, f := range festivals {
		if f.Date.Equal(day) {
			out = append(out, f)
		}
	}
	return out
}

// FestivalsInMonth returns the festivals dated within m, in input order.
func FestivalsInMonth(festivals []*domain.Festival, m domain.Month) []*domain.Festival {
	var out []*domain.Festival
	for _, f := range festivals {
		if m.Contains(f.Date) {
			out = append(out, f)
		}
	}
	return out
}

// Navigate moves one month in the given direction. Unknown directions
// leave the month unchanged.
func Navigate(m domain.Month, dir Direction) domain.Month {
	switch dir {
	case Prev:
		return m.Prev()
	case Next:
		return m.Next()
	default:
		return m
	}
}
