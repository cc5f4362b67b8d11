package domain

import (
	"fmt"
	"strings"
	"time"
)

// MonthLayout is the layout accepted by ParseMonth.
const MonthLayout = "2006-01"

// Month identifies a displayed calendar month. Only year and month are
// carried, so navigating never has to normalize a day-of-month.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth builds a Month, normalizing out-of-range month numbers the way
// time.Date does (month 13 of 2025 is January 2026).
func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: time.January}.Add(int(month) - 1)
}

// MonthOf returns the month containing t in t's own location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return MonthOf(t), nil
}

// Add moves n months forward (or backward for negative n), rolling the
// year over as needed.
func (m Month) Add(n int) Month {
	total := m.Year*12 + int(m.Month) - 1 + n
	year := floorDiv(total, 12)
	return Month{Year: year, Month: time.Month(total-year*12) + 1}
}

func (m Month) Next() Month { return m.Add(1) }
func (m Month) Prev() Month { return m.Add(-1) }

// Days returns the number of days in the month, leap years included.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st, Sunday being 0.
func (m Month) FirstWeekday() time.Weekday {
	return m.Day(1).Weekday()
}

// Day returns the civil day with the given day-of-month. The result is not
// validated against Days().
func (m Month) Day(day int) CivilDay {
	return CivilDay{Year: m.Year, Month: m.Month, Day: day}
}

// Contains reports whether d falls within m.
func (m Month) Contains(d CivilDay) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Label returns a display label such as "October 2025".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
