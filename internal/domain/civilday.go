package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and display layout for festival dates.
const DateLayout = "2006-01-02"

// CivilDay is a calendar date with no time-of-day or zone attached.
// Every festival date comparison goes through Equal/Compare so that two
// values naming the same (year, month, day) are always equal.
type CivilDay struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCivilDay parses a YYYY-MM-DD string. Out-of-range days such as
// 2023-02-29 are rejected.
func ParseCivilDay(s string) (CivilDay, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return CivilDay{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return CivilDayOf(t), nil
}

// CivilDayOf returns the civil day of t in t's own location.
func CivilDayOf(t time.Time) CivilDay {
	y, m, d := t.Date()
	return CivilDay{Year: y, Month: m, Day: d}
}

func (d CivilDay) IsZero() bool {
	return d == CivilDay{}
}

// Equal reports whether d and o name the same civil day.
func (d CivilDay) Equal(o CivilDay) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after o.
func (d CivilDay) Compare(o CivilDay) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d CivilDay) Before(o CivilDay) bool { return d.Compare(o) < 0 }
func (d CivilDay) After(o CivilDay) bool  { return d.Compare(o) > 0 }

// YearMonth returns the month containing d.
func (d CivilDay) YearMonth() Month {
	return Month{Year: d.Year, Month: d.Month}
}

// In returns midnight of d in loc.
func (d CivilDay) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday uses noon UTC so the result never depends on a zone offset.
func (d CivilDay) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// DaysUntil returns the number of civil days from d to o (negative when o
// is earlier).
func (d CivilDay) DaysUntil(o CivilDay) int {
	from := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	to := time.Date(o.Year, o.Month, o.Day, 12, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func (d CivilDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
