package calendar

import (
	"time"

	"github.com/alexanderramin/utsav/internal/domain"
)

// Clock answers "today" questions in one fixed location. Festival dates are
// civil days, so today/upcoming are decided by comparing the festival's day
// with the current civil day in that location.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a clock reading the system time in loc. A nil loc means
// time.Local.
func NewClock(loc *time.Location) Clock {
	return Clock{now: time.Now, loc: loc}
}

// FixedClock always reports t, interpreted in t's location.
func FixedClock(t time.Time) Clock {
	return Clock{now: func() time.Time { return t }, loc: t.Location()}
}

func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

func (c Clock) Now() time.Time {
	now := c.now
	if now == nil {
		now = time.Now
	}
	return now().In(c.Location())
}

// Today returns the current civil day in the clock's location.
func (c Clock) Today() domain.CivilDay {
	return domain.CivilDayOf(c.Now())
}

// CurrentMonth returns the month containing Today.
func (c Clock) CurrentMonth() domain.Month {
	return c.Today().YearMonth()
}

func (c Clock) IsToday(d domain.CivilDay) bool {
	return d.Equal(c.Today())
}

// IsUpcoming reports whether d is strictly after today. A festival
// happening today is not upcoming.
func (c Clock) IsUpcoming(d domain.CivilDay) bool {
	return d.After(c.Today())
}

// DaysUntil returns the civil-day distance from today to d.
func (c Clock) DaysUntil(d domain.CivilDay) int {
	return c.Today().DaysUntil(d)
}
