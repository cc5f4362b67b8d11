package session

import (
	"time"

	"github.com/alexanderramin/utsav/internal/calendar"
	"github.com/alexanderramin/utsav/internal/domain"
)

func (s *Session) DisplayedMonth() domain.Month { return s.month }

func (s *Session) SetMonth(m domain.Month) { s.month = m }

// Navigate moves the displayed month one step and returns the new month.
func (s *Session) Navigate(dir calendar.Direction) domain.Month {
	s.month = calendar.Navigate(s.month, dir)
	return s.month
}

// GoToToday shows the month containing today.
func (s *Session) GoToToday() domain.Month {
	s.month = s.clock.CurrentMonth()
	return s.month
}

// Grid lays out the displayed month over the filtered festivals.
func (s *Session) Grid() []calendar.Cell {
	return calendar.Grid(s.month, s.view())
}

// Day returns the filtered festivals on the given day, but only when that
// day is in the displayed month.
func (s *Session) Day(year int, month time.Month, day int) []*domain.Festival {
	d := domain.CivilDay{Year: year, Month: month, Day: day}
	if !s.month.Contains(d) {
		return nil
	}
	return calendar.FestivalsOnDay(s.view(), d)
}

// Month returns the filtered festivals in the given month. Nothing is
// returned for a month other than the displayed one.
func (s *Session) Month(year int, month time.Month) []*domain.Festival {
	if s.month != domain.NewMonth(year, month) {
		return nil
	}
	return calendar.FestivalsInMonth(s.view(), s.month)
}

func (s *Session) IsToday(d domain.CivilDay) bool    { return s.clock.IsToday(d) }
func (s *Session) IsUpcoming(d domain.CivilDay) bool { return s.clock.IsUpcoming(d) }
