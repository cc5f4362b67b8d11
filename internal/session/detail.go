package session

import (
	"github.com/alexanderramin/utsav/internal/detail"
	"github.com/alexanderramin/utsav/internal/domain"
)

// Select opens the festival with the given id. Unknown ids are ignored and
// report false.
func (s *Session) Select(id string) bool {
	f, ok := s.catalog.ByID(id)
	if !ok {
		return false
	}
	s.detail.Select(f)
	return true
}

// SelectDay opens the first filtered festival on a day of the displayed
// month.
func (s *Session) SelectDay(day int) bool {
	festivals := s.Day(s.month.Year, s.month.Month, day)
	if len(festivals) == 0 {
		return false
	}
	s.detail.Select(festivals[0])
	return true
}

func (s *Session) Close() { s.detail.Close() }

func (s *Session) SetTab(t domain.Tab) { s.detail.SetTab(t) }

func (s *Session) ToggleChecklistItem(category, item string) {
	s.detail.ToggleItem(category, item)
}

func (s *Session) ClearChecklist() { s.detail.ClearChecked() }

func (s *Session) OpenRecipe(id string) { s.detail.OpenRecipe(id) }

func (s *Session) CloseRecipe() { s.detail.CloseRecipe() }

// Detail returns the current selection state.
func (s *Session) Detail() detail.State { return s.detail.State() }

// OpenDetail returns the open festival state, if any.
func (s *Session) OpenDetail() (detail.Open, bool) { return s.detail.Current() }
