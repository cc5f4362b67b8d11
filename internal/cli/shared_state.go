package cli

import (
	"context"

	"github.com/alexanderramin/utsav/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Ctx carries the session id into service calls.
	Ctx context.Context

	// Terminal dimensions
	Width  int
	Height int

	// Status is a one-line message from the last action.
	Status string

	// favToggles counts toggles per festival id. A failed save is only
	// reverted when it belongs to the latest toggle of that id.
	favToggles map[string]int
}

// Session is the browsing session every view reads from.
func (s *SharedState) Session() *session.Session {
	return s.App.Session
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and the status bar
// (3 lines: separator, hints and status).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// toggleFavoriteCmd flips the favorite in the session immediately and
// persists it in the background. The appModel reverts the session when
// the save of the latest toggle fails.
func (s *SharedState) toggleFavoriteCmd(id string) tea.Cmd {
	on, ok := s.Session().ToggleFavorite(id)
	if !ok {
		return nil
	}
	if s.favToggles == nil {
		s.favToggles = make(map[string]int)
	}
	s.favToggles[id]++
	seq := s.favToggles[id]
	favs, ctx := s.App.Favorites, s.Ctx
	return func() tea.Msg {
		return favoriteSavedMsg{id: id, on: on, seq: seq, err: favs.Save(ctx, id, on)}
	}
}

// revertFailedSave undoes the toggle behind msg unless a later toggle of
// the same id has superseded it. It reports whether the session changed.
func (s *SharedState) revertFailedSave(msg favoriteSavedMsg) bool {
	if s.favToggles[msg.id] != msg.seq || s.Session().IsFavorite(msg.id) != msg.on {
		return false
	}
	s.Session().ToggleFavorite(msg.id)
	return true
}
