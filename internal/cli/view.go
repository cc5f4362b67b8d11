package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID names a screen on the navigation stack.
type ViewID int

const (
	ViewCalendar ViewID = iota
	ViewList
	ViewFavorites
	ViewDetail
	ViewSearch
	ViewForm
)

// View is a screen the app model can stack. Title is the breadcrumb
// segment; ShortHelp feeds the hint line at the bottom.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}

// keyRouting says which keys the app model keeps for itself while a view
// is active.
type keyRouting int

const (
	// routeGlobal: q quits and esc pops the stack.
	routeGlobal keyRouting = iota
	// routeEsc: esc goes to the view, which may close a recipe first.
	routeEsc
	// routeAll: every key goes to the view, including q.
	routeAll
)

func routingFor(v View) keyRouting {
	if v == nil {
		return routeGlobal
	}
	switch v.ID() {
	case ViewSearch, ViewForm:
		return routeAll
	case ViewDetail:
		return routeEsc
	}
	return routeGlobal
}
