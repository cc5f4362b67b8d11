package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/utsav/internal/teatest"
)

// TestDriver wraps teatest.Driver with utsav-specific inspection methods.
// It provides access to appModel internals (view stack, shared state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Status returns the status line without styling.
func (d *TestDriver) Status() string {
	return stripANSI(d.State().Status)
}

// PlainView returns the rendered screen without styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}

// IsQuitting returns whether the app has signaled a quit.
// Checks model.quitting (q/Ctrl+C) and the driver's Quitting flag
// (tea.QuitMsg seen while draining).
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CalendarCursor returns the highlighted day of the home calendar view.
func (d *TestDriver) CalendarCursor() int {
	return d.appModel().viewStack[0].(*calendarView).cursor
}
