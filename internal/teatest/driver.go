// Package teatest drives bubbletea models in tests without a tea.Program.
//
// Messages go straight into Update and the returned Cmds run on the calling
// goroutine's behalf until nothing is left, so a test observes the model
// only after every follow-up message has landed. Cmds that do not return
// within cmdTimeout (cursor blinks, tickers) are dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxSteps bounds the number of Cmds run for a single Send.
const MaxSteps = 500

// Favorite saves against in-memory SQLite return in well under a
// millisecond; cursor blinks wait ~530ms.
const cmdTimeout = 50 * time.Millisecond

// Driver is a synchronous harness around a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg is produced. Later sends are
	// ignored, mirroring a program that has exited.
	Quitting bool

	// Steps counts the Cmds executed since the driver was created.
	Steps int
}

// Option configures a Driver before any message is sent.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) { d.Resize(w, h) }
}

// New wraps model. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send feeds msg through Update and runs every resulting Cmd.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.run(d.update(msg))
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// Press sends a non-rune key such as tea.KeyEnter or tea.KeyShiftTab.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	msg := tea.KeyMsg{Type: k}
	if k == tea.KeySpace {
		msg.Runes = []rune{' '}
	}
	d.Send(msg)
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter()     { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()     { d.T.Helper(); d.Press(tea.KeyCtrlC) }
func (d *Driver) PressUp()        { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()      { d.T.Helper(); d.Press(tea.KeyDown) }
func (d *Driver) PressLeft()      { d.T.Helper(); d.Press(tea.KeyLeft) }
func (d *Driver) PressRight()     { d.T.Helper(); d.Press(tea.KeyRight) }
func (d *Driver) PressTab()       { d.T.Helper(); d.Press(tea.KeyTab) }
func (d *Driver) PressShiftTab()  { d.T.Helper(); d.Press(tea.KeyShiftTab) }
func (d *Driver) PressSpace()     { d.T.Helper(); d.Press(tea.KeySpace) }
func (d *Driver) PressBackspace() { d.T.Helper(); d.Press(tea.KeyBackspace) }

// View renders the model as it stands.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) update(msg tea.Msg) tea.Cmd {
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

// run executes cmd and everything it leads to, depth first: the Cmd
// returned by handling a message runs before the next sibling of a batch.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	pending := []tea.Cmd{cmd}
	for budget := MaxSteps; len(pending) > 0; budget-- {
		if budget == 0 {
			d.T.Logf("teatest.Driver: stopped after %d commands", MaxSteps)
			return
		}
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if next == nil {
			continue
		}
		d.Steps++

		switch msg := await(next).(type) {
		case nil:
		case tea.BatchMsg:
			for i := len(msg) - 1; i >= 0; i-- {
				pending = append(pending, msg[i])
			}
		case tea.QuitMsg:
			d.Quitting = true
			d.update(msg)
			return
		default:
			if isCursorBlink(msg) {
				continue
			}
			pending = append(pending, d.update(msg))
		}
	}
}

// await runs cmd and returns its message, or nil when it blocks longer
// than cmdTimeout.
func await(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// bubbles/cursor keeps its blink message types unexported.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
