package teatest

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// keyLog records every key it sees and answers "!" with an echo command.
type keyLog struct {
	keys   []string
	echoes []string
	width  int
}

func (m keyLog) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (m keyLog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case echoMsg:
		m.echoes = append(m.echoes, string(msg))
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "!":
			return m, tea.Batch(
				func() tea.Msg { return echoMsg("a") },
				func() tea.Msg { return echoMsg("b") },
			)
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m keyLog) View() string { return "" }

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	d := New(t, keyLog{}, WithSize(80, 24))
	d.DrainInit()
	d.PressKey('!')

	m := d.Model.(keyLog)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, []string{"init", "a", "b"}, m.echoes)
}

func TestDriver_KeyHelpers(t *testing.T) {
	d := New(t, keyLog{})
	d.PressLeft()
	d.PressRight()
	d.PressTab()
	d.PressShiftTab()
	d.PressSpace()
	d.PressBackspace()
	d.PressEnter()
	d.Type("hi")

	assert.Equal(t,
		[]string{"left", "right", "tab", "shift+tab", " ", "backspace", "enter", "h", "i"},
		d.Model.(keyLog).keys)
}

func TestDriver_QuitStopsSending(t *testing.T) {
	d := New(t, keyLog{})
	d.PressKey('q')
	d.PressKey('x')

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"q"}, d.Model.(keyLog).keys)
}

// chain answers "c" with three nested echo commands.
type chain struct{ echoes []string }

func (m chain) Init() tea.Cmd { return nil }

func (m chain) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case echoMsg:
		m.echoes = append(m.echoes, string(msg))
		if msg == "outer" {
			return m, func() tea.Msg { return echoMsg("inner") }
		}
	case tea.KeyMsg:
		return m, tea.Batch(
			func() tea.Msg { return echoMsg("outer") },
			func() tea.Msg { return echoMsg("sibling") },
		)
	}
	return m, nil
}

func (m chain) View() string { return strings.Join(m.echoes, ",") }

func TestDriver_FollowUpRunsBeforeSibling(t *testing.T) {
	d := New(t, chain{})
	d.PressKey('c')

	assert.Equal(t, "outer,inner,sibling", d.View())
	assert.Equal(t, 4, d.Steps, "batch, outer, inner, sibling")
}

func TestDriver_DropsBlockingCmd(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	d := New(t, keyLog{})
	d.run(func() tea.Msg {
		<-block
		return echoMsg("late")
	})

	assert.Empty(t, d.Model.(keyLog).echoes)
}

func TestDriver_Resize(t *testing.T) {
	d := New(t, keyLog{})
	d.Resize(100, 30)
	assert.Equal(t, 100, d.Model.(keyLog).width)
}
