package cli

import (
	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView hosts a huh picker on the stack. apply runs once, after the
// user confirms; esc or an aborted form leaves the session untouched.
type formView struct {
	state    *SharedState
	form     *huh.Form
	title    string
	apply    func() tea.Cmd
	finished bool
}

var formKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// pushForm opens form as a new view. A nil form applies immediately.
func pushForm(state *SharedState, title string, form *huh.Form, apply func() tea.Cmd) tea.Cmd {
	if form == nil {
		if apply == nil {
			return nil
		}
		return apply()
	}
	return pushView(&formView{state: state, form: form, title: title, apply: apply})
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v.finish(nil, "Cancelled.")
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.apply != nil {
			next = v.apply()
		}
		return v.finish(tea.Batch(cmd, next), "")
	case huh.StateAborted:
		return v.finish(nil, "Cancelled.")
	}
	return v, cmd
}

func (v *formView) finish(next tea.Cmd, status string) (tea.Model, tea.Cmd) {
	v.finished = true
	if status != "" {
		return v, func() tea.Msg { return wizardCompleteStatus(formatter.Dim(status)) }
	}
	return v, func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}

func (v *formView) View() string { return "\n" + v.form.View() }

func (v *formView) ID() ViewID               { return ViewForm }
func (v *formView) Title() string            { return v.title }
func (v *formView) ShortHelp() []key.Binding { return formKeys }
