package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchPreviewRows caps the live match preview.
const searchPreviewRows = 8

// searchView edits the session search text with live results. Enter keeps
// the new text; Esc restores the previous one.
type searchView struct {
	state    *SharedState
	input    textinput.Model
	previous string
}

func newSearchView(state *SharedState) *searchView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "festival name"
	ti.CharLimit = 100
	ti.SetValue(state.Session().SearchText())
	ti.CursorEnd()
	ti.Focus()

	return &searchView{
		state:    state,
		input:    ti,
		previous: state.Session().SearchText(),
	}
}

func (v *searchView) ID() ViewID    { return ViewSearch }
func (v *searchView) Title() string { return "Search" }

func (v *searchView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *searchView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *searchView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := v.state.Session()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(v.input.Value())
			s.SetSearchText(text)
			status := formatter.Dim("Search cleared.")
			if text != "" {
				status = formatter.Dim(fmt.Sprintf("%d festivals match %q", len(s.Filtered()), text))
			}
			return v, tea.Batch(popView(), refreshViews(), setStatus(status))
		case tea.KeyEsc:
			s.SetSearchText(v.previous)
			return v, tea.Batch(popView(), refreshViews())
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	s.SetSearchText(strings.TrimSpace(v.input.Value()))
	return v, cmd
}

func (v *searchView) View() string {
	s := v.state.Session()
	festivals := s.Filtered()

	var b strings.Builder
	b.WriteString("\n  " + v.input.View() + "\n\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d matches", len(festivals))) + "\n")
	for i, f := range festivals {
		if i == searchPreviewRows {
			b.WriteString("  " + formatter.Dim(fmt.Sprintf("… and %d more", len(festivals)-i)) + "\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			formatter.CategoryIcon(f.Category),
			formatter.Dim(formatter.ShortDay(f.Date)),
			f.DisplayName(),
		))
	}
	return b.String()
}
