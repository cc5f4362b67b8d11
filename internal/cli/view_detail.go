package cli

import (
	"strings"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/alexanderramin/utsav/internal/detail"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView shows the session's open festival. It owns no festival state
// of its own; tabs, checklist and recipe live in the session.
type detailView struct {
	state *SharedState
	// cursor is the highlighted row on the recipes and shopping tabs.
	cursor int
	vp     viewport.Model
}

func newDetailView(state *SharedState) *detailView {
	vp := viewport.New(0, 0)
	vp.KeyMap = detailViewportKeyMap()
	vp.MouseWheelEnabled = true
	return &detailView{state: state, vp: vp}
}

func (v *detailView) ID() ViewID { return ViewDetail }

func (v *detailView) Title() string {
	if o, ok := v.state.Session().OpenDetail(); ok {
		return o.Festival().Name
	}
	return "Festival"
}

func (v *detailView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "section")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
	}
	o, ok := v.state.Session().OpenDetail()
	if !ok {
		return bindings
	}
	switch o.Tab() {
	case domain.TabShopping:
		bindings = append(bindings,
			key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		)
	case domain.TabRecipes:
		if _, open := o.Recipe(); !open {
			bindings = append(bindings, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "recipe")))
		}
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")))
	return bindings
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *detailView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := v.state.Session()
	o, ok := s.OpenDetail()
	if !ok {
		return v, popView()
	}

	switch msg.String() {
	case "esc":
		if _, open := o.Recipe(); open {
			s.CloseRecipe()
			v.vp.GotoTop()
			return v, nil
		}
		s.Close()
		return v, popView()
	case "tab", "right", "l":
		v.switchTab(o.Tab().Offset(1))
	case "shift+tab", "left", "h":
		v.switchTab(o.Tab().Offset(-1))
	case "1", "2", "3", "4", "5":
		v.switchTab(domain.Tabs[int(msg.String()[0]-'1')])
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.rowCount(o)-1 {
			v.cursor++
		}
	case " ", "space":
		if o.Tab() == domain.TabShopping {
			if category, item, found := shoppingItemAt(o.Festival().Shopping, v.cursor); found {
				s.ToggleChecklistItem(category, item)
			}
		}
	case "x":
		if o.Tab() == domain.TabShopping && o.CheckedCount() > 0 {
			s.ClearChecklist()
			return v, setStatus(formatter.Dim("Checklist cleared."))
		}
	case "enter":
		if _, open := o.Recipe(); o.Tab() == domain.TabRecipes && !open && v.cursor < len(o.Festival().Recipes) {
			s.OpenRecipe(o.Festival().Recipes[v.cursor].ID)
			v.vp.GotoTop()
		}
	case "f":
		return v, v.state.toggleFavoriteCmd(o.Festival().ID)
	default:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *detailView) switchTab(t domain.Tab) {
	v.state.Session().SetTab(t)
	v.cursor = 0
	v.vp.GotoTop()
}

// rowCount is the number of cursor rows on the active tab.
func (v *detailView) rowCount(o detail.Open) int {
	switch o.Tab() {
	case domain.TabShopping:
		return o.ShoppingTotal()
	case domain.TabRecipes:
		if _, open := o.Recipe(); !open {
			return len(o.Festival().Recipes)
		}
	}
	return 0
}

func (v *detailView) View() string {
	s := v.state.Session()
	o, ok := s.OpenDetail()
	if !ok {
		return "\n  " + formatter.Dim("No festival selected.")
	}

	cursor := -1
	if v.rowCount(o) > 0 {
		cursor = v.cursor
	}
	width := 0
	if v.state.Width > 8 {
		width = min(v.state.Width-4, 100)
	}
	content := formatter.Indent(formatter.FormatDetail(o, formatter.DetailOptions{
		Today:    s.Clock().Today(),
		Favorite: s.IsFavorite(o.Festival().ID),
		Width:    width,
		Cursor:   cursor,
	}), 2)
	content = "\n" + strings.TrimRight(content, "\n")

	if v.state.Height == 0 {
		return content
	}
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(content)
	return v.vp.View()
}

// shoppingItemAt maps a flat row index to its category and item.
func shoppingItemAt(list domain.ShoppingList, idx int) (string, string, bool) {
	for _, c := range list {
		if idx < len(c.Items) {
			return c.Name, c.Items[idx], true
		}
		idx -= len(c.Items)
	}
	return "", "", false
}

// detailViewportKeyMap leaves arrows and letters to the view; only page
// keys scroll.
func detailViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}
