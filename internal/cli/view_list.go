package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/query"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// festivalRows renders festivals one per line with a cursor, scrolled so
// the cursor stays inside height rows.
func festivalRows(state *SharedState, festivals []*domain.Festival, cursor, height int) string {
	s := state.Session()
	today := s.Clock().Today()

	start := 0
	if height > 0 && cursor >= height {
		start = cursor - height + 1
	}
	end := len(festivals)
	if height > 0 && end > start+height {
		end = start + height
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		f := festivals[i]
		prefix := "  "
		name := formatter.StyleFg.Render(padRight(f.DisplayName(), 32))
		if i == cursor {
			prefix = formatter.StyleGreen.Render("▸ ")
			name = formatter.StyleBold.Render(padRight(f.DisplayName(), 32))
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s %s  %s\n",
			prefix,
			formatter.FavoriteMark(s.IsFavorite(f.ID)),
			formatter.Dim(f.Date.String()),
			formatter.CategoryIcon(f.Category),
			name,
			formatter.RelativeDayStyled(today.DaysUntil(f.Date)),
		))
	}
	return b.String()
}

// padRight pads s to width cells, truncating with an ellipsis when longer.
func padRight(s string, width int) string {
	s = formatter.Truncate(s, width)
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// listView shows every festival passing the session filters.
type listView struct {
	state  *SharedState
	cursor int
}

func newListView(state *SharedState) *listView {
	return &listView{state: state}
}

func (v *listView) ID() ViewID    { return ViewList }
func (v *listView) Title() string { return "Festivals" }

func (v *listView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "favorites")),
	}
}

func (v *listView) Init() tea.Cmd { return nil }

func (v *listView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clamp()
		return v, nil
	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

func (v *listView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := v.state.Session()
	festivals := s.Filtered()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(festivals)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(festivals) && s.Select(festivals[v.cursor].ID) {
			return v, pushView(newDetailView(v.state))
		}
	case "f":
		if v.cursor < len(festivals) {
			return v, v.state.toggleFavoriteCmd(festivals[v.cursor].ID)
		}
	case "s":
		next := nextSortMode(s.Sort())
		s.SetSort(next)
		v.cursor = 0
		return v, setStatus(formatter.Dim("Sorted by " + string(next)))
	case "/":
		return v, pushView(newSearchView(v.state))
	case "c":
		return v, startCategoryWizard(v.state)
	case "F":
		return v, replaceView(newFavoritesView(v.state))
	}
	return v, nil
}

func (v *listView) clamp() {
	n := len(v.state.Session().Filtered())
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

func (v *listView) View() string {
	s := v.state.Session()
	festivals := s.Filtered()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d festivals · sorted by %s", len(festivals), s.Sort())) + "\n\n")
	if len(festivals) == 0 {
		b.WriteString("  " + formatter.Dim("No festivals match the current filters.") + "\n")
		return b.String()
	}
	b.WriteString(festivalRows(v.state, festivals, v.cursor, v.state.ContentHeight()-3))
	return b.String()
}

func nextSortMode(m query.SortMode) query.SortMode {
	for i, mode := range query.SortModes {
		if mode == m {
			return query.SortModes[(i+1)%len(query.SortModes)]
		}
	}
	return query.SortModes[0]
}

// favoritesView lists favorite festivals regardless of the filters.
type favoritesView struct {
	state  *SharedState
	cursor int
}

func newFavoritesView(state *SharedState) *favoritesView {
	return &favoritesView{state: state}
}

func (v *favoritesView) ID() ViewID    { return ViewFavorites }
func (v *favoritesView) Title() string { return "Favorites" }

func (v *favoritesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "unfavorite")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
	}
}

func (v *favoritesView) Init() tea.Cmd { return nil }

func (v *favoritesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		n := len(v.state.Session().AllFavorites())
		if v.cursor >= n {
			v.cursor = max(n-1, 0)
		}
		return v, nil
	case tea.KeyMsg:
		s := v.state.Session()
		favs := s.AllFavorites()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(favs)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(favs) && s.Select(favs[v.cursor].ID) {
				return v, pushView(newDetailView(v.state))
			}
		case "f":
			if v.cursor < len(favs) {
				return v, v.state.toggleFavoriteCmd(favs[v.cursor].ID)
			}
		case "a":
			return v, replaceView(newListView(v.state))
		}
	}
	return v, nil
}

func (v *favoritesView) View() string {
	favs := v.state.Session().AllFavorites()

	var b strings.Builder
	b.WriteString("\n")
	if len(favs) == 0 {
		b.WriteString("  " + formatter.Dim("No favorites yet. Press f on a festival to add one.") + "\n")
		return b.String()
	}
	b.WriteString(festivalRows(v.state, favs, v.cursor, v.state.ContentHeight()-1))
	return b.String()
}
