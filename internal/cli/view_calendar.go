package cli

import (
	"strings"

	"github.com/alexanderramin/utsav/internal/calendar"
	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// calendarView is the home view: the displayed month with a cursor over
// the days that carry festivals, plus the upcoming list.
type calendarView struct {
	state *SharedState
	// cursor is the highlighted day-of-month; 0 when the month has no
	// festival under the current filters.
	cursor int
}

func newCalendarView(state *SharedState) *calendarView {
	v := &calendarView{state: state}
	v.resetCursor()
	return v
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "month")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "festival")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "collection")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "favorites")),
	}
}

func (v *calendarView) Init() tea.Cmd { return nil }

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if !containsInt(v.festivalDays(), v.cursor) {
			v.resetCursor()
		}
		return v, nil
	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

func (v *calendarView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := v.state.Session()

	switch msg.String() {
	case "left", "h", "p":
		s.Navigate(calendar.Prev)
		v.resetCursor()
	case "right", "l", "n":
		s.Navigate(calendar.Next)
		v.resetCursor()
	case "t":
		s.GoToToday()
		v.resetCursor()
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "enter":
		if v.cursor > 0 && s.SelectDay(v.cursor) {
			return v, pushView(newDetailView(v.state))
		}
	case "f":
		if f := v.cursorFestival(); f != nil {
			return v, v.state.toggleFavoriteCmd(f.ID)
		}
	case "/":
		return v, pushView(newSearchView(v.state))
	case "c":
		return v, startCategoryWizard(v.state)
	case "o":
		return v, startCollectionWizard(v.state)
	case "x":
		s.ClearFilters()
		return v, tea.Batch(refreshViews(), setStatus(formatter.Dim("Filters cleared.")))
	case "a":
		return v, pushView(newListView(v.state))
	case "F":
		return v, pushView(newFavoritesView(v.state))
	}
	return v, nil
}

// festivalDays returns the days of the displayed month that carry at least
// one filtered festival, in order.
func (v *calendarView) festivalDays() []int {
	var days []int
	for _, c := range v.state.Session().Grid() {
		if len(c.Festivals) > 0 {
			days = append(days, c.Day)
		}
	}
	return days
}

// resetCursor places the cursor on the first festival day that is not in
// the past, falling back to the month's first festival day.
func (v *calendarView) resetCursor() {
	s := v.state.Session()
	days := v.festivalDays()
	v.cursor = 0
	if len(days) == 0 {
		return
	}
	v.cursor = days[0]
	today := s.Clock().Today()
	m := s.DisplayedMonth()
	if !m.Contains(today) {
		return
	}
	for _, d := range days {
		if d >= today.Day {
			v.cursor = d
			return
		}
	}
}

func (v *calendarView) moveCursor(delta int) {
	days := v.festivalDays()
	if len(days) == 0 {
		v.cursor = 0
		return
	}
	idx := indexInt(days, v.cursor)
	if idx < 0 {
		v.cursor = days[0]
		return
	}
	idx += delta
	if idx < 0 || idx >= len(days) {
		return
	}
	v.cursor = days[idx]
}

// cursorFestival returns the first filtered festival on the cursor day.
func (v *calendarView) cursorFestival() *domain.Festival {
	if v.cursor == 0 {
		return nil
	}
	s := v.state.Session()
	m := s.DisplayedMonth()
	festivals := s.Day(m.Year, m.Month, v.cursor)
	if len(festivals) == 0 {
		return nil
	}
	return festivals[0]
}

func (v *calendarView) View() string {
	s := v.state.Session()
	today := s.Clock().Today()
	cells := s.Grid()

	grid := formatter.RenderMonth(s.DisplayedMonth(), cells, formatter.MonthOptions{
		Today:  today,
		Cursor: v.cursor,
	})
	legend := formatter.RenderMonthLegend(cells, s.IsFavorite)
	left := grid + "\n" + legend

	upcoming := formatter.FormatUpcoming(s.Upcoming(v.state.App.UpcomingLimit), formatter.ListOptions{
		Today:      today,
		IsFavorite: s.IsFavorite,
	})

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		formatter.Indent(left, 2),
		"      ",
		upcoming,
	))
	if f := v.cursorFestival(); f != nil {
		b.WriteString("\n  " + formatter.StyleYellow.Render("▸ ") + formatter.Bold(f.DisplayName()))
		if f.Tagline != "" {
			b.WriteString("  " + formatter.Dim(f.Tagline))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func indexInt(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func containsInt(xs []int, x int) bool { return indexInt(xs, x) >= 0 }
