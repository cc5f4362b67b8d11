package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/calendar"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the visible width of one day column: two digits, a festival
// marker and a gap.
const cellWidth = 4

var weekdayLabels = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// MonthOptions controls highlighting in RenderMonth.
type MonthOptions struct {
	// Today is underlined when it falls inside the rendered month.
	Today domain.CivilDay
	// Cursor is the highlighted day-of-month; zero for none.
	Cursor int
}

// RenderMonth draws a Sunday-first month grid. Days carrying festivals get
// a marker colored by the first festival's category.
func RenderMonth(m domain.Month, cells []calendar.Cell, opts MonthOptions) string {
	var b strings.Builder

	gridWidth := cellWidth*7 - 1
	b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, StyleHeader.Render(m.Label())))
	b.WriteString("\n")

	for i, wd := range weekdayLabels {
		style := StyleDim
		if i == 0 || i == 6 {
			style = StyleBlue
		}
		b.WriteString(style.Render(wd))
		if i < 6 {
			b.WriteString(strings.Repeat(" ", cellWidth-2))
		}
	}
	b.WriteString("\n")

	for _, week := range calendar.Weeks(cells) {
		parts := make([]string, 0, len(week))
		for _, c := range week {
			parts = append(parts, renderDayCell(m, c, opts))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, " "), " "))
		b.WriteString("\n")
	}

	return b.String()
}

func renderDayCell(m domain.Month, c calendar.Cell, opts MonthOptions) string {
	if c.Blank() {
		return strings.Repeat(" ", cellWidth-1)
	}

	digits := fmt.Sprintf("%2d", c.Day)
	marker := " "
	if len(c.Festivals) > 0 {
		marker = CategoryIcon(c.Festivals[0].Category)
	}

	switch {
	case c.Day == opts.Cursor:
		return StyleCursor.Render(digits) + marker
	case !opts.Today.IsZero() && m.Day(c.Day).Equal(opts.Today):
		return StyleToday.Render(digits) + marker
	case len(c.Festivals) > 0:
		return StyleBold.Render(digits) + marker
	default:
		return StyleFg.Render(digits) + marker
	}
}

// RenderMonthLegend lists the festivals of a month grid one per line,
// prefixed with their day-of-month.
func RenderMonthLegend(cells []calendar.Cell, isFavorite func(id string) bool) string {
	var b strings.Builder
	for _, c := range cells {
		for _, f := range c.Festivals {
			fav := false
			if isFavorite != nil {
				fav = isFavorite(f.ID)
			}
			fmt.Fprintf(&b, "%2d %s %s %s\n", c.Day, CategoryIcon(f.Category), FavoriteMark(fav), f.DisplayName())
		}
	}
	if b.Len() == 0 {
		return Dim("No festivals this month.") + "\n"
	}
	return b.String()
}
