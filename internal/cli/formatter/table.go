package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the number of spaces between table columns.
const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum visible width found in each column across both headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableMax(headers, rows, 0)
}

// RenderTableMax is RenderTable with every cell truncated to maxCol cells.
// A non-positive maxCol disables truncation.
func RenderTableMax(headers []string, rows [][]string, maxCol int) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			cells[r][i] = Truncate(row[i], maxCol)
		}
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string, style func(string) string) {
		for i, cell := range row {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(style(cell))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range cells {
		writeRow(row, func(s string) string { return s })
	}

	return b.String()
}
