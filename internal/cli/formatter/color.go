package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBg     = lipgloss.Color("#3c3836")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleToday marks the current day in a month grid.
	StyleToday = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
	// StyleCursor marks the highlighted day or row in the TUI.
	StyleCursor = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorBg).Bold(true)
)

// CategoryStyle returns the style used for a festival category. Tags
// outside the built-in vocabulary render in the foreground color.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryReligious:
		return StyleHeader
	case domain.CategoryCultural:
		return StylePurple
	case domain.CategoryHarvest:
		return StyleGreen
	default:
		return StyleFg
	}
}

// CategoryIcon returns a colored dot for marking festival days.
func CategoryIcon(c domain.Category) string {
	return CategoryStyle(c).Render("●")
}

// CategoryBadge returns a capitalized category label such as "● Religious".
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	s := string(c)
	label := strings.ToUpper(s[:1]) + s[1:]
	return CategoryStyle(c).Render("● " + label)
}

// DifficultyBadge returns a colored difficulty indicator.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render("◆ Easy")
	case domain.DifficultyMedium:
		return StyleYellow.Render("◆ Medium")
	case domain.DifficultyHard:
		return StyleRed.Render("◆ Hard")
	case "":
		return ""
	default:
		return StyleDim.Render("◆ " + string(d))
	}
}

// FavoriteMark renders a star for favorites and a blank of equal width
// otherwise.
func FavoriteMark(on bool) string {
	if on {
		return StyleYellow.Render("★")
	}
	return " "
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
