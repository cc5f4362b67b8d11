package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/catalog"
	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/alexanderramin/utsav/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// utsavHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func utsavHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// categoryOptions lists "all" followed by every tag the catalog uses.
func categoryOptions(cat *catalog.Catalog) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("All categories", string(domain.CategoryAll))}
	for _, c := range cat.Categories() {
		label := string(c)
		if label != "" {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		options = append(options, huh.NewOption(label, string(c)))
	}
	return options
}

// wizardSelectCategory creates a huh form to pick the category filter.
func wizardSelectCategory(cat *catalog.Catalog, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which category?").
				Options(categoryOptions(cat)...).
				Value(result),
		),
	).WithTheme(utsavHuhTheme()).WithShowHelp(false)
}

// wizardSelectCollection creates a huh form to pick a collection. It
// returns nil when the catalog defines none.
func wizardSelectCollection(cat *catalog.Catalog, result *string) *huh.Form {
	cols := cat.Collections()
	if len(cols) == 0 {
		return nil
	}

	options := []huh.Option[string]{huh.NewOption("Whole catalog", "")}
	for _, c := range cols {
		label := c.Title
		if label == "" {
			label = c.Name
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d)", label, len(c.FestivalIDs)), c.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which collection?").
				Options(options...).
				Value(result),
		),
	).WithTheme(utsavHuhTheme()).WithShowHelp(false)
}

func startCategoryWizard(state *SharedState) tea.Cmd {
	s := state.Session()
	selected := string(s.Category())
	form := wizardSelectCategory(s.Catalog(), &selected)
	return pushForm(state, "Category", form, func() tea.Cmd {
		s.SetCategory(domain.Category(selected))
		return setStatus(formatter.Dim("Category: " + string(s.Category())))
	})
}

func startCollectionWizard(state *SharedState) tea.Cmd {
	s := state.Session()
	selected := s.Collection()
	form := wizardSelectCollection(s.Catalog(), &selected)
	if form == nil {
		return setStatus(formatter.Dim("The catalog defines no collections."))
	}
	return pushForm(state, "Collection", form, func() tea.Cmd {
		s.SetCollection(selected)
		if selected == "" {
			return setStatus(formatter.Dim("Showing the whole catalog."))
		}
		return setStatus(formatter.Dim("Collection: " + selected))
	})
}
