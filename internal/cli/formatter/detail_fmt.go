package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/detail"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// DetailOptions controls FormatDetail.
type DetailOptions struct {
	Today    domain.CivilDay
	Favorite bool
	// Width wraps long prose; zero leaves it unwrapped.
	Width int
	// Cursor is the highlighted row of the recipes or shopping tab, counted
	// across categories. Negative for none.
	Cursor int
}

// FormatDetail renders an open festival: title block, tab bar and the body
// of the active tab. An open recipe replaces the recipes tab body.
func FormatDetail(o detail.Open, opts DetailOptions) string {
	f := o.Festival()
	var b strings.Builder

	b.WriteString(FormatFestivalTitle(f, opts.Today, opts.Favorite))
	b.WriteString("\n\n")
	b.WriteString(TabBar(o.Tab()))
	b.WriteString("\n\n")

	switch o.Tab() {
	case domain.TabOverview:
		b.WriteString(formatOverview(f.Overview, opts.Width))
	case domain.TabCelebrate:
		b.WriteString(formatCelebrate(f.Celebrate, opts.Width))
	case domain.TabRecipes:
		if r, ok := o.Recipe(); ok {
			b.WriteString(FormatRecipe(r, opts.Width))
		} else {
			b.WriteString(formatRecipeList(f.Recipes, opts.Cursor))
		}
	case domain.TabDecorations:
		b.WriteString(formatDecorations(f.Decorations, opts.Width))
	case domain.TabShopping:
		b.WriteString(FormatShopping(o, opts.Cursor))
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatFestivalTitle renders the name, tagline and date line of a festival.
func FormatFestivalTitle(f *domain.Festival, today domain.CivilDay, favorite bool) string {
	var b strings.Builder
	title := StyleHeader.Render(f.DisplayName())
	if favorite {
		title += " " + FavoriteMark(true)
	}
	b.WriteString(title)
	if f.Tagline != "" {
		b.WriteString("\n" + Dim(f.Tagline))
	}
	fmt.Fprintf(&b, "\n%s  %s  %s",
		HumanDay(f.Date),
		RelativeDayStyled(today.DaysUntil(f.Date)),
		CategoryBadge(f.Category),
	)
	return b.String()
}

// TabBar renders the detail tabs with the active one highlighted.
func TabBar(active domain.Tab) string {
	parts := make([]string, 0, len(domain.Tabs))
	for _, t := range domain.Tabs {
		if t == active {
			parts = append(parts, StyleCursor.Render(" "+t.Label()+" "))
		} else {
			parts = append(parts, StyleDim.Render(" "+t.Label()+" "))
		}
	}
	return strings.Join(parts, Dim("│"))
}

func formatOverview(ov domain.Overview, width int) string {
	var b strings.Builder
	if ov.Brief != "" {
		b.WriteString(Wrap(ov.Brief, width) + "\n\n")
	}
	section := func(title, text string) {
		if text == "" {
			return
		}
		b.WriteString(Bold(title) + "\n")
		b.WriteString(Wrap(text, width) + "\n\n")
	}
	section("History", ov.History)
	section("Significance", ov.Significance)

	if ov.Duration != "" {
		b.WriteString(Dim("Duration: ") + ov.Duration + "\n")
	}
	if ov.Region != "" {
		b.WriteString(Dim("Region:   ") + ov.Region + "\n")
	}
	if b.Len() == 0 {
		return Dim("No overview available.") + "\n"
	}
	return b.String()
}

func formatCelebrate(steps []domain.CelebrationStep, width int) string {
	if len(steps) == 0 {
		return Dim("No celebration guide available.") + "\n"
	}
	var b strings.Builder
	for i, s := range steps {
		n := s.Step
		if n == 0 {
			n = i + 1
		}
		fmt.Fprintf(&b, "%s %s", StyleYellow.Render(fmt.Sprintf("%d.", n)), Bold(s.Title))
		if meta := joinMeta(s.TimeNeeded, DifficultyBadge(s.Difficulty)); meta != "" {
			b.WriteString("  " + meta)
		}
		b.WriteString("\n")
		if s.Description != "" {
			b.WriteString(Indent(Wrap(s.Description, width-3), 3) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatRecipeList(recipes []domain.Recipe, cursor int) string {
	if len(recipes) == 0 {
		return Dim("No recipes for this festival.") + "\n"
	}
	var b strings.Builder
	for i, r := range recipes {
		name := r.Name
		if r.NameLocalized != "" {
			name += " (" + r.NameLocalized + ")"
		}
		prefix := "  "
		if i == cursor {
			prefix = StyleYellow.Render("▸ ")
			name = StyleCursor.Render(name)
		} else {
			name = Bold(name)
		}
		b.WriteString(prefix + name)
		if meta := joinMeta(DifficultyBadge(r.Difficulty), timesLine(r)); meta != "" {
			b.WriteString("  " + meta)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRecipe renders a full recipe.
func FormatRecipe(r *domain.Recipe, width int) string {
	var b strings.Builder
	name := r.Name
	if r.NameLocalized != "" {
		name += " (" + r.NameLocalized + ")"
	}
	b.WriteString(StyleHeader.Render(name) + "\n")
	if meta := joinMeta(DifficultyBadge(r.Difficulty), timesLine(*r)); meta != "" {
		b.WriteString(meta + "\n")
	}
	if r.Description != "" {
		b.WriteString("\n" + Wrap(r.Description, width) + "\n")
	}
	if len(r.Ingredients) > 0 {
		b.WriteString("\n" + Bold("Ingredients") + "\n")
		for _, ing := range r.Ingredients {
			b.WriteString("  • " + ing + "\n")
		}
	}
	if len(r.Instructions) > 0 {
		b.WriteString("\n" + Bold("Instructions") + "\n")
		for i, step := range r.Instructions {
			num := fmt.Sprintf("%2d. ", i+1)
			b.WriteString(num + strings.TrimLeft(Indent(Wrap(step, width-len(num)), len(num)), " ") + "\n")
		}
	}
	if len(r.Tips) > 0 {
		b.WriteString("\n" + Bold("Tips") + "\n")
		for _, tip := range r.Tips {
			b.WriteString("  " + StyleYellow.Render("★") + " " + tip + "\n")
		}
	}
	return b.String()
}

func timesLine(r domain.Recipe) string {
	var parts []string
	if r.PrepTime != "" {
		parts = append(parts, "prep "+r.PrepTime)
	}
	if r.CookTime != "" {
		parts = append(parts, "cook "+r.CookTime)
	}
	if r.Servings != "" {
		parts = append(parts, "serves "+r.Servings)
	}
	return Dim(strings.Join(parts, " · "))
}

func formatDecorations(decorations []domain.Decoration, width int) string {
	if len(decorations) == 0 {
		return Dim("No decoration ideas for this festival.") + "\n"
	}
	var b strings.Builder
	for _, d := range decorations {
		b.WriteString(Bold(d.Title))
		if meta := joinMeta(Dim(d.Type), DifficultyBadge(d.Difficulty), Dim(d.TimeNeeded)); meta != "" {
			b.WriteString("  " + meta)
		}
		b.WriteString("\n")
		if d.Description != "" {
			b.WriteString(Wrap(d.Description, width) + "\n")
		}
		if len(d.Materials) > 0 {
			b.WriteString(Dim("Materials: ") + strings.Join(d.Materials, ", ") + "\n")
		}
		for i, s := range d.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
		for _, tip := range d.BeginnerTips {
			b.WriteString("  " + StyleYellow.Render("★") + " " + tip + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatShopping renders the shopping checklist of an open festival with
// check marks and a progress bar.
func FormatShopping(o detail.Open, cursor int) string {
	list := o.Festival().Shopping
	if len(list) == 0 {
		return Dim("No shopping list for this festival.") + "\n"
	}
	var b strings.Builder
	b.WriteString(RenderChecklistProgress(o.CheckedCount(), o.ShoppingTotal(), 20) + "\n")

	row := 0
	for _, c := range list {
		b.WriteString("\n" + Bold(c.Name) + "\n")
		for _, item := range c.Items {
			box := "[ ]"
			label := item
			if o.IsChecked(c.Name, item) {
				box = StyleGreen.Render("[x]")
				label = Dim(item)
			}
			prefix := "  "
			if row == cursor {
				prefix = StyleYellow.Render("▸ ")
			}
			b.WriteString(prefix + box + " " + label + "\n")
			row++
		}
	}
	return b.String()
}

func joinMeta(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if lipgloss.Width(strings.TrimSpace(p)) > 0 {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, Dim(" · "))
}
