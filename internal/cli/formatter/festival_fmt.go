package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
)

// ListOptions carries the context needed to annotate festival rows.
type ListOptions struct {
	Today      domain.CivilDay
	IsFavorite func(id string) bool
	// MaxCol truncates wide cells; zero disables truncation.
	MaxCol int
}

func (o ListOptions) favorite(id string) bool {
	return o.IsFavorite != nil && o.IsFavorite(id)
}

// FormatFestivalList renders festivals as a table in the order given.
func FormatFestivalList(festivals []*domain.Festival, opts ListOptions) string {
	if len(festivals) == 0 {
		return Dim("No festivals match the current filters.") + "\n"
	}

	headers := []string{"", "DATE", "FESTIVAL", "CATEGORY", "WHEN", "ID"}
	rows := make([][]string, 0, len(festivals))
	for _, f := range festivals {
		rows = append(rows, []string{
			FavoriteMark(opts.favorite(f.ID)),
			f.Date.String(),
			f.DisplayName(),
			CategoryBadge(f.Category),
			RelativeDayStyled(opts.Today.DaysUntil(f.Date)),
			Dim(f.ID),
		})
	}
	return RenderTableMax(headers, rows, opts.MaxCol)
}

// FormatUpcoming renders the upcoming festivals as a compact list.
func FormatUpcoming(festivals []*domain.Festival, opts ListOptions) string {
	var b strings.Builder
	b.WriteString(Header("Upcoming"))
	b.WriteString("\n")
	if len(festivals) == 0 {
		b.WriteString(Dim("Nothing upcoming.") + "\n")
		return b.String()
	}
	for _, f := range festivals {
		days := opts.Today.DaysUntil(f.Date)
		fmt.Fprintf(&b, "%s %s  %-8s %s %s\n",
			FavoriteMark(opts.favorite(f.ID)),
			CategoryIcon(f.Category),
			ShortDay(f.Date),
			Bold(f.DisplayName()),
			Dim("("+RelativeDay(days)+")"),
		)
	}
	return b.String()
}

// FormatFavorites renders the favorite festivals with a count header.
func FormatFavorites(festivals []*domain.Festival, today domain.CivilDay) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Favorites (%d)", len(festivals))))
	b.WriteString("\n")
	if len(festivals) == 0 {
		b.WriteString(Dim("No favorites yet. Use 'utsav fav toggle <id>' to add one.") + "\n")
		return b.String()
	}
	b.WriteString(FormatFestivalList(festivals, ListOptions{
		Today:      today,
		IsFavorite: func(string) bool { return true },
	}))
	return b.String()
}
