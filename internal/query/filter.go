package query

import (
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
)

// FilterCatalog returns the festivals matching both the search text and
// the category, in input order. The input slice is never modified.
//
// Text matches when the lower-cased name contains the lower-cased text, or
// when the localized name contains the text as typed. Localized scripts
// have no case, so that comparison is exact. Empty text matches everything.
func FilterCatalog(festivals []*domain.Festival, searchText string, category domain.Category) []*domain.Festival {
	needle := strings.ToLower(searchText)
	out := make([]*domain.Festival, 0, len(festivals))
	for _, f := range festivals {
		if matchesText(f, searchText, needle) && MatchesCategory(f, category) {
			out = append(out, f)
		}
	}
	return out
}

// MatchesText applies the search rule of FilterCatalog to one festival.
func MatchesText(f *domain.Festival, searchText string) bool {
	return matchesText(f, searchText, strings.ToLower(searchText))
}

func matchesText(f *domain.Festival, raw, lowered string) bool {
	if raw == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), lowered) {
		return true
	}
	return f.NameLocalized != "" && strings.Contains(f.NameLocalized, raw)
}

// MatchesCategory reports whether f passes the category filter. The "all"
// sentinel and the empty category match every festival.
func MatchesCategory(f *domain.Festival, category domain.Category) bool {
	if category == domain.CategoryAll || category == "" {
		return true
	}
	return f.Category == category
}

// InCollection restricts festivals to the given ids, keeping input order.
func InCollection(festivals []*domain.Festival, ids []string) []*domain.Festival {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]*domain.Festival, 0, len(ids))
	for _, f := range festivals {
		if _, ok := want[f.ID]; ok {
			out = append(out, f)
		}
	}
	return out
}
