package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
)

// SortMode orders a filtered view.
type SortMode string

const (
	SortCatalog SortMode = "catalog"
	SortDate    SortMode = "date"
	SortName    SortMode = "name"
)

// SortModes lists the accepted modes in help order.
var SortModes = []SortMode{SortCatalog, SortDate, SortName}

func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortCatalog, SortDate, SortName:
		return m, nil
	case "":
		return SortCatalog, nil
	default:
		return "", fmt.Errorf("unknown sort %q (valid: catalog, date, name)", s)
	}
}

// Sorted returns a new slice ordered by mode. Ties keep input order.
func Sorted(festivals []*domain.Festival, mode SortMode) []*domain.Festival {
	out := append([]*domain.Festival(nil), festivals...)
	switch mode {
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

// Upcoming returns festivals strictly after today, soonest first. A limit
// of zero or less means no limit.
func Upcoming(festivals []*domain.Festival, today domain.CivilDay, limit int) []*domain.Festival {
	var out []*domain.Festival
	for _, f := range festivals {
		if f.Date.After(today) {
			out = append(out, f)
		}
	}
	out = Sorted(out, SortDate)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
