package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/session"
)

// favoriteMessage describes the outcome of a favorite toggle.
func favoriteMessage(s *session.Session, id string, on bool) string {
	name := id
	if f, ok := s.Catalog().ByID(id); ok {
		name = f.Name
	}
	if on {
		return fmt.Sprintf("%s Added %s to favorites", formatter.StyleYellow.Render("★"), formatter.Bold(name))
	}
	return fmt.Sprintf("%s Removed %s from favorites", formatter.Dim("☆"), formatter.Bold(name))
}

// filterSummary lists the active filters, or "" when none are set.
func filterSummary(s *session.Session) string {
	var parts []string
	if s.SearchText() != "" {
		parts = append(parts, fmt.Sprintf("search %q", s.SearchText()))
	}
	if c := s.Category(); c != domain.CategoryAll {
		parts = append(parts, "category "+string(c))
	}
	if s.Collection() != "" {
		parts = append(parts, "collection "+s.Collection())
	}
	if len(parts) == 0 {
		return ""
	}
	return "Filtered by " + strings.Join(parts, ", ")
}
