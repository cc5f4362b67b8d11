package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/query"
	"github.com/alexanderramin/utsav/internal/session"
	"github.com/spf13/pflag"
)

// monthFlag parses --month YYYY-MM.
type monthFlag struct {
	month domain.Month
	set   bool
}

func (f *monthFlag) String() string {
	if !f.set {
		return ""
	}
	return f.month.String()
}

func (f *monthFlag) Set(s string) error {
	m, err := domain.ParseMonth(s)
	if err != nil {
		return err
	}
	f.month = m
	f.set = true
	return nil
}

func (f *monthFlag) Type() string { return "YYYY-MM" }

// sortFlag parses --sort.
type sortFlag struct {
	mode query.SortMode
}

func (f *sortFlag) String() string { return string(f.mode) }

func (f *sortFlag) Set(s string) error {
	m, err := query.ParseSortMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	return nil
}

func (f *sortFlag) Type() string { return "mode" }

// tabFlag parses --tab.
type tabFlag struct {
	tab domain.Tab
}

func (f *tabFlag) String() string { return string(f.tab) }

func (f *tabFlag) Set(s string) error {
	t, err := domain.ParseTab(s)
	if err != nil {
		return err
	}
	f.tab = t
	return nil
}

func (f *tabFlag) Type() string { return "tab" }

var (
	_ pflag.Value = (*monthFlag)(nil)
	_ pflag.Value = (*sortFlag)(nil)
	_ pflag.Value = (*tabFlag)(nil)
)

// filterFlags are the search, category and collection flags shared by the
// browsing commands.
type filterFlags struct {
	search     string
	category   string
	collection string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.search, "search", "s", "", "Match festival names (case-insensitive) or localized names")
	fs.StringVarP(&f.category, "category", "c", "", "Only festivals tagged with this category (\"all\" for every category)")
	fs.StringVar(&f.collection, "collection", "", "Only festivals in the named collection")
}

// apply copies the flags into the session. An unknown collection is an
// error; an unknown category simply matches nothing.
func (f *filterFlags) apply(s *session.Session) error {
	s.SetSearchText(f.search)
	s.SetCategory(domain.Category(strings.ToLower(strings.TrimSpace(f.category))))
	if !s.SetCollection(f.collection) {
		return fmt.Errorf("unknown collection %q (see 'utsav collections')", f.collection)
	}
	return nil
}
