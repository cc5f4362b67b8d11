// Package favorites holds the set of favorited festival ids. A Store is a
// value: Toggle and Retain return new stores and leave the receiver as it
// was, so callers can keep an old store around and compare.
package favorites

import (
	"sort"

	"github.com/alexanderramin/utsav/internal/domain"
)

type Store struct {
	ids map[string]struct{}
}

// New returns a store holding ids. Duplicates collapse.
func New(ids ...string) Store {
	s := Store{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle returns a store with id added if absent, removed if present.
func (s Store) Toggle(id string) Store {
	next := s.clone()
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// Has reports whether id is favorited.
func (s Store) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s Store) Len() int { return len(s.ids) }

// IDs returns the favorited ids sorted.
func (s Store) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both stores hold the same ids.
func (s Store) Equal(o Store) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for id := range s.ids {
		if _, ok := o.ids[id]; !ok {
			return false
		}
	}
	return true
}

// All returns the favorited festivals in the order of festivals. Ids with
// no matching festival are skipped.
func (s Store) All(festivals []*domain.Festival) []*domain.Festival {
	var out []*domain.Festival
	for _, f := range festivals {
		if s.Has(f.ID) {
			out = append(out, f)
		}
	}
	return out
}

// Retain keeps only ids for which known returns true and reports the
// dropped ones, sorted.
func (s Store) Retain(known func(id string) bool) (Store, []string) {
	next := Store{ids: make(map[string]struct{}, len(s.ids))}
	var dropped []string
	for id := range s.ids {
		if known(id) {
			next.ids[id] = struct{}{}
		} else {
			dropped = append(dropped, id)
		}
	}
	sort.Strings(dropped)
	return next, dropped
}

func (s Store) clone() Store {
	next := Store{ids: make(map[string]struct{}, len(s.ids)+1)}
	for id := range s.ids {
		next.ids[id] = struct{}{}
	}
	return next
}
