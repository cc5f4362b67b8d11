package domain

import (
	"fmt"
	"strings"
)

// Category is a filtering tag. The vocabulary is open: catalogs may use
// tags beyond the ones named here.
type Category string

const (
	// CategoryAll is the filter sentinel that matches every festival.
	CategoryAll Category = "all"

	CategoryReligious Category = "religious"
	CategoryCultural  Category = "cultural"
	CategoryHarvest   Category = "harvest"
)

// Tab identifies a section of the festival detail view.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabCelebrate   Tab = "celebrate"
	TabRecipes     Tab = "recipes"
	TabDecorations Tab = "decorations"
	TabShopping    Tab = "shopping"
)

// Tabs lists the detail tabs in display order.
var Tabs = []Tab{TabOverview, TabCelebrate, TabRecipes, TabDecorations, TabShopping}

var tabLabels = map[Tab]string{
	TabOverview:    "Overview",
	TabCelebrate:   "How to Celebrate",
	TabRecipes:     "Recipes",
	TabDecorations: "Decorations",
	TabShopping:    "Shopping List",
}

// ParseTab accepts a tab name case-insensitively.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tabLabels[t]; !ok {
		return "", fmt.Errorf("unknown tab %q (valid: overview, celebrate, recipes, decorations, shopping)", s)
	}
	return t, nil
}

// Valid reports whether t is one of Tabs.
func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

func (t Tab) Label() string {
	if l, ok := tabLabels[t]; ok {
		return l
	}
	return string(t)
}

// Offset returns the tab n positions away from t, wrapping around.
func (t Tab) Offset(n int) Tab {
	idx := 0
	for i, tab := range Tabs {
		if tab == t {
			idx = i
			break
		}
	}
	idx = ((idx+n)%len(Tabs) + len(Tabs)) % len(Tabs)
	return Tabs[idx]
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)
