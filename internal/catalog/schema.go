package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the top-level structure of a catalog file. A file whose
// top level is a bare array is read as the festivals list alone.
type CatalogFile struct {
	Festivals   []FestivalImport   `json:"festivals" yaml:"festivals"`
	Collections []CollectionImport `json:"collections,omitempty" yaml:"collections,omitempty"`
}

// FestivalImport defines one festival record in the catalog file.
type FestivalImport struct {
	ID             string             `json:"id" yaml:"id"`
	Name           string             `json:"name" yaml:"name"`
	NameLocalized  string             `json:"name_localized,omitempty" yaml:"name_localized,omitempty"`
	Date           string             `json:"date" yaml:"date"`
	Category       string             `json:"category" yaml:"category"`
	Color          string             `json:"color,omitempty" yaml:"color,omitempty"`
	Tagline        string             `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	HeroImage      string             `json:"hero_image,omitempty" yaml:"hero_image,omitempty"`
	Overview       OverviewImport     `json:"overview" yaml:"overview"`
	HowToCelebrate []StepImport       `json:"how_to_celebrate,omitempty" yaml:"how_to_celebrate,omitempty"`
	Recipes        []RecipeImport     `json:"recipes,omitempty" yaml:"recipes,omitempty"`
	Decorations    []DecorationImport `json:"decorations,omitempty" yaml:"decorations,omitempty"`
	ShoppingList   ShoppingImport     `json:"shopping_list,omitempty" yaml:"shopping_list,omitempty"`
}

type OverviewImport struct {
	Brief        string `json:"brief" yaml:"brief"`
	History      string `json:"history,omitempty" yaml:"history,omitempty"`
	Significance string `json:"significance,omitempty" yaml:"significance,omitempty"`
	Duration     string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Region       string `json:"region,omitempty" yaml:"region,omitempty"`
}

type StepImport struct {
	Step        int    `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	TimeNeeded  string `json:"time_needed,omitempty" yaml:"time_needed,omitempty"`
	Difficulty  string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

type RecipeImport struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	NameLocalized string   `json:"name_localized,omitempty" yaml:"name_localized,omitempty"`
	Image         string   `json:"image,omitempty" yaml:"image,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	PrepTime      string   `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime      string   `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	Servings      string   `json:"servings,omitempty" yaml:"servings,omitempty"`
	Ingredients   []string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Instructions  []string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Tips          []string `json:"tips,omitempty" yaml:"tips,omitempty"`
}

type DecorationImport struct {
	Type         string   `json:"type" yaml:"type"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Materials    []string `json:"materials,omitempty" yaml:"materials,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	TimeNeeded   string   `json:"time_needed,omitempty" yaml:"time_needed,omitempty"`
	Steps        []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Images       []string `json:"images,omitempty" yaml:"images,omitempty"`
	BeginnerTips []string `json:"beginner_tips,omitempty" yaml:"beginner_tips,omitempty"`
}

// CollectionImport names a fixed subset of festivals, e.g. a regional list.
type CollectionImport struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	FestivalIDs []string `json:"festival_ids" yaml:"festival_ids"`
}

// ShoppingCategoryImport is one entry of a shopping list object.
type ShoppingCategoryImport struct {
	Name  string
	Items []string
}

// ShoppingImport decodes a shopping list object ({"Puja": [...], ...})
// while keeping the key order of the source document.
type ShoppingImport []ShoppingCategoryImport

func (s *ShoppingImport) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("shopping_list must be an object of category -> items")
	}

	var out ShoppingImport
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("shopping_list.%s: %w", key, err)
		}
		out = append(out, ShoppingCategoryImport{Name: key, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

func (s *ShoppingImport) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*s = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: shopping_list must be a mapping of category -> items", node.Line)
	}

	out := make(ShoppingImport, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var items []string
		if err := node.Content[i+1].Decode(&items); err != nil {
			return fmt.Errorf("shopping_list.%s: %w", key, err)
		}
		out = append(out, ShoppingCategoryImport{Name: key, Items: items})
	}
	*s = out
	return nil
}
