package catalog

import (
	"strings"

	"github.com/alexanderramin/utsav/internal/domain"
)

// Convert validates every record of the file and turns the usable ones into
// an immutable Catalog. Malformed records are excluded and reported as
// warnings; Convert itself never fails.
func Convert(file *CatalogFile) (*Catalog, []Warning) {
	var warns []Warning
	seen := make(map[string]bool)
	festivals := make([]*domain.Festival, 0, len(file.Festivals))

	for i := range file.Festivals {
		fi := &file.Festivals[i]
		id := strings.TrimSpace(fi.ID)

		if reasons := validateFestival(fi, seen); len(reasons) > 0 {
			warns = append(warns, Warning{Index: i, ID: id, Reason: "excluded: " + strings.Join(reasons, "; ")})
			continue
		}
		for _, w := range softWarnings(fi) {
			warns = append(warns, Warning{Index: i, ID: id, Reason: w})
		}

		seen[id] = true
		festivals = append(festivals, convertFestival(fi))
	}

	collections, colWarns := validateCollections(file.Collections, seen)
	warns = append(warns, colWarns...)

	return New(festivals, collections), warns
}

// convertFestival assumes validateFestival accepted fi.
func convertFestival(fi *FestivalImport) *domain.Festival {
	date, _ := domain.ParseCivilDay(fi.Date)

	f := &domain.Festival{
		ID:            strings.TrimSpace(fi.ID),
		Name:          strings.TrimSpace(fi.Name),
		NameLocalized: strings.TrimSpace(fi.NameLocalized),
		Date:          date,
		Category:      domain.Category(strings.TrimSpace(fi.Category)),
		Color:         fi.Color,
		Tagline:       fi.Tagline,
		HeroImage:     fi.HeroImage,
		Overview: domain.Overview{
			Brief:        fi.Overview.Brief,
			History:      fi.Overview.History,
			Significance: fi.Overview.Significance,
			Duration:     fi.Overview.Duration,
			Region:       fi.Overview.Region,
		},
	}

	for i, s := range fi.HowToCelebrate {
		step := s.Step
		if step == 0 {
			step = i + 1
		}
		f.Celebrate = append(f.Celebrate, domain.CelebrationStep{
			Step:        step,
			Title:       s.Title,
			Description: s.Description,
			TimeNeeded:  s.TimeNeeded,
			Difficulty:  difficulty(s.Difficulty),
		})
	}

	for _, r := range fi.Recipes {
		f.Recipes = append(f.Recipes, domain.Recipe{
			ID:            r.ID,
			Name:          r.Name,
			NameLocalized: r.NameLocalized,
			Image:         r.Image,
			Description:   r.Description,
			Difficulty:    difficulty(r.Difficulty),
			PrepTime:      r.PrepTime,
			CookTime:      r.CookTime,
			Servings:      r.Servings,
			Ingredients:   r.Ingredients,
			Instructions:  r.Instructions,
			Tips:          r.Tips,
		})
	}

	for _, d := range fi.Decorations {
		f.Decorations = append(f.Decorations, domain.Decoration{
			Type:         d.Type,
			Title:        d.Title,
			Description:  d.Description,
			Materials:    d.Materials,
			Difficulty:   difficulty(d.Difficulty),
			TimeNeeded:   d.TimeNeeded,
			Steps:        d.Steps,
			Images:       d.Images,
			BeginnerTips: d.BeginnerTips,
		})
	}

	seenCats := make(map[string]bool)
	for _, c := range fi.ShoppingList {
		if seenCats[c.Name] {
			continue
		}
		seenCats[c.Name] = true
		f.Shopping = append(f.Shopping, domain.ShoppingCategory{Name: c.Name, Items: uniqueItems(c.Items)})
	}

	return f
}

// uniqueItems keeps the first occurrence of each item. A checklist key is
// (category, item), so repeats could never be checked separately.
func uniqueItems(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func difficulty(s string) domain.Difficulty {
	d := strings.ToLower(strings.TrimSpace(s))
	if !validDifficulties[d] {
		return ""
	}
	return domain.Difficulty(d)
}
