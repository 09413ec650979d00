package translate

import (
	"errors"
	"fmt"
	"strings"

	"cs2-localizer/core/match"
	"cs2-localizer/feature/agents"
	"cs2-localizer/feature/keychains"
	"cs2-localizer/feature/musickits"
	"cs2-localizer/feature/skins"
	"cs2-localizer/feature/stickers"
)

// ErrUnknownCategory is returned for a category name that is not registered.
var ErrUnknownCategory = errors.New("unknown category")

// Input is one user file translated by a category.
type Input struct {
	File  string `json:"file"`
	Glove bool   `json:"glove"`
}

// Category is one translatable item family.
type Category struct {
	Name    string
	Label   string
	Dataset string
	Table   func() *match.Table
	Inputs  []Input
	// AnyInput lets the category succeed while some of its inputs are missing.
	AnyInput bool
}

// Categories returns every category in the order runs process them.
func Categories() []Category {
	return []Category{
		{
			Name:    agents.Category,
			Label:   "Agents",
			Dataset: agents.Dataset,
			Table:   agents.Table,
			Inputs:  []Input{{File: "agents.json"}},
		},
		{
			Name:    keychains.Category,
			Label:   "Keychains",
			Dataset: keychains.Dataset,
			Table:   keychains.Table,
			Inputs:  []Input{{File: "keychains.json"}},
		},
		{
			Name:    musickits.Category,
			Label:   "Music kits",
			Dataset: musickits.Dataset,
			Table:   musickits.Table,
			Inputs:  []Input{{File: "music.json"}},
		},
		{
			Name:    skins.Category,
			Label:   "Skins & gloves",
			Dataset: skins.Dataset,
			Table:   skins.Table,
			Inputs: []Input{
				{File: "skins.json"},
				{File: "gloves.json", Glove: true},
			},
			AnyInput: true,
		},
		{
			Name:    stickers.Category,
			Label:   "Stickers",
			Dataset: stickers.Dataset,
			Table:   stickers.Table,
			Inputs:  []Input{{File: "stickers.json"}},
		},
	}
}

var aliases = map[string]string{
	"agent":      agents.Category,
	"keychain":   keychains.Category,
	"music":      musickits.Category,
	"musickits":  musickits.Category,
	"music-kits": musickits.Category,
	"skin":       skins.Category,
	"gloves":     skins.Category,
	"glove":      skins.Category,
	"sticker":    stickers.Category,
}

// FindCategory resolves a category by name or common alias.
func FindCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, c := range Categories() {
		if c.Name == key {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// SelectCategories resolves names, or returns every category when names is empty.
// Duplicates are dropped and the run order is kept.
func SelectCategories(names []string) ([]Category, error) {
	all := Categories()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		c, err := FindCategory(n)
		if err != nil {
			return nil, err
		}
		wanted[c.Name] = true
	}

	selected := make([]Category, 0, len(wanted))
	for _, c := range all {
		if wanted[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

// Datasets returns the distinct datasets of cats.
func Datasets(cats []Category) []string {
	seen := make(map[string]bool, len(cats))
	var out []string
	for _, c := range cats {
		if !seen[c.Dataset] {
			seen[c.Dataset] = true
			out = append(out, c.Dataset)
		}
	}
	return out
}
