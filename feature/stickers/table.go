// Package stickers matches sticker records against the localized sticker dataset.
package stickers

import (
	"strings"

	"cs2-localizer/core/match"
	"cs2-localizer/core/normalize"
)

const (
	Category  = "stickers"
	Dataset   = "stickers.json"
	NameField = "name"

	idPrefix        = "sticker-"
	localizedPrefix = "印花 | "
)

// Table returns the sticker matching table.
func Table() *match.Table {
	return &match.Table{
		Category:        Category,
		NameField:       NameField,
		LocalizedPrefix: localizedPrefix,
		Index:           index,
		Strategies: []match.Strategy{
			match.Lookup("id", match.ByID, match.FieldKeys("id", match.Same, stripIDPrefix)),
			match.Lookup("original_name", match.ByOriginal, match.NameKey),
			match.Lookup("prefix_stripped", match.ByName, match.NameKeys(stripEnglishPrefix)),
			match.Lookup("simplest", match.ByName, match.NameKeys(simplest)),
		},
	}
}

func index(ix *match.IndexSet, ref match.Record) {
	ix.Put(match.ByID, stripIDPrefix(ref.String("id")), ref)

	name := ref.String("name")
	if name == "" {
		return
	}
	ix.Put(match.ByName, normalize.StripHTMLSuffix(normalize.StripMarker(name, localizedPrefix)), ref)
	ix.Put(match.ByOriginal, name, ref)
}

func stripIDPrefix(id string) string {
	return normalize.StripMarker(id, idPrefix)
}

func stripEnglishPrefix(name string) string {
	return strings.TrimSpace(normalize.StripMarker(name, "Sticker | "))
}

// simplest drops any "(Holo)"-style qualifier and tournament suffix.
func simplest(name string) string {
	return normalize.BeforeAny(stripEnglishPrefix(name), "(", "|")
}
