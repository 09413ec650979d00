// Package keychains matches keychain (charm) records against the localized keychain dataset.
package keychains

import (
	"strings"

	"cs2-localizer/core/match"
	"cs2-localizer/core/normalize"
)

const (
	Category  = "keychains"
	Dataset   = "keychains.json"
	NameField = "name"

	idPrefix        = "keychain-"
	localizedPrefix = "挂件 | "
)

// Table returns the keychain matching table.
func Table() *match.Table {
	return &match.Table{
		Category:        Category,
		NameField:       NameField,
		LocalizedPrefix: localizedPrefix,
		Index:           index,
		Strategies: []match.Strategy{
			match.Lookup("id", match.ByID, match.FieldKeys("id", match.Same, stripIDPrefix)),
			match.Lookup("name", match.ByName, match.NameKey),
			match.Lookup("prefix_stripped", match.ByName, match.NameKeys(stripEnglishPrefix)),
		},
	}
}

func index(ix *match.IndexSet, ref match.Record) {
	ix.Put(match.ByID, stripIDPrefix(ref.String("id")), ref)
	ix.Put(match.ByName, normalize.StripMarker(ref.String("name"), localizedPrefix), ref)
}

func stripIDPrefix(id string) string {
	return normalize.StripMarker(id, idPrefix)
}

func stripEnglishPrefix(name string) string {
	return strings.TrimSpace(normalize.StripMarkers(name, "Keychain | ", "Patch | "))
}
