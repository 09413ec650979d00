// Package musickits matches music kit records against the localized music kit dataset.
//
// The dataset lists a StatTrak twin for most kits under the same id plus "_st". Both collapse
// onto one id key, and the StatTrak token is dropped from the output unless the source id asks
// for the StatTrak variant.
package musickits

import (
	"strings"

	"cs2-localizer/core/match"
	"cs2-localizer/core/normalize"
)

const (
	Category  = "music_kits"
	Dataset   = "music_kits.json"
	NameField = "name"

	idPrefix        = "music_kit-"
	stattrakSuffix  = "_st"
	stattrakMarker  = "StatTrak™ "
	localizedPrefix = "音乐盒 | "
)

// Table returns the music kit matching table.
func Table() *match.Table {
	return &match.Table{
		Category:        Category,
		NameField:       NameField,
		LocalizedPrefix: localizedPrefix,
		Index:           index,
		Strategies: []match.Strategy{
			match.Lookup("id", match.ByID, match.FieldKeys("id", withIDPrefix, match.Same, stripIDPrefix)),
			match.Lookup("market_name", match.ByName, match.NameKey),
			match.Lookup("prefix_stripped", match.ByName, match.NameKeys(stripEnglishPrefix)),
			match.Lookup("artist", match.ByDisplayName, match.NameKeys(artist)),
		},
		Finish: dropStatTrak,
	}
}

func index(ix *match.IndexSet, ref match.Record) {
	ix.Put(match.ByID, normalize.StripMarker(ref.String("id"), stattrakSuffix), ref)
	ix.Put(match.ByName, normalize.StripMarker(ref.String("market_hash_name"), stattrakMarker), ref)
	ix.Put(match.ByDisplayName, normalize.StripMarkers(ref.String("name"), localizedPrefix, stattrakMarker), ref)
}

func withIDPrefix(id string) string { return idPrefix + id }

func stripIDPrefix(id string) string { return normalize.StripMarker(id, idPrefix) }

func stripEnglishPrefix(name string) string {
	return normalize.StripMarker(name, "Music Kit | ")
}

// artist keeps the segment before the first comma: "Daniel Sadowski, Crimson Assault".
func artist(name string) string {
	return normalize.BeforeAny(name, ",")
}

func dropStatTrak(name string, in match.Input) string {
	if strings.Contains(name, stattrakMarker) && !strings.Contains(in.Record.String("id"), stattrakSuffix) {
		return normalize.StripMarker(name, stattrakMarker)
	}
	return name
}
