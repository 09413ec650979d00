package normalize

import "strings"

const (
	// RarityStar is the leading marker used by English names of knives and gloves.
	RarityStar = "★ "
	// LocalizedStar is the marker used by the localized dataset.
	LocalizedStar = "（★）"
	// localizedStarNarrow appears in a handful of older dataset entries.
	localizedStarNarrow = "(★)"
)

// StarNouns are the localized category nouns the rarity star is placed after.
var StarNouns = []string{"手套", "裹手"}

// Key lower-cases a value for use as an index key or lookup key.
func Key(s string) string {
	return strings.ToLower(s)
}

// StripLocalizedPrefix returns the remainder after the first occurrence of prefix.
// The name is returned unchanged when the prefix is absent.
func StripLocalizedPrefix(name, prefix string) string {
	if prefix == "" {
		return name
	}
	if _, after, found := strings.Cut(name, prefix); found {
		return after
	}
	return name
}

// StripMarker removes every occurrence of marker from name.
func StripMarker(name, marker string) string {
	if marker == "" {
		return name
	}
	return strings.ReplaceAll(name, marker, "")
}

// StripMarkers removes each marker in turn.
func StripMarkers(name string, markers ...string) string {
	for _, m := range markers {
		name = StripMarker(name, m)
	}
	return name
}

// NormalizePath turns a model path into forward-slash, lower-case form.
func NormalizePath(path string) string {
	return strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
}

// StripRarityStar removes a leading "★ " and reports whether it was present.
func StripRarityStar(name string) (string, bool) {
	if rest, ok := strings.CutPrefix(name, RarityStar); ok {
		return rest, true
	}
	return name, false
}

// HasRarityStar reports whether a localized name already carries a star in any convention.
func HasRarityStar(name string) bool {
	return strings.HasPrefix(name, "★") ||
		strings.Contains(name, LocalizedStar) ||
		strings.Contains(name, localizedStarNarrow)
}

// RemoveLocalizedStar drops the parenthesized star markers from a localized name.
func RemoveLocalizedStar(name string) string {
	return strings.TrimSpace(StripMarkers(name, LocalizedStar, localizedStarNarrow))
}

// ApplyRarityStar inserts the localized star after the first recognized noun, else appends it.
// Names that already carry a star are returned unchanged.
func ApplyRarityStar(name string, nouns []string) string {
	if HasRarityStar(name) {
		return name
	}
	for _, noun := range nouns {
		if noun != "" && strings.Contains(name, noun) {
			return strings.Replace(name, noun, noun+LocalizedStar, 1)
		}
	}
	return name + LocalizedStar
}

// StripHTMLSuffix returns the text before the first '<', trimmed.
func StripHTMLSuffix(name string) string {
	before, _, _ := strings.Cut(name, "<")
	return strings.TrimSpace(before)
}

// ContainsCJK reports whether text has any rune in the CJK Unified Ideographs block.
func ContainsCJK(text string) bool {
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

// BeforeAny returns the text before the first occurrence of any separator, trimmed.
// Separators are applied in order, each on the previous result.
func BeforeAny(s string, seps ...string) string {
	for _, sep := range seps {
		s, _, _ = strings.Cut(s, sep)
	}
	return strings.TrimSpace(s)
}

// Alnum keeps lower-cased ASCII letters and digits only.
func Alnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
