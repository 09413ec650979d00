package skins

import (
	"strings"

	"cs2-localizer/core/match"
	"cs2-localizer/core/normalize"
)

const (
	Category  = "skins"
	Dataset   = "skins.json"
	NameField = "paint_name"

	// GloveCategory and KnifeCategory are the dataset category ids that get starred keys.
	GloveCategory = "sfui_invpanel_filter_gloves"
	KnifeCategory = "sfui_invpanel_filter_melee"

	defaultSuffix  = " | Default"
	stattrakMarker = "StatTrak™ "
	weaponCodePfx  = "weapon_"
	// minCodeFragment is the shortest token matched anywhere inside a weapon code.
	minCodeFragment = 3
)

// Table returns the skin and glove matching table.
func Table() *match.Table {
	reverse := match.Lookup("reverse_name", match.ByReverseName, reverseKeys)

	return &match.Table{
		Category:    Category,
		NameField:   NameField,
		RequireName: true,
		Index:       index,
		Strategies: []match.Strategy{
			match.Lookup("weapon_paint", match.ByWeaponPaint, compositeKeys),
			match.Lookup("full_name", match.ByFullName, match.NameKey),
			match.Lookup("star_stripped", match.ByFullName, starStrippedKeys),
			{Name: "default", Resolve: resolveDefault},
			{
				Name: reverse.Name,
				Resolve: func(ix *match.IndexSet, in match.Input) (match.Match, bool) {
					if !in.Options.Glove {
						return match.Match{}, false
					}
					return reverse.Resolve(ix, in)
				},
			},
		},
	}
}

func index(ix *match.IndexSet, ref match.Record) {
	if !ref.Get("weapon").IsObject() || !ref.Has("weapon.weapon_id") {
		return
	}
	weaponID := ref.String("weapon.weapon_id")
	weaponName := ref.String("weapon.name")

	if weaponName != "" {
		ix.Put(match.ByWeaponID, weaponID, ref)
		ix.Put(match.ByWeaponCode, ref.String("weapon.id"), ref)
	}

	if !ref.Has("paint_index") {
		return
	}
	ix.Put(match.ByWeaponPaint, weaponID+"_"+ref.String("paint_index"), ref)

	pattern := ref.String("pattern.name")
	if weaponName == "" || pattern == "" {
		return
	}
	full := weaponName + " | " + pattern
	ix.Put(match.ByFullName, full, ref)

	switch ref.String("category.id") {
	case GloveCategory, KnifeCategory:
		ix.Put(match.ByFullName, normalize.RarityStar+full, ref)
		ix.Put(match.ByReverseName, ReverseMapName(ref.String("name")), ref)
	}
}

func compositeKeys(in match.Input) []string {
	if !in.Record.Has("weapon_defindex") || !in.Record.Has("paint") {
		return nil
	}
	return []string{in.Record.String("weapon_defindex") + "_" + in.Record.String("paint")}
}

// reverseKeys tries the name as given, then without its "★ " prefix as carried by glove exports.
func reverseKeys(in match.Input) []string {
	if rest, starred := normalize.StripRarityStar(in.Name); starred {
		return []string{in.Name, rest}
	}
	return []string{in.Name}
}

func starStrippedKeys(in match.Input) []string {
	rest, starred := normalize.StripRarityStar(in.Name)
	if !starred {
		return nil
	}
	return []string{rest}
}

// resolveDefault handles stock skins such as "M4A4 | Default", which have no dataset entry of
// their own. The localized weapon name is found through, in order: the static weapon table,
// the weapon id of the record, the weapon code, and a case-insensitive static lookup.
func resolveDefault(ix *match.IndexSet, in match.Input) (match.Match, bool) {
	token, ok := strings.CutSuffix(in.Name, defaultSuffix)
	if !ok {
		return match.Match{}, false
	}
	token, _ = normalize.StripRarityStar(token)
	token = strings.TrimSpace(normalize.StripMarker(token, stattrakMarker))

	if zh, ok := WeaponNames[token]; ok {
		return match.Match{Name: zh, Strategy: "default_static"}, true
	}

	if in.Record.Has("weapon_defindex") {
		if ref, ok := ix.Lookup(match.ByWeaponID, in.Record.String("weapon_defindex")); ok {
			return match.Match{Ref: ref, Name: ref.String("weapon.name"), Strategy: "default_weapon_id"}, true
		}
	}

	if ref, ok := lookupWeaponCode(ix, token); ok {
		return match.Match{Ref: ref, Name: ref.String("weapon.name"), Strategy: "default_weapon_code"}, true
	}

	if zh, ok := weaponNamesFolded[normalize.Key(token)]; ok {
		return match.Match{Name: zh, Strategy: "default_static_folded"}, true
	}

	return match.Match{}, false
}

// lookupWeaponCode matches "M4A1-S" against codes such as "weapon_m4a1_silencer": an exact code
// first, then a code starting with the token, then a code containing it. Tokens shorter than
// minCodeFragment only take part in the first two passes.
func lookupWeaponCode(ix *match.IndexSet, token string) (match.Record, bool) {
	code := normalize.Alnum(token)
	if code == "" {
		return match.Record{}, false
	}
	if ref, ok := ix.Lookup(match.ByWeaponCode, weaponCodePfx+code); ok {
		return ref, true
	}

	keys := ix.Keys(match.ByWeaponCode)
	for _, key := range keys {
		if strings.HasPrefix(normalize.Alnum(strings.TrimPrefix(key, weaponCodePfx)), code) {
			return ix.Lookup(match.ByWeaponCode, key)
		}
	}
	if len(code) < minCodeFragment {
		return match.Record{}, false
	}
	for _, key := range keys {
		if strings.Contains(normalize.Alnum(strings.TrimPrefix(key, weaponCodePfx)), code) {
			return ix.Lookup(match.ByWeaponCode, key)
		}
	}
	return match.Record{}, false
}
