// Package skins matches weapon skin and glove records ("paint_name") against the localized
// skin dataset.
//
// Skins and gloves share one dataset and one index set; glove files enable the reverse-name
// strategy through match.Options.Glove.
//
// # Strategy chain
//
//  1. weapon_paint: "{weapon_defindex}_{paint}" against "{weapon.weapon_id}_{paint_index}".
//  2. full_name: "Weapon | Pattern", case-insensitive.
//  3. star_stripped: the same without a leading "★ ".
//  4. default: "<Weapon> | Default" resolves to the localized bare weapon name.
//  5. reverse_name (gloves only): localized glove names mapped back to English.
//
// Gloves and knives are also indexed under their "★ " name. The reverse table covers eight
// glove lines and patterns; unknown parts of a localized name pass through untranslated.
package skins
