package skins

import (
	"strings"

	"cs2-localizer/core/normalize"
)

// reverseNames maps localized glove lines back to English.
var reverseNames = map[string]string{
	"狂牙手套":  "Broken Fang Gloves",
	"翡翠":    "Jade",
	"运动手套":  "Sport Gloves",
	"摩托手套":  "Moto Gloves",
	"专业手套":  "Specialist Gloves",
	"驾驶手套":  "Driver Gloves",
	"血猎手套":  "Bloodhound Gloves",
	"九头蛇手套": "Hydra Gloves",
}

// ReverseMapName rebuilds an English "Weapon | Pattern" name from a localized one.
// Parts without a mapping are kept as-is; names without "|" yield "".
func ReverseMapName(localized string) string {
	weapon, pattern, ok := strings.Cut(localized, "|")
	if !ok {
		return ""
	}
	weapon = normalize.RemoveLocalizedStar(strings.TrimSpace(weapon))
	pattern = strings.TrimSpace(pattern)

	if en, ok := reverseNames[weapon]; ok {
		weapon = en
	}
	if en, ok := reverseNames[pattern]; ok {
		pattern = en
	}
	return weapon + " | " + pattern
}
