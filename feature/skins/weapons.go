package skins

import "cs2-localizer/core/normalize"

// WeaponNames maps English weapon names to their zh-CN in-game names.
var WeaponNames = map[string]string{
	// Pistols
	"Glock-18":      "格洛克 18 型",
	"USP-S":         "USP 消音版",
	"P2000":         "P2000",
	"P250":          "P250",
	"Five-SeveN":    "FN57",
	"Tec-9":         "Tec-9",
	"CZ75-Auto":     "CZ75 自动手枪",
	"Dual Berettas": "双持贝瑞塔",
	"Desert Eagle":  "沙漠之鹰",
	"R8 Revolver":   "R8 左轮手枪",
	"Zeus x27":      "宙斯 x27 电击枪",

	// Heavy
	"Nova":      "新星",
	"XM1014":    "XM1014",
	"MAG-7":     "MAG-7",
	"Sawed-Off": "截短霰弹枪",
	"M249":      "M249",
	"Negev":     "内格夫",

	// SMGs
	"MAC-10":   "MAC-10",
	"MP9":      "MP9",
	"MP7":      "MP7",
	"MP5-SD":   "MP5-SD",
	"UMP-45":   "UMP-45",
	"P90":      "P90",
	"PP-Bizon": "PP-野牛",

	// Rifles
	"Galil AR": "加利尔 AR",
	"FAMAS":    "法玛斯",
	"AK-47":    "AK-47",
	"M4A4":     "M4A4",
	"M4A1-S":   "M4A1 消音型",
	"SG 553":   "SG 553",
	"AUG":      "AUG",
	"SSG 08":   "SSG 08",
	"AWP":      "AWP",
	"G3SG1":    "G3SG1",
	"SCAR-20":  "SCAR-20",

	// Knives
	"Bayonet":         "刺刀",
	"M9 Bayonet":      "M9 刺刀",
	"Karambit":        "爪子刀",
	"Butterfly Knife": "蝴蝶刀",
	"Flip Knife":      "折叠刀",
	"Gut Knife":       "穿肠刀",
	"Huntsman Knife":  "猎杀者匕首",
	"Falchion Knife":  "弯刀",
	"Bowie Knife":     "鲍伊猎刀",
	"Shadow Daggers":  "暗影双匕",
	"Navaja Knife":    "折刀",
	"Stiletto Knife":  "短剑",
	"Talon Knife":     "锯齿爪刀",
	"Ursus Knife":     "熊刀",
	"Classic Knife":   "海豹短刀",
	"Paracord Knife":  "系绳匕首",
	"Survival Knife":  "求生匕首",
	"Nomad Knife":     "流浪者匕首",
	"Skeleton Knife":  "骷髅匕首",
	"Kukri Knife":     "廓尔喀刀",
}

var weaponNamesFolded = func() map[string]string {
	folded := make(map[string]string, len(WeaponNames))
	for en, zh := range WeaponNames {
		folded[normalize.Key(en)] = zh
	}
	return folded
}()
