package match

import "cs2-localizer/core/normalize"

// Table describes how one category is indexed, matched and rendered.
type Table struct {
	// Category is the short category name (e.g. "stickers").
	Category string
	// NameField is the source field holding the display name.
	NameField string
	// RequireName skips records without a name before any strategy runs.
	RequireName bool
	// LocalizedPrefix is removed from matched localized names (e.g. "印花 | ").
	LocalizedPrefix string
	// Index spreads one reference record over the index set.
	Index func(ix *IndexSet, ref Record)
	// Strategies run in order until one matches.
	Strategies []Strategy
	// Finish adjusts the cleaned localized name before the rarity star is restored.
	Finish func(name string, in Input) string
}

// Render turns a match into the final localized name for the source record.
func (t *Table) Render(m Match, in Input) string {
	name := normalize.StripLocalizedPrefix(m.Name, t.LocalizedPrefix)
	name = normalize.StripHTMLSuffix(name)
	if t.Finish != nil {
		name = t.Finish(name, in)
	}
	if name == "" {
		return ""
	}
	if _, starred := normalize.StripRarityStar(in.Name); starred {
		name = normalize.ApplyRarityStar(name, normalize.StarNouns)
	}
	return name
}

// StrategyNames lists the strategies in evaluation order.
func (t *Table) StrategyNames() []string {
	names := make([]string, len(t.Strategies))
	for i, s := range t.Strategies {
		names[i] = s.Name
	}
	return names
}
