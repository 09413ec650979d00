package match

// Options tune a single translation.
type Options struct {
	// Glove enables strategies that only apply to glove files.
	Glove bool
}

// Input is what a strategy sees for one source record.
type Input struct {
	Record  Record
	Name    string
	Options Options
}

// Match is a successful strategy result.
type Match struct {
	// Ref is the matched reference record. It is zero for synthesized names.
	Ref Record
	// Name is the localized name before output cleaning.
	Name string
	// Strategy names the strategy that produced the match.
	Strategy string
}

// Strategy is one rule in a category's fallback chain.
type Strategy struct {
	Name    string
	Resolve func(ix *IndexSet, in Input) (Match, bool)
}

// KeyFunc computes lookup candidates for a source record, in priority order.
type KeyFunc func(in Input) []string

// Lookup builds a strategy that tries each candidate key against one namespace.
func Lookup(name string, ns Namespace, keys KeyFunc) Strategy {
	return Strategy{
		Name: name,
		Resolve: func(ix *IndexSet, in Input) (Match, bool) {
			for _, key := range keys(in) {
				if rec, ok := ix.Lookup(ns, key); ok {
					return Match{Ref: rec, Name: rec.String("name"), Strategy: name}, true
				}
			}
			return Match{}, false
		},
	}
}

// NameKey uses the current name as the only candidate.
func NameKey(in Input) []string {
	return []string{in.Name}
}

// FieldKeys returns a KeyFunc reading one field and expanding it with variants.
// Duplicate and empty candidates are dropped.
func FieldKeys(field string, variants ...func(string) string) KeyFunc {
	return func(in Input) []string {
		value := in.Record.String(field)
		if value == "" {
			return nil
		}
		if len(variants) == 0 {
			return []string{value}
		}
		return unique(value, variants)
	}
}

// NameKeys expands the current name with variants.
func NameKeys(variants ...func(string) string) KeyFunc {
	return func(in Input) []string {
		if in.Name == "" {
			return nil
		}
		return unique(in.Name, variants)
	}
}

func unique(value string, variants []func(string) string) []string {
	seen := make(map[string]struct{}, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		key := v(value)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Same is the identity variant.
func Same(s string) string { return s }
