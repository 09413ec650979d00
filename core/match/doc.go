// Package match provides the generic record-linkage engine used by every item category.
//
// A category is described by a Table: which field carries the display name, how a reference
// record is spread over named indexes, and the ordered list of strategies tried against those
// indexes. The engine itself knows nothing about agents, stickers or skins.
//
// # Indexes
//
// An IndexSet holds one map per Namespace. Keys are lower-cased on insert and on lookup, and a
// later record silently replaces an earlier one under the same key. Downstream results depend
// on that ordering, so collisions are never reported.
//
// # Matching
//
// Strategies run in table order and the first one that finds a reference wins, even if a later
// strategy would also match. A record whose name already contains CJK text is left alone, and a
// record that nothing matches is returned as-is. Neither case is an error.
//
// # Records
//
// Records are immutable JSON object values. Reads go through gjson; a translation produces a
// new Record via sjson, leaving the input untouched and preserving the original key order.
//
// # Usage
//
//	engine := match.NewEngine(stickers.Table(), refs)
//	out, stats := engine.Apply(records, match.Options{})
//	fmt.Println(stats.Translated, "/", stats.Total)
package match
