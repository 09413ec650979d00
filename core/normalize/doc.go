// Package normalize holds the pure string transforms shared by index building and matching.
//
// Every function is stateless and applied symmetrically: the same cleaning that produces an
// index key from a reference record is applied to a source name before lookup, so both sides
// meet in the same normalized form.
//
// # Markers
//
// The rarity star is the only marker that must survive translation. StripRarityStar reports
// whether the source carried one, and ApplyRarityStar reinstates it using the localized
// convention (a full-width "（★）" after the category noun, or at the end).
package normalize
