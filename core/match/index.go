package match

import (
	"sort"

	"cs2-localizer/core/normalize"
)

// Namespace names one index inside an IndexSet.
type Namespace string

const (
	ByID          Namespace = "id"
	ByName        Namespace = "name"
	ByMarketName  Namespace = "market_name"
	ByDisplayName Namespace = "display_name"
	ByOriginal    Namespace = "original_name"
	ByModel       Namespace = "model"
	ByWeaponPaint Namespace = "weapon_paint"
	ByFullName    Namespace = "full_name"
	ByReverseName Namespace = "reverse_name"
	ByWeaponID    Namespace = "weapon_id"
	ByWeaponCode  Namespace = "weapon_code"
)

// Index maps a normalized key to the last reference record stored under it.
type Index map[string]Record

// IndexSet groups the indexes built for one category.
type IndexSet struct {
	indexes map[Namespace]Index
}

// NewIndexSet creates an empty set.
func NewIndexSet() *IndexSet {
	return &IndexSet{indexes: make(map[Namespace]Index)}
}

// Put stores rec under the lower-cased key, replacing any previous record.
// Empty keys are ignored.
func (s *IndexSet) Put(ns Namespace, key string, rec Record) {
	if key == "" {
		return
	}
	idx, ok := s.indexes[ns]
	if !ok {
		idx = make(Index)
		s.indexes[ns] = idx
	}
	idx[normalize.Key(key)] = rec
}

// Lookup finds the record stored under the lower-cased key.
func (s *IndexSet) Lookup(ns Namespace, key string) (Record, bool) {
	if key == "" {
		return Record{}, false
	}
	rec, ok := s.indexes[ns][normalize.Key(key)]
	return rec, ok
}

// Len returns the number of keys in one namespace.
func (s *IndexSet) Len(ns Namespace) int {
	return len(s.indexes[ns])
}

// Keys returns the keys of one namespace in sorted order.
func (s *IndexSet) Keys(ns Namespace) []string {
	idx := s.indexes[ns]
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sizes reports the key count of every populated namespace.
func (s *IndexSet) Sizes() map[Namespace]int {
	sizes := make(map[Namespace]int, len(s.indexes))
	for ns, idx := range s.indexes {
		sizes[ns] = len(idx)
	}
	return sizes
}

// Empty reports whether no namespace holds any key.
func (s *IndexSet) Empty() bool {
	for _, idx := range s.indexes {
		if len(idx) > 0 {
			return false
		}
	}
	return true
}
