// Package mapx holds the small generic helpers behind seqstat's frequency
// tables and immutable samples.
package mapx

import (
	"cmp"
	"maps"
	"slices"
)

// Count is the constraint for map values that can be compared for a maximum.
type Count interface {
	~int | ~int32 | ~int64 | ~float64
}

// SortedKeys lists the distinct values of a frequency or probability table
// in ascending order. Table walks go through it so that float sums over a
// table are accumulated in the same order on every run.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// MaxValue returns the largest value held in m and false for an empty map.
func MaxValue[K comparable, V Count](m map[K]V) (V, bool) {
	var (
		best  V
		found bool
	)

	for _, v := range m {
		if !found || v > best {
			best = v
			found = true
		}
	}

	return best, found
}

// KeysWithValue returns, in ascending order, every key of m mapped to want.
func KeysWithValue[K cmp.Ordered, V comparable](m map[K]V, want V) []K {
	keys := make([]K, 0)

	for k, v := range m {
		if v == want {
			keys = append(keys, k)
		}
	}

	slices.Sort(keys)

	return keys
}
