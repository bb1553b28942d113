// Package rank implements order statistics: percentile assignment,
// percentile rank of an item, and value lookup at a percentile by linear
// or nearest rank.
//
// Percentile arguments must lie in [0, 100]; anything else, NaN included,
// is rejected with seq.ErrInvalidParameter rather than clamped.
package rank

import (
	"cmp"
	"fmt"
	"math"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/search"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Entry is one item with its extracted value and assigned percentile.
type Entry[T any, V cmp.Ordered] struct {
	Item       T
	Value      V
	Percentile float64
}

// Assignment holds one Entry per input item in stable ascending order.
type Assignment[T any, V cmp.Ordered] []Entry[T, V]

// Percentiles assigns (i − 0.5)/n·100 to the item at 1-indexed ascending
// position i. Ties are broken by input order, so duplicates receive distinct
// percentiles.
func Percentiles[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (Assignment[T, V], error) {
	if len(items) == 0 {
		return nil, seq.ErrEmptyInput
	}

	sorted, keys, err := search.SortedWithKeys(items, ext)
	if err != nil {
		return nil, err
	}

	n := float64(len(sorted))
	out := make(Assignment[T, V], len(sorted))

	for i, item := range sorted {
		out[i] = Entry[T, V]{
			Item:       item,
			Value:      keys[i],
			Percentile: (float64(i) + 0.5) / n * seq.MaxPercent,
		}
	}

	return out, nil
}

// PercentRank returns the mean-rank percentile 100·(below + 0.5·equal)/n of
// the item at 1-indexed position index of the unsorted input.
func PercentRank[T any, V cmp.Ordered](items []T, index int, ext seq.Extractor[T, V]) (float64, error) {
	if len(items) == 0 {
		return 0, seq.ErrEmptyInput
	}

	if index < 1 || index > len(items) {
		return 0, fmt.Errorf("%w: index %d outside [1, %d]", seq.ErrInvalidParameter, index, len(items))
	}

	values, err := seq.Values(items, ext)
	if err != nil {
		return 0, err
	}

	target := values[index-1]
	below, equal := 0, 0

	for _, v := range values {
		switch {
		case v < target:
			below++
		case v == target:
			equal++
		}
	}

	return seq.MaxPercent * (float64(below) + 0.5*float64(equal)) / float64(len(values)), nil
}

// LinearRank returns the value at a percentile. With rank = percentile·n/100,
// a whole rank r averages the order statistics S[r−1] and S[r] (indexes clamped
// into the sequence); a fractional rank picks S[ceil(rank)−1] with no
// interpolation.
func LinearRank[T any, V seq.Number](items []T, percentile float64, ext seq.Extractor[T, V]) (float64, error) {
	sorted, err := sortedForRank(items, percentile, ext)
	if err != nil {
		return 0, err
	}

	n := len(sorted)
	rank := percentile * float64(n) / seq.MaxPercent

	if rank == math.Trunc(rank) {
		r := int(rank)
		lower := sorted[clampIndex(r-1, n)]
		upper := sorted[clampIndex(r, n)]

		return seq.Midpoint(float64(lower), float64(upper)), nil
	}

	return float64(sorted[clampIndex(int(math.Ceil(rank))-1, n)]), nil
}

// NearestRank returns S[rank−1] with rank = ceil(percentile·n/100) clamped to [1, n].
func NearestRank[T any, V cmp.Ordered](items []T, percentile float64, ext seq.Extractor[T, V]) (V, error) {
	sorted, err := sortedForRank(items, percentile, ext)
	if err != nil {
		var zero V

		return zero, err
	}

	return sorted[nearestIndex(percentile, len(sorted))], nil
}

// NearestRanks looks up several percentiles with a single sort.
func NearestRanks[T any, V cmp.Ordered](items []T, percentiles []float64, ext seq.Extractor[T, V]) ([]V, error) {
	for _, p := range percentiles {
		err := seq.CheckPercent(p)
		if err != nil {
			return nil, err
		}
	}

	if len(items) == 0 {
		return nil, seq.ErrEmptyInput
	}

	sorted, err := search.SortedValues(items, ext)
	if err != nil {
		return nil, err
	}

	out := make([]V, len(percentiles))
	for i, p := range percentiles {
		out[i] = sorted[nearestIndex(p, len(sorted))]
	}

	return out, nil
}

func sortedForRank[T any, V cmp.Ordered](items []T, percentile float64, ext seq.Extractor[T, V]) ([]V, error) {
	err := seq.CheckPercent(percentile)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, seq.ErrEmptyInput
	}

	return search.SortedValues(items, ext)
}

func nearestIndex(percentile float64, n int) int {
	rank := int(math.Ceil(percentile * float64(n) / seq.MaxPercent))

	return clampIndex(rank-1, n)
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
