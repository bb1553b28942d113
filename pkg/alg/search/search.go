// Package search implements the ordering primitives the statistics build on:
// a stable insertion sort, monotonicity checks, and linear and binary search
// over items keyed by an extractor.
package search

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/mapx"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// NotFound is the index LinearSearch reports for an absent value.
const NotFound = -1

// Range is a closed interval [Low, High] of indexes into a sequence.
type Range struct {
	Low  int
	High int
}

// InsertionSort sorts items ascending by extracted key, in place, and returns
// the same slice. The sort is stable: items with equal keys keep their
// relative order. Each item is extracted exactly once. On extraction failure
// items is left untouched.
func InsertionSort[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) ([]T, error) {
	keys, err := seq.Values(items, ext)
	if err != nil {
		return items, err
	}

	insertionSort(items, keys)

	return items, nil
}

// Sorted returns an ascending copy of items, leaving items unchanged.
func Sorted[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) ([]T, error) {
	sorted, _, err := SortedWithKeys(items, ext)

	return sorted, err
}

// SortedWithKeys returns a stable ascending copy of items together with the
// extracted key of each sorted item.
func SortedWithKeys[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) ([]T, []V, error) {
	keys, err := seq.Values(items, ext)
	if err != nil {
		return nil, nil, err
	}

	sorted := mapx.CloneSlice(items)
	insertionSort(sorted, keys)

	return sorted, keys, nil
}

// SortedValues returns the extracted keys of items in ascending order.
// Bare keys carry no identity, so stability is irrelevant and the faster
// library sort is used.
func SortedValues[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) ([]V, error) {
	keys, err := seq.Values(items, ext)
	if err != nil {
		return nil, err
	}

	slices.Sort(keys)

	return keys, nil
}

// insertionSort orders items and keys together by keys.
func insertionSort[T any, V cmp.Ordered](items []T, keys []V) {
	for i := 1; i < len(items); i++ {
		item, key := items[i], keys[i]

		j := i - 1
		for ; j >= 0 && keys[j] > key; j-- {
			items[j+1] = items[j]
			keys[j+1] = keys[j]
		}

		items[j+1] = item
		keys[j+1] = key
	}
}

// Ascending reports whether every consecutive pair of items is non-decreasing.
func Ascending[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (bool, error) {
	return monotone(items, ext, func(prev, next V) bool { return prev <= next })
}

// Descending reports whether every consecutive pair of items is non-increasing.
func Descending[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (bool, error) {
	return monotone(items, ext, func(prev, next V) bool { return prev >= next })
}

func monotone[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V], ordered func(prev, next V) bool) (bool, error) {
	if ext == nil {
		return false, fmt.Errorf("%w: nil extractor", seq.ErrInvalidParameter)
	}

	var prev V

	for i, item := range items {
		key, err := seq.Extract(item, i, ext)
		if err != nil {
			return false, err
		}

		if i > 0 && !ordered(prev, key) {
			return false, nil
		}

		prev = key
	}

	return true, nil
}

// LinearSearch returns the first index whose key equals value, or NotFound.
// Items after the match are never extracted.
func LinearSearch[T any, V cmp.Ordered](items []T, value V, ext seq.Extractor[T, V]) (int, error) {
	if ext == nil {
		return NotFound, fmt.Errorf("%w: nil extractor", seq.ErrInvalidParameter)
	}

	for i, item := range items {
		key, err := seq.Extract(item, i, ext)
		if err != nil {
			return NotFound, err
		}

		if key == value {
			return i, nil
		}
	}

	return NotFound, nil
}

// BinarySearch locates value in items, which must already be ascending by ext.
//
// When found it returns the Range of every index whose key equals value
// (Low == High for a single match) and true. When absent it returns false and
// the two indexes bracketing the insertion point i: Range{i-1, i}, so Low may
// be -1 and High may be len(items).
//
// The ascending precondition is not verified unless the module is built with
// the seqdebug tag; an unsorted input gives an unspecified result. Use
// BinarySearchChecked to always verify it.
func BinarySearch[T any, V cmp.Ordered](items []T, value V, ext seq.Extractor[T, V]) (Range, bool, error) {
	if debugChecks {
		return BinarySearchChecked(items, value, ext)
	}

	return binarySearch(items, value, ext)
}

// BinarySearchChecked is BinarySearch with an O(n) ascending check first;
// an unsorted input fails with seq.ErrPrecondition.
func BinarySearchChecked[T any, V cmp.Ordered](items []T, value V, ext seq.Extractor[T, V]) (Range, bool, error) {
	ascending, err := Ascending(items, ext)
	if err != nil {
		return Range{Low: NotFound, High: NotFound}, false, err
	}

	if !ascending {
		return Range{Low: NotFound, High: NotFound}, false,
			fmt.Errorf("%w: binary search over a sequence that is not ascending", seq.ErrPrecondition)
	}

	return binarySearch(items, value, ext)
}

func binarySearch[T any, V cmp.Ordered](items []T, value V, ext seq.Extractor[T, V]) (Range, bool, error) {
	if ext == nil {
		return Range{Low: NotFound, High: NotFound}, false, fmt.Errorf("%w: nil extractor", seq.ErrInvalidParameter)
	}

	low, err := partition(items, 0, ext, func(key V) bool { return key < value })
	if err != nil {
		return Range{Low: NotFound, High: NotFound}, false, err
	}

	high, err := partition(items, low, ext, func(key V) bool { return key <= value })
	if err != nil {
		return Range{Low: NotFound, High: NotFound}, false, err
	}

	if low == high {
		return Range{Low: low - 1, High: low}, false, nil
	}

	return Range{Low: low, High: high - 1}, true, nil
}

// partition returns the first index at or after from whose key does not
// satisfy before. before must hold for a prefix of items and fail for the rest.
func partition[T any, V cmp.Ordered](items []T, from int, ext seq.Extractor[T, V], before func(V) bool) (int, error) {
	lo, hi := from, len(items)

	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec // lo and hi are non-negative slice bounds.

		key, err := seq.Extract(items[mid], mid, ext)
		if err != nil {
			return 0, err
		}

		if before(key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, nil
}
