// Package stats provides central tendency and dispersion statistics over
// sequences whose values are pulled out by an extractor.
// All variances and standard deviations are population statistics (÷n, not ÷(n−1)).
// Every statistic fails with seq.ErrEmptyInput on an empty sequence.
package stats

import (
	"cmp"
	"math"
	"slices"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Clamp restricts val to the range [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(val, hi))
}

// Min returns the smallest extracted value.
func Min[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (V, error) {
	lo, _, err := bounds(items, ext)

	return lo, err
}

// Max returns the largest extracted value.
func Max[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (V, error) {
	_, hi, err := bounds(items, ext)

	return hi, err
}

// Range returns max − min of the extracted values.
func Range[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	lo, hi, err := bounds(items, ext)
	if err != nil {
		return 0, err
	}

	return float64(hi) - float64(lo), nil
}

func bounds[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (lo, hi V, err error) {
	if len(items) == 0 {
		return lo, hi, seq.ErrEmptyInput
	}

	values, err := seq.Values(items, ext)
	if err != nil {
		return lo, hi, err
	}

	lo, hi = values[0], values[0]

	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi, nil
}

// mean falls back to summing v/n when the plain sum overflows, and clamps the
// result into [min, max] so rounding never pushes it outside the sample.
func mean(values []float64) float64 {
	n := float64(len(values))

	m := sum(values) / n
	if math.IsInf(m, 0) {
		m = 0
		for _, v := range values {
			m += v / n
		}
	}

	return Clamp(m, slices.Min(values), slices.Max(values))
}

func sum(values []float64) float64 {
	var total float64

	for _, v := range values {
		total += v
	}

	return total
}
