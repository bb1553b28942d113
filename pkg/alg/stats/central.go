package stats

import (
	"math"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/freq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/search"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Mean returns the arithmetic mean of the extracted values.
func Mean[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	values, err := seq.Floats(items, ext)
	if err != nil {
		return 0, err
	}

	return mean(values), nil
}

// TruncatedMean returns the mean after discarding floor(n·percent/100) items
// from each end of the ascending order. The trim is clamped so at least one
// item always remains; percent 0 is the ordinary mean.
func TruncatedMean[T any, V seq.Number](items []T, percent float64, ext seq.Extractor[T, V]) (float64, error) {
	err := seq.CheckPercent(percent)
	if err != nil {
		return 0, err
	}

	if len(items) == 0 {
		return 0, seq.ErrEmptyInput
	}

	sorted, err := search.SortedValues(items, ext)
	if err != nil {
		return 0, err
	}

	n := len(sorted)
	trim := Clamp(int(math.Floor(float64(n)*percent/seq.MaxPercent)), 0, (n-1)/2)

	kept := make([]float64, 0, n-2*trim)
	for _, v := range sorted[trim : n-trim] {
		kept = append(kept, float64(v))
	}

	return mean(kept), nil
}

// Midrange returns (min + max) / 2.
func Midrange[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	lo, hi, err := bounds(items, ext)
	if err != nil {
		return 0, err
	}

	return seq.Midpoint(float64(lo), float64(hi)), nil
}

// Median returns the middle value for an odd count and the mean of the two
// middle values for an even count.
func Median[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	if len(items) == 0 {
		return 0, seq.ErrEmptyInput
	}

	sorted, err := search.SortedValues(items, ext)
	if err != nil {
		return 0, err
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid]), nil
	}

	return seq.Midpoint(float64(sorted[mid-1]), float64(sorted[mid])), nil
}

// Mode returns every value that occurs with the highest frequency, ascending.
// A multi-modal sample yields several values; the result is never empty.
func Mode[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) ([]V, error) {
	table, err := freq.Frequency(items, ext)
	if err != nil {
		return nil, err
	}

	return table.Modes(), nil
}
