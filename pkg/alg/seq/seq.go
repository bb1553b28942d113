// Package seq defines the extractor contract shared by every statistic in
// seqstat, the numeric constraint for arithmetic statistics, and the error
// kinds those statistics report.
package seq

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Error kinds reported by the statistics packages.
var (
	// ErrEmptyInput is returned by any statistic that needs at least one item.
	ErrEmptyInput = errors.New("empty input")
	// ErrExtraction is returned when an extractor fails or yields a non-orderable value.
	ErrExtraction = errors.New("extraction failed")
	// ErrInvalidParameter is returned for out-of-range percentages, percentiles and indexes.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrPrecondition is returned when an input violates a documented precondition,
	// such as binary search over an unsorted sequence.
	ErrPrecondition = errors.New("precondition violated")
)

// MaxPercent is the upper bound of every percentage and percentile argument.
const MaxPercent = 100.0

// Number is the constraint for values that support arithmetic statistics.
type Number interface {
	constraints.Integer | constraints.Float
}

// Extractor pulls a comparable value out of an item.
// It must be deterministic: two calls on the same item return the same value.
type Extractor[T, V any] func(item T) (V, error)

// Identity is the default extractor: the item is its own value.
func Identity[T any](item T) (T, error) {
	return item, nil
}

// Func lifts an accessor that cannot fail into an Extractor.
func Func[T, V any](accessor func(T) V) Extractor[T, V] {
	return func(item T) (V, error) {
		return accessor(item), nil
	}
}

// Values extracts the value of every item, calling ext exactly once per item.
// A float NaN is rejected because it has no place in an ordering.
func Values[T any, V cmp.Ordered](items []T, ext Extractor[T, V]) ([]V, error) {
	if ext == nil {
		return nil, fmt.Errorf("%w: nil extractor", ErrInvalidParameter)
	}

	values := make([]V, len(items))

	for i, item := range items {
		v, err := Extract(item, i, ext)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return values, nil
}

// Extract applies ext to a single item at position index, wrapping failures
// as ErrExtraction.
func Extract[T any, V cmp.Ordered](item T, index int, ext Extractor[T, V]) (V, error) {
	v, err := ext(item)
	if err != nil {
		var zero V

		return zero, fmt.Errorf("%w: item %d: %w", ErrExtraction, index, err)
	}

	if v != v { //nolint:staticcheck // only NaN compares unequal to itself.
		var zero V

		return zero, fmt.Errorf("%w: item %d: NaN is not orderable", ErrExtraction, index)
	}

	return v, nil
}

// Floats extracts every item and converts the values to float64.
// Empty input is rejected with ErrEmptyInput.
func Floats[T any, V Number](items []T, ext Extractor[T, V]) ([]float64, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	values, err := Values(items, ext)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out, nil
}

// CheckPercent validates a percentage or percentile argument in [0, 100].
func CheckPercent(p float64) error {
	if math.IsNaN(p) || p < 0 || p > MaxPercent {
		return fmt.Errorf("%w: percentage %v outside [0, %v]", ErrInvalidParameter, p, MaxPercent)
	}

	return nil
}

// Midpoint returns the value halfway between a and b without overflowing
// near ±MaxFloat64. The result always lies between a and b.
func Midpoint(a, b float64) float64 {
	lo, hi := min(a, b), max(a, b)

	var mid float64
	if (lo < 0) != (hi < 0) {
		mid = (lo + hi) / 2
	} else {
		mid = lo + (hi-lo)/2
	}

	return max(lo, min(mid, hi))
}
