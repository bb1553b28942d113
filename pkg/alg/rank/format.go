package rank

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Format selects the shape an Assignment is handed out in.
type Format string

// Supported output formats.
const (
	// FormatPairs is []Entry[T, V]: one entry per input item, ascending.
	FormatPairs Format = "pairs"
	// FormatMap is map[V]float64: value to percentile. Duplicate values keep
	// the percentile of their last (highest) position.
	FormatMap Format = "map"
	// FormatList is []float64: the percentiles alone, ascending.
	FormatList Format = "list"
)

// ParseFormat converts a configuration string to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPairs, FormatMap, FormatList:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown percentile format %q", seq.ErrInvalidParameter, s)
	}
}

// As returns the assignment in the requested shape; see the Format constants.
func (a Assignment[T, V]) As(format Format) (any, error) {
	switch format {
	case FormatPairs:
		return []Entry[T, V](a), nil
	case FormatMap:
		return a.ByValue(), nil
	case FormatList:
		return a.Percentiles(), nil
	default:
		return nil, fmt.Errorf("%w: unknown percentile format %q", seq.ErrInvalidParameter, format)
	}
}

// ByValue returns the FormatMap shape.
func (a Assignment[T, V]) ByValue() map[V]float64 {
	out := make(map[V]float64, len(a))

	for _, e := range a {
		out[e.Value] = e.Percentile
	}

	return out
}

// Percentiles returns the FormatList shape.
func (a Assignment[T, V]) Percentiles() []float64 {
	out := make([]float64, len(a))

	for i, e := range a {
		out[i] = e.Percentile
	}

	return out
}
