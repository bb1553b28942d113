// Package sample binds a sequence to its extractor so every statistic can be
// asked of it directly, and produces a descriptive Summary.
//
// A Sample copies the item slice it is given and never sorts it in place,
// so it is safe for concurrent use by multiple goroutines.
package sample

import (
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/freq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/mapx"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/rank"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/search"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/stats"
)

// Sample is an immutable sequence of items and the extractor that values them.
type Sample[T any, V seq.Number] struct {
	items []T
	ext   seq.Extractor[T, V]
	opts    Options
	metrics *describeMetrics
}

// New binds items to ext. If the meter provider cannot create the Describe
// instruments, the failure is logged and metrics are skipped.
func New[T any, V seq.Number](items []T, ext seq.Extractor[T, V], opts ...Option) *Sample[T, V] {
	o := buildOptions(opts)

	metrics, err := newDescribeMetrics(o.MeterProvider.Meter(meterName))
	if err != nil {
		o.Logger.Warn("sample metrics disabled", "error", err)
	}

	return &Sample[T, V]{
		items:   mapx.CloneSlice(items),
		ext:     ext,
		opts:    o,
		metrics: metrics,
	}
}

// Of binds plain values with the identity extractor.
func Of[V seq.Number](values []V, opts ...Option) *Sample[V, V] {
	return New(values, seq.Identity[V], opts...)
}

// Len returns the number of items.
func (s *Sample[T, V]) Len() int { return len(s.items) }

// Items returns a copy of the items in input order.
func (s *Sample[T, V]) Items() []T { return mapx.CloneSlice(s.items) }

// Options returns the effective options.
func (s *Sample[T, V]) Options() Options { return s.opts }

// Mean returns the arithmetic mean.
func (s *Sample[T, V]) Mean() (float64, error) { return stats.Mean(s.items, s.ext) }

// TruncatedMean returns the mean with percent of items trimmed from each tail.
func (s *Sample[T, V]) TruncatedMean(percent float64) (float64, error) {
	return stats.TruncatedMean(s.items, percent, s.ext)
}

// Midrange returns (min + max) / 2.
func (s *Sample[T, V]) Midrange() (float64, error) { return stats.Midrange(s.items, s.ext) }

// Median returns the median.
func (s *Sample[T, V]) Median() (float64, error) { return stats.Median(s.items, s.ext) }

// Mode returns every most frequent value, ascending.
func (s *Sample[T, V]) Mode() ([]V, error) { return stats.Mode(s.items, s.ext) }

// Min returns the smallest value.
func (s *Sample[T, V]) Min() (V, error) { return stats.Min(s.items, s.ext) }

// Max returns the largest value.
func (s *Sample[T, V]) Max() (V, error) { return stats.Max(s.items, s.ext) }

// Range returns max − min.
func (s *Sample[T, V]) Range() (float64, error) { return stats.Range(s.items, s.ext) }

// Variance returns the population variance around the mean.
func (s *Sample[T, V]) Variance() (float64, error) { return stats.Variance(s.items, s.ext) }

// VarianceAbout returns the population variance around datum.
func (s *Sample[T, V]) VarianceAbout(datum float64) (float64, error) {
	return stats.VarianceAbout(s.items, datum, s.ext)
}

// StdDev returns the population standard deviation around the mean.
func (s *Sample[T, V]) StdDev() (float64, error) { return stats.StdDev(s.items, s.ext) }

// StdDevAbout returns the population standard deviation around datum.
func (s *Sample[T, V]) StdDevAbout(datum float64) (float64, error) {
	return stats.StdDevAbout(s.items, datum, s.ext)
}

// ProbabilityMean returns the mean computed from the probability table.
func (s *Sample[T, V]) ProbabilityMean() (float64, error) {
	return stats.ProbabilityMean(s.items, s.ext)
}

// ProbabilityVariance returns the variance computed from the probability table.
func (s *Sample[T, V]) ProbabilityVariance() (float64, error) {
	return stats.ProbabilityVariance(s.items, s.ext)
}

// Frequency returns the value → count table.
func (s *Sample[T, V]) Frequency() (freq.Table[V], error) { return freq.Frequency(s.items, s.ext) }

// Probability returns the value → probability table.
func (s *Sample[T, V]) Probability() (freq.Distribution[V], error) {
	return freq.Probability(s.items, s.ext)
}

// Sorted returns the items in stable ascending order.
func (s *Sample[T, V]) Sorted() ([]T, error) { return search.Sorted(s.items, s.ext) }

// Ascending reports whether the items are already in ascending order.
func (s *Sample[T, V]) Ascending() (bool, error) { return search.Ascending(s.items, s.ext) }

// Descending reports whether the items are already in descending order.
func (s *Sample[T, V]) Descending() (bool, error) { return search.Descending(s.items, s.ext) }

// LinearSearch returns the first index holding value, or search.NotFound.
func (s *Sample[T, V]) LinearSearch(value V) (int, error) {
	return search.LinearSearch(s.items, value, s.ext)
}

// BinarySearch searches items that must already be ascending; see
// search.BinarySearch for the returned range. With CheckSorted set, unsorted
// items fail with seq.ErrPrecondition.
func (s *Sample[T, V]) BinarySearch(value V) (search.Range, bool, error) {
	if s.opts.CheckSorted {
		return search.BinarySearchChecked(s.items, value, s.ext)
	}

	return search.BinarySearch(s.items, value, s.ext)
}

// Percentiles assigns a positional percentile to every item.
func (s *Sample[T, V]) Percentiles() (rank.Assignment[T, V], error) {
	return rank.Percentiles(s.items, s.ext)
}

// FormattedPercentiles returns Percentiles in the configured Format.
func (s *Sample[T, V]) FormattedPercentiles() (any, error) {
	assignment, err := s.Percentiles()
	if err != nil {
		return nil, err
	}

	return assignment.As(s.opts.Format)
}

// PercentRank returns the mean-rank percentile of the item at 1-indexed position index.
func (s *Sample[T, V]) PercentRank(index int) (float64, error) {
	return rank.PercentRank(s.items, index, s.ext)
}

// LinearRank returns the value at percentile by linear rank.
func (s *Sample[T, V]) LinearRank(percentile float64) (float64, error) {
	return rank.LinearRank(s.items, percentile, s.ext)
}

// NearestRank returns the value at percentile by nearest rank.
func (s *Sample[T, V]) NearestRank(percentile float64) (V, error) {
	return rank.NearestRank(s.items, percentile, s.ext)
}
