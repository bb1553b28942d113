package stats

import (
	"fmt"
	"math"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/freq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Variance returns the population variance around the mean.
func Variance[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	values, err := seq.Floats(items, ext)
	if err != nil {
		return 0, err
	}

	return meanSquaredDeviation(values, mean(values)), nil
}

// VarianceAbout returns the population variance around an arbitrary datum.
func VarianceAbout[T any, V seq.Number](items []T, datum float64, ext seq.Extractor[T, V]) (float64, error) {
	if math.IsNaN(datum) {
		return 0, fmt.Errorf("%w: datum is NaN", seq.ErrInvalidParameter)
	}

	values, err := seq.Floats(items, ext)
	if err != nil {
		return 0, err
	}

	return meanSquaredDeviation(values, datum), nil
}

// StdDev returns the population standard deviation around the mean.
func StdDev[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	variance, err := Variance(items, ext)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// StdDevAbout returns the population standard deviation around a datum.
func StdDevAbout[T any, V seq.Number](items []T, datum float64, ext seq.Extractor[T, V]) (float64, error) {
	variance, err := VarianceAbout(items, datum, ext)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// ProbabilityMean returns Σ value·P(value) over the distinct values.
// It equals Mean but walks the probability table instead of the raw items.
func ProbabilityMean[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	dist, err := freq.Probability(items, ext)
	if err != nil {
		return 0, err
	}

	return expectation(dist), nil
}

// ProbabilityVariance returns Σ P(value)·(value − μ)² where μ is the probability mean.
func ProbabilityVariance[T any, V seq.Number](items []T, ext seq.Extractor[T, V]) (float64, error) {
	dist, err := freq.Probability(items, ext)
	if err != nil {
		return 0, err
	}

	mean := expectation(dist)

	var variance float64

	for _, v := range dist.Values() {
		diff := float64(v) - mean
		variance += dist[v] * diff * diff
	}

	return variance, nil
}

// expectation sums in ascending value order so rounding is reproducible.
func expectation[V seq.Number](dist freq.Distribution[V]) float64 {
	var mean float64

	for _, v := range dist.Values() {
		mean += float64(v) * dist[v]
	}

	return mean
}

func meanSquaredDeviation(values []float64, center float64) float64 {
	var sumSq float64

	for _, v := range values {
		diff := v - center
		sumSq += diff * diff
	}

	return sumSq / float64(len(values))
}
