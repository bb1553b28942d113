package sample

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/freq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/rank"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/search"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/stats"
)

const tracerName = "github.com/Sumatoshi-tech/seqstat/pkg/sample"

// Quantile is one nearest-rank lookup reported by a Summary.
type Quantile struct {
	Percentile float64 `json:"percentile" yaml:"percentile"`
	Value      float64 `json:"value"      yaml:"value"`
}

// Summary is the descriptive statistics of a sample.
type Summary struct {
	Count       int        `json:"count"        yaml:"count"`
	Min         float64    `json:"min"          yaml:"min"`
	Max         float64    `json:"max"          yaml:"max"`
	Range       float64    `json:"range"        yaml:"range"`
	Midrange    float64    `json:"midrange"     yaml:"midrange"`
	Mean        float64    `json:"mean"         yaml:"mean"`
	TrimPercent float64    `json:"trim_percent" yaml:"trim_percent"`
	TrimmedMean float64    `json:"trimmed_mean" yaml:"trimmed_mean"`
	Median      float64    `json:"median"       yaml:"median"`
	Modes       []float64  `json:"modes"        yaml:"modes"`
	Variance    float64    `json:"variance"     yaml:"variance"`
	StdDev      float64    `json:"stddev"       yaml:"stddev"`
	Quantiles   []Quantile `json:"quantiles"    yaml:"quantiles"`
}

// Describe computes a Summary in one extraction pass. The work runs inside a
// span from the configured OpenTelemetry tracer provider, and every call is
// counted by outcome with the sample size recorded as a histogram.
func (s *Sample[T, V]) Describe(ctx context.Context) (Summary, error) {
	ctx, span := s.opts.TracerProvider.Tracer(tracerName).Start(ctx, "sample.describe",
		trace.WithAttributes(attribute.Int("sample.count", len(s.items))))
	defer span.End()

	summary, err := s.describe()
	s.metrics.record(ctx, len(s.items), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.opts.Logger.DebugContext(ctx, "describe failed", "count", len(s.items), "error", err)

		return Summary{}, fmt.Errorf("describe sample: %w", err)
	}

	span.SetAttributes(
		attribute.Float64("sample.mean", summary.Mean),
		attribute.Float64("sample.stddev", summary.StdDev),
	)

	s.opts.Logger.DebugContext(ctx, "sample described",
		"count", summary.Count,
		"mean", summary.Mean,
		"median", summary.Median,
		"stddev", summary.StdDev,
	)

	return summary, nil
}

// describe extracts once and runs every statistic over the bare values.
func (s *Sample[T, V]) describe() (Summary, error) {
	if len(s.items) == 0 {
		return Summary{}, seq.ErrEmptyInput
	}

	values, err := seq.Values(s.items, s.ext)
	if err != nil {
		return Summary{}, err
	}

	sorted, err := search.SortedValues(values, seq.Identity[V])
	if err != nil {
		return Summary{}, err
	}

	id := seq.Identity[V]
	summary := Summary{
		Count:       len(sorted),
		Min:         float64(sorted[0]),
		Max:         float64(sorted[len(sorted)-1]),
		TrimPercent: s.opts.TrimPercent,
	}

	summary.Range = summary.Max - summary.Min
	summary.Midrange = seq.Midpoint(summary.Min, summary.Max)

	steps := []struct {
		dst *float64
		run func() (float64, error)
	}{
		{&summary.Mean, func() (float64, error) { return stats.Mean(sorted, id) }},
		{&summary.TrimmedMean, func() (float64, error) { return stats.TruncatedMean(sorted, s.opts.TrimPercent, id) }},
		{&summary.Median, func() (float64, error) { return stats.Median(sorted, id) }},
		{&summary.Variance, func() (float64, error) { return stats.Variance(sorted, id) }},
	}

	for _, step := range steps {
		*step.dst, err = step.run()
		if err != nil {
			return Summary{}, err
		}
	}

	summary.StdDev = math.Sqrt(summary.Variance)

	for _, m := range freq.Count(sorted).Modes() {
		summary.Modes = append(summary.Modes, float64(m))
	}

	quantiles, err := rank.NearestRanks(sorted, s.opts.Quantiles, id)
	if err != nil {
		return Summary{}, err
	}

	summary.Quantiles = make([]Quantile, len(quantiles))
	for i, q := range quantiles {
		summary.Quantiles[i] = Quantile{Percentile: s.opts.Quantiles[i], Value: float64(q)}
	}

	return summary, nil
}
