package sample

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/rank"
	"github.com/Sumatoshi-tech/seqstat/pkg/config"
)

// Options tunes a Sample. The zero value is completed by defaults in New.
type Options struct {
	// Format is the shape FormattedPercentiles returns.
	Format rank.Format
	// CheckSorted verifies the ascending precondition on BinarySearch.
	CheckSorted bool
	// TrimPercent is the per-tail trim of the summary's truncated mean.
	TrimPercent float64
	// Quantiles are the percentiles a summary reports by nearest rank.
	Quantiles []float64
	// Logger receives debug records from Describe.
	Logger *slog.Logger
	// TracerProvider supplies the tracer for Describe spans; the global
	// provider is used when nil.
	TracerProvider trace.TracerProvider
	// MeterProvider supplies the meter for Describe metrics; the global
	// provider is used when nil.
	MeterProvider metric.MeterProvider
}

// Option configures a Sample.
type Option func(*Options)

// WithFormat sets the percentile output format.
func WithFormat(format rank.Format) Option {
	return func(o *Options) { o.Format = format }
}

// WithCheckSorted enables the ascending check before binary search.
func WithCheckSorted(check bool) Option {
	return func(o *Options) { o.CheckSorted = check }
}

// WithTrimPercent sets the summary's truncated-mean trim.
func WithTrimPercent(percent float64) Option {
	return func(o *Options) { o.TrimPercent = percent }
}

// WithQuantiles sets the percentiles reported by Describe.
func WithQuantiles(percentiles ...float64) Option {
	return func(o *Options) { o.Quantiles = percentiles }
}

// WithLogger sets the logger used by Describe.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithTracerProvider sets the provider Describe takes its tracer from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.TracerProvider = tp }
}

// WithMeterProvider sets the provider Describe takes its meter from.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) { o.MeterProvider = mp }
}

// WithConfig applies every sample-related setting of a loaded config.
func WithConfig(cfg *config.Config) Option {
	return func(o *Options) {
		o.Format = cfg.Format()
		o.CheckSorted = cfg.Search.CheckSorted
		o.TrimPercent = cfg.Summary.TrimPercent
		o.Quantiles = append([]float64(nil), cfg.Summary.Quantiles...)
	}
}

func buildOptions(opts []Option) Options {
	o := Options{
		Format:      config.DefaultPercentilesFormat,
		TrimPercent: config.DefaultSummaryTrimPercent,
		Quantiles:   config.DefaultSummaryQuantiles(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}

	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}

	return o
}
