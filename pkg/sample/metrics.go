package sample

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/Sumatoshi-tech/seqstat/pkg/sample"

	metricDescribeTotal = "seqstat.describe.total"
	metricSampleSize    = "seqstat.sample.size"

	attrOutcome = "outcome"
)

var sizeBucketBoundaries = []float64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000}

// describeMetrics holds the instruments Describe records into.
type describeMetrics struct {
	describeTotal metric.Int64Counter
	sampleSize    metric.Int64Histogram
}

func newDescribeMetrics(mt metric.Meter) (*describeMetrics, error) {
	total, err := mt.Int64Counter(metricDescribeTotal,
		metric.WithDescription("Summaries computed, by outcome"),
		metric.WithUnit("{summary}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricDescribeTotal, err)
	}

	size, err := mt.Int64Histogram(metricSampleSize,
		metric.WithDescription("Items per described sample"),
		metric.WithUnit("{item}"),
		metric.WithExplicitBucketBoundaries(sizeBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSampleSize, err)
	}

	return &describeMetrics{describeTotal: total, sampleSize: size}, nil
}

// record is a no-op on a nil receiver.
func (dm *describeMetrics) record(ctx context.Context, size int, err error) {
	if dm == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	dm.describeTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOutcome, outcome)))
	dm.sampleSize.Record(ctx, int64(size))
}
