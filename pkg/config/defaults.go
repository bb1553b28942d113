package config

import "github.com/Sumatoshi-tech/seqstat/pkg/alg/rank"

// Percentile and search defaults.
const (
	DefaultPercentilesFormat = rank.FormatPairs
	DefaultSearchCheckSorted = false
)

// Summary defaults.
const DefaultSummaryTrimPercent = 5.0

// Logging defaults.
const (
	DefaultLoggingLevel = "info"
	DefaultLoggingJSON  = false
)

// DefaultSummaryQuantiles returns the percentiles reported by a summary
// when none are configured.
func DefaultSummaryQuantiles() []float64 {
	return []float64{25, 50, 75, 90, 95, 99}
}
