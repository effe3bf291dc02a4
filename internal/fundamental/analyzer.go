// Package fundamental derives ratios, a 0-100 health score, and an
// intrinsic-value estimate from financial-statement snapshots.
package fundamental

import "github.com/mugpunters/vantage/pkg/logger"

const (
	defaultPEMultiple = 15.0
	defaultPBMultiple = 1.5
)

// Analyzer computes fundamental metrics, health scores, and valuations.
// It carries no mutable state and is safe for concurrent use.
type Analyzer struct {
	logger     *logger.Logger
	benchmarks Benchmarks
	peMultiple float64
	pbMultiple float64
}

// NewAnalyzer creates an analyzer with the given benchmark table and the
// proxy industry multiples used by the PE/PB valuations. Non-positive
// multiples fall back to the defaults.
func NewAnalyzer(log *logger.Logger, benchmarks Benchmarks, peMultiple, pbMultiple float64) *Analyzer {
	if benchmarks == nil {
		benchmarks = BuiltinBenchmarks()
	}
	if peMultiple <= 0 {
		peMultiple = defaultPEMultiple
	}
	if pbMultiple <= 0 {
		pbMultiple = defaultPBMultiple
	}
	return &Analyzer{
		logger:     log,
		benchmarks: benchmarks,
		peMultiple: peMultiple,
		pbMultiple: pbMultiple,
	}
}
