// Package performance grades past recommendations against realized
// price movement. It is a downstream consumer of the analysis engine's
// output and performs no I/O of its own.
package performance

import (
	"math"
	"time"

	"github.com/mugpunters/vantage/internal/contracts"
)

// ReportSnapshot is the persisted view of a past analysis needed for
// grading: what was recommended, at what price, and what return was
// predicted, if any.
type ReportSnapshot struct {
	Symbol             string                   `json:"symbol"`
	Recommendation     contracts.Recommendation `json:"recommendation"`
	PriceAtAnalysis    float64                  `json:"price_at_analysis"`
	PredictedReturnPct contracts.Value          `json:"predicted_return_pct"`
	AnalysisDate       time.Time                `json:"analysis_date"`
}

// Performance is the graded outcome of one past recommendation.
type Performance struct {
	Symbol                string                   `json:"symbol"`
	Recommendation        contracts.Recommendation `json:"recommendation"`
	PerformancePct        float64                  `json:"performance_pct"`
	AccuracyScore         float64                  `json:"accuracy_score"`
	Grade                 string                   `json:"grade"`
	DaysSinceAnalysis     int                      `json:"days_since_analysis"`
	RecommendationCorrect bool                     `json:"recommendation_correct"`
	Summary               string                   `json:"summary"`
}

// holdBandPct bounds the move a hold-style recommendation tolerates.
const holdBandPct = 2.0

// Evaluate grades one report against the current price. Accuracy is
// 1 - |actual - predicted| / |predicted| clamped to [0,1], or 0.5 when
// the report carried no prediction.
func Evaluate(report ReportSnapshot, currentPrice float64, asOf time.Time) (Performance, error) {
	if report.PriceAtAnalysis <= 0 {
		return Performance{}, &contracts.ValidationError{Field: "price_at_analysis", Reason: "must be positive"}
	}
	if currentPrice <= 0 {
		return Performance{}, &contracts.ValidationError{Field: "current_price", Reason: "must be positive"}
	}

	perfPct := (currentPrice - report.PriceAtAnalysis) / report.PriceAtAnalysis * 100

	accuracy := 0.5
	if predicted, ok := report.PredictedReturnPct.Float(); ok && predicted != 0 {
		accuracy = clamp01(1 - math.Abs(perfPct-predicted)/math.Abs(predicted))
	}

	days := 0
	if asOf.After(report.AnalysisDate) {
		days = int(asOf.Sub(report.AnalysisDate).Hours() / 24)
	}

	return Performance{
		Symbol:                report.Symbol,
		Recommendation:        report.Recommendation,
		PerformancePct:        round2(perfPct),
		AccuracyScore:         round2(accuracy),
		Grade:                 gradeFor(accuracy),
		DaysSinceAnalysis:     days,
		RecommendationCorrect: recommendationCorrect(report.Recommendation, perfPct),
		Summary:               summaryFor(perfPct),
	}, nil
}

func gradeFor(accuracy float64) string {
	switch {
	case accuracy >= 0.8:
		return "A"
	case accuracy >= 0.7:
		return "B"
	case accuracy >= 0.6:
		return "C"
	case accuracy >= 0.5:
		return "D"
	default:
		return "F"
	}
}

// recommendationCorrect checks direction: buys expect a rise, sells a
// fall, holds a move inside the band.
func recommendationCorrect(rec contracts.Recommendation, perfPct float64) bool {
	switch rec {
	case contracts.StrongBuy, contracts.Buy:
		return perfPct > 0
	case contracts.Sell:
		return perfPct < 0
	case contracts.Hold, contracts.WeakHold:
		return math.Abs(perfPct) <= holdBandPct
	default:
		return false
	}
}

func summaryFor(perfPct float64) string {
	switch {
	case perfPct > 5:
		return "Strong positive performance"
	case perfPct > 0:
		return "Positive performance"
	case perfPct > -5:
		return "Neutral performance"
	default:
		return "Negative performance"
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
