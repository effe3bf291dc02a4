package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugpunters/vantage/internal/contracts"
)

var (
	analysisDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	asOf         = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
)

func buyReport(priceAt float64, predicted contracts.Value) ReportSnapshot {
	return ReportSnapshot{
		Symbol:             "CBA",
		Recommendation:     contracts.Buy,
		PriceAtAnalysis:    priceAt,
		PredictedReturnPct: predicted,
		AnalysisDate:       analysisDate,
	}
}

func TestEvaluate_BasicGrading(t *testing.T) {
	// Predicted +8%, realized +7.5%.
	p, err := Evaluate(buyReport(100, contracts.Defined(8)), 107.5, asOf)
	require.NoError(t, err)

	assert.InDelta(t, 7.5, p.PerformancePct, 1e-9)
	assert.InDelta(t, 1-0.5/8, p.AccuracyScore, 0.01)
	assert.Equal(t, "A", p.Grade)
	assert.True(t, p.RecommendationCorrect)
	assert.Equal(t, "Strong positive performance", p.Summary)
	assert.Equal(t, 92, p.DaysSinceAnalysis)
}

func TestEvaluate_NoPredictionDefaultsHalf(t *testing.T) {
	p, err := Evaluate(buyReport(100, contracts.Undefined()), 103, asOf)
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.AccuracyScore)
	assert.Equal(t, "D", p.Grade)
}

func TestEvaluate_AccuracyClamped(t *testing.T) {
	// Predicted +2%, realized -20%: raw accuracy would be far below 0.
	p, err := Evaluate(buyReport(100, contracts.Defined(2)), 80, asOf)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.AccuracyScore)
	assert.Equal(t, "F", p.Grade)
}

func TestEvaluate_ValidationErrors(t *testing.T) {
	_, err := Evaluate(buyReport(0, contracts.Undefined()), 100, asOf)
	require.Error(t, err)

	var verr *contracts.ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = Evaluate(buyReport(100, contracts.Undefined()), 0, asOf)
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))
}

func TestGradeFor_Ladder(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{1.0, "A"},
		{0.8, "A"},
		{0.79, "B"},
		{0.7, "B"},
		{0.65, "C"},
		{0.55, "D"},
		{0.49, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gradeFor(tt.accuracy), "accuracy %.2f", tt.accuracy)
	}
}

func TestRecommendationCorrect(t *testing.T) {
	tests := []struct {
		rec     contracts.Recommendation
		perfPct float64
		want    bool
	}{
		{contracts.StrongBuy, 3, true},
		{contracts.Buy, 3, true},
		{contracts.Buy, -1, false},
		{contracts.Sell, -3, true},
		{contracts.Sell, 3, false},
		{contracts.Hold, 1.5, true},
		{contracts.Hold, -1.5, true},
		{contracts.Hold, 4, false},
		{contracts.WeakHold, -2, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, recommendationCorrect(tt.rec, tt.perfPct),
			"%s at %.1f%%", tt.rec, tt.perfPct)
	}
}

func TestSummaryFor(t *testing.T) {
	assert.Equal(t, "Strong positive performance", summaryFor(6))
	assert.Equal(t, "Positive performance", summaryFor(2))
	assert.Equal(t, "Neutral performance", summaryFor(-3))
	assert.Equal(t, "Negative performance", summaryFor(-8))
}

func TestSummarize(t *testing.T) {
	perfs := []Performance{
		{Symbol: "A", Recommendation: contracts.Buy, PerformancePct: 12, AccuracyScore: 0.9, RecommendationCorrect: true},
		{Symbol: "B", Recommendation: contracts.Buy, PerformancePct: -6, AccuracyScore: 0.3, RecommendationCorrect: false},
		{Symbol: "C", Recommendation: contracts.Sell, PerformancePct: -12, AccuracyScore: 0.8, RecommendationCorrect: true},
		{Symbol: "D", Recommendation: contracts.Hold, PerformancePct: 1, AccuracyScore: 0.6, RecommendationCorrect: true},
	}

	s := Summarize(perfs)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 0.65, s.AverageAccuracy, 1e-9)

	require.NotNil(t, s.BestPerformer)
	require.NotNil(t, s.WorstPerformer)
	assert.Equal(t, "A", s.BestPerformer.Symbol)
	assert.Equal(t, "C", s.WorstPerformer.Symbol)

	buy := s.HitRates[contracts.Buy]
	assert.Equal(t, 2, buy.Total)
	assert.Equal(t, 1, buy.Correct)
	assert.InDelta(t, 0.5, buy.Rate, 1e-9)

	assert.Equal(t, 1, s.Distribution[bucketExcellent])
	assert.Equal(t, 1, s.Distribution[bucketNeutral])
	assert.Equal(t, 1, s.Distribution[bucketPoor])
	assert.Equal(t, 1, s.Distribution[bucketTerrible])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.BestPerformer)
	assert.Nil(t, s.WorstPerformer)
}
