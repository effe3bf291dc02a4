package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugpunters/vantage/internal/contracts"
	"github.com/mugpunters/vantage/internal/fundamental"
	"github.com/mugpunters/vantage/internal/technical"
	"github.com/mugpunters/vantage/pkg/config"
	"github.com/mugpunters/vantage/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{
			TechnicalWeight:   0.40,
			FundamentalWeight: 0.40,
			RiskWeight:        0.20,
		},
		Valuation: config.ValuationConfig{
			GrowthRate:   0.05,
			DiscountRate: 0.10,
			IndustryPE:   15.0,
			IndustryPB:   1.5,
		},
	}
}

func newTestEngine() *Engine {
	return NewEngine(logger.Nop(), testConfig())
}

func testRequest() Request {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100 + 3*math.Sin(float64(i)*0.7) + 0.1*float64(i)
	}

	return Request{
		Symbol:   "CBA",
		Tier:     contracts.TierModerate,
		Industry: "Banks",
		Prices:   technical.PriceSeries{Close: closes},
		Snapshot: fundamental.Snapshot{
			MarketCap:          1000,
			SharePrice:         20,
			SharesOutstanding:  50,
			Revenue:            800,
			GrossProfit:        400,
			OperatingIncome:    200,
			NetIncome:          100,
			TotalAssets:        2000,
			TotalEquity:        500,
			TotalDebt:          100,
			CurrentAssets:      600,
			CurrentLiabilities: 300,
			Inventory:          50,
			DividendsPaid:      40,
		},
		Volatility: contracts.Defined(0.25),
		Beta:       contracts.Defined(1.1),
	}
}

func TestEngine_Run_Completes(t *testing.T) {
	engine := newTestEngine()

	rec := engine.Run(context.Background(), testRequest())
	require.NotNil(t, rec)
	require.Equal(t, contracts.StatusCompleted, rec.Status)
	require.NotNil(t, rec.Analysis)
	require.NotNil(t, rec.CompletedAt)
	assert.NotEmpty(t, rec.ID)
	assert.Empty(t, rec.ErrorMessage)

	a := rec.Analysis
	assert.Equal(t, "CBA", a.Symbol)
	assert.Equal(t, contracts.TierModerate, a.RiskTier)

	for name, score := range map[string]float64{
		"technical":   a.TechnicalScore,
		"fundamental": a.FundamentalScore,
		"risk":        a.RiskScore,
		"overall":     a.OverallScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 100.0, name)
	}

	assert.GreaterOrEqual(t, a.Confidence, 0.0)
	assert.LessOrEqual(t, a.Confidence, 1.0)
	assert.Equal(t, contracts.RecommendationForScore(a.OverallScore), a.Recommendation)
	assert.Contains(t, a.KeyMetrics, "signals")
	assert.Contains(t, a.KeyMetrics, "health")
}

func TestEngine_Run_BlendWeights(t *testing.T) {
	engine := newTestEngine()

	rec := engine.Run(context.Background(), testRequest())
	require.Equal(t, contracts.StatusCompleted, rec.Status)

	a := rec.Analysis
	want := 0.40*a.TechnicalScore + 0.40*a.FundamentalScore + 0.20*a.RiskScore
	assert.InDelta(t, want, a.OverallScore, 0.005)
}

func TestEngine_Run_Deterministic(t *testing.T) {
	engine := newTestEngine()
	req := testRequest()

	first := engine.Run(context.Background(), req)
	second := engine.Run(context.Background(), req)

	require.Equal(t, contracts.StatusCompleted, first.Status)
	require.Equal(t, contracts.StatusCompleted, second.Status)
	assert.Equal(t, first.Analysis, second.Analysis)
}

func TestEngine_Run_FailsOnInsufficientHistory(t *testing.T) {
	engine := newTestEngine()

	req := testRequest()
	req.Prices = technical.PriceSeries{Close: []float64{100, 101, 102}}

	rec := engine.Run(context.Background(), req)
	assert.Equal(t, contracts.StatusFailed, rec.Status)
	assert.Nil(t, rec.Analysis)
	assert.NotEmpty(t, rec.ErrorMessage)
}

func TestEngine_Run_FailsOnBadInput(t *testing.T) {
	engine := newTestEngine()

	noSymbol := testRequest()
	noSymbol.Symbol = ""
	rec := engine.Run(context.Background(), noSymbol)
	assert.Equal(t, contracts.StatusFailed, rec.Status)

	badTier := testRequest()
	badTier.Tier = "reckless"
	rec = engine.Run(context.Background(), badTier)
	assert.Equal(t, contracts.StatusFailed, rec.Status)

	misaligned := testRequest()
	misaligned.Prices.High = []float64{1, 2}
	rec = engine.Run(context.Background(), misaligned)
	assert.Equal(t, contracts.StatusFailed, rec.Status)
}

func TestEngine_Run_CancelledContext(t *testing.T) {
	engine := newTestEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := engine.Run(ctx, testRequest())
	assert.Equal(t, contracts.StatusFailed, rec.Status)
}

func TestEngine_Run_ConfidenceTracksCompleteness(t *testing.T) {
	engine := newTestEngine()

	full := engine.Run(context.Background(), testRequest())
	require.Equal(t, contracts.StatusCompleted, full.Status)

	sparse := testRequest()
	sparse.Snapshot = fundamental.Snapshot{NetIncome: 100, TotalEquity: 500}
	rec := engine.Run(context.Background(), sparse)
	require.Equal(t, contracts.StatusCompleted, rec.Status)

	assert.Less(t, rec.Analysis.Confidence, full.Analysis.Confidence)
}

func TestTechnicalScore_SignalValues(t *testing.T) {
	tests := []struct {
		name    string
		signals map[string]technical.Signal
		want    float64
		ok      bool
	}{
		{"no signals", nil, 0, false},
		{"all bullish", map[string]technical.Signal{
			"rsi": technical.SignalNeutral, "macd": technical.SignalBullish, "moving_averages": technical.SignalBullish,
		}, (50 + 75 + 75) / 3.0, true},
		{"overbought reads bearish", map[string]technical.Signal{
			"rsi": technical.SignalOverbought,
		}, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := technicalScore(tt.signals)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 0.01)
			}
		})
	}
}

func TestRiskProxyScore_Bands(t *testing.T) {
	tests := []struct {
		name       string
		volatility contracts.Value
		beta       contracts.Value
		want       float64
	}{
		{"no data", contracts.Undefined(), contracts.Undefined(), 50},
		{"calm low beta", contracts.Defined(0.1), contracts.Defined(0.5), 85},
		{"moderate", contracts.Defined(0.3), contracts.Defined(1.0), 65},
		{"elevated", contracts.Defined(0.5), contracts.Defined(1.4), 45},
		{"extreme", contracts.Defined(0.9), contracts.Defined(2.0), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := riskProxyScore(tt.volatility, tt.beta)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
