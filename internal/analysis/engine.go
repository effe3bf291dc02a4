package analysis

import (
	"context"
	"fmt"

	"github.com/mugpunters/vantage/internal/contracts"
	"github.com/mugpunters/vantage/internal/fundamental"
	"github.com/mugpunters/vantage/internal/technical"
	"github.com/mugpunters/vantage/pkg/config"
	"github.com/mugpunters/vantage/pkg/logger"
)

// Engine runs the full analysis pipeline: indicators, fundamentals, risk
// proxy, then the weighted blend. Stateless and safe for concurrent use;
// each call gets its own record.
type Engine struct {
	logger      *logger.Logger
	fundamental *fundamental.Analyzer
	weights     config.AnalysisConfig
}

// NewEngine wires the engine from configuration.
func NewEngine(log *logger.Logger, cfg *config.Config) *Engine {
	return &Engine{
		logger: log,
		fundamental: fundamental.NewAnalyzer(log, fundamental.BuiltinBenchmarks(),
			cfg.Valuation.IndustryPE, cfg.Valuation.IndustryPB),
		weights: cfg.Analysis,
	}
}

// Run executes one analysis request through the PENDING, IN_PROGRESS,
// COMPLETED or FAILED lifecycle. Any component failure marks the record
// FAILED with the underlying error preserved; there is no partial
// COMPLETED state. The returned record is always non-nil.
func (e *Engine) Run(ctx context.Context, req Request) *Record {
	rec := newRecord(req.Symbol)
	rec.Status = contracts.StatusInProgress

	log := e.logger.WithFields(map[string]interface{}{
		"analysis_id": rec.ID,
		"symbol":      req.Symbol,
	})
	log.Info("Starting analysis")

	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("Analysis cancelled")
		return rec.fail(err)
	}
	if req.Symbol == "" {
		return rec.fail(&contracts.ValidationError{Field: "symbol", Reason: "must not be empty"})
	}
	if !req.Tier.Valid() {
		return rec.fail(&contracts.ValidationError{Field: "risk_tier", Reason: fmt.Sprintf("unknown risk tier %q", req.Tier)})
	}

	indicators, err := technical.ComputeIndicators(req.Prices)
	if err != nil {
		log.WithError(err).Error("Indicator computation failed")
		return rec.fail(fmt.Errorf("compute indicators: %w", err))
	}
	signals := technical.Summarize(indicators)

	techScore, ok := technicalScore(signals)
	if !ok {
		err := &contracts.ComputationError{Op: "technical_score", Reason: "insufficient price history for any signal"}
		log.WithError(err).Error("Technical scoring failed")
		return rec.fail(err)
	}

	metrics := e.fundamental.ComputeMetrics(req.Snapshot)
	health := e.fundamental.ScoreHealth(metrics, req.Industry)
	riskScore := riskProxyScore(req.Volatility, req.Beta)

	overall := round2(e.weights.TechnicalWeight*techScore +
		e.weights.FundamentalWeight*health.Overall +
		e.weights.RiskWeight*riskScore)

	analysis := &contracts.CompositeAnalysis{
		Symbol:           req.Symbol,
		RiskTier:         req.Tier,
		TechnicalScore:   techScore,
		FundamentalScore: health.Overall,
		RiskScore:        riskScore,
		OverallScore:     overall,
		Recommendation:   contracts.RecommendationForScore(overall),
		Confidence:       confidence(metrics, signals),
		KeyMetrics:       keyMetrics(metrics, health, signals),
	}

	log.WithFields(map[string]interface{}{
		"overall":        analysis.OverallScore,
		"recommendation": analysis.Recommendation,
		"confidence":     analysis.Confidence,
	}).Info("Analysis completed")

	return rec.complete(analysis)
}

// keyMetrics assembles the summary block persisted alongside the scores.
func keyMetrics(m fundamental.Metrics, health fundamental.HealthScore, signals map[string]technical.Signal) map[string]any {
	return map[string]any{
		"pe_ratio":       m.PE,
		"pb_ratio":       m.PB,
		"roe":            m.ROE,
		"debt_to_equity": m.DebtToEquity,
		"dividend_yield": m.DividendYield,
		"health":         health,
		"signals":        signals,
	}
}
