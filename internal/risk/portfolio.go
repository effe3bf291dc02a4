package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mugpunters/vantage/internal/contracts"
)

// Holding is one portfolio position. Sector and beta are optional;
// a holding without a beta contributes the market beta of 1.0.
type Holding struct {
	Symbol string          `json:"symbol"`
	Value  float64         `json:"value"`
	Weight float64         `json:"weight"`
	Sector string          `json:"sector,omitempty"`
	Beta   contracts.Value `json:"beta"`
}

// PortfolioAssessment is the aggregate risk view of a holdings list.
// ConcentrationRisk and CorrelationRisk are normalized to [0,1];
// RiskScore to [0,100].
type PortfolioAssessment struct {
	TotalValue        float64  `json:"total_value"`
	RiskScore         float64  `json:"risk_score"`
	MaxDrawdown       float64  `json:"max_drawdown"`
	SharpeRatio       float64  `json:"sharpe_ratio"`
	Beta              float64  `json:"beta"`
	CorrelationRisk   float64  `json:"correlation_risk"`
	ConcentrationRisk float64  `json:"concentration_risk"`
	Recommendations   []string `json:"recommendations"`
}

// Blend weights of the risk-score components.
const (
	betaScoreWeight          = 0.40
	concentrationScoreWeight = 0.35
	correlationScoreWeight   = 0.25
)

// Per-tier baselines for the drawdown and Sharpe estimates, scaled by
// how concentrated the portfolio is.
var tierBaselines = map[contracts.RiskTier]struct {
	maxDrawdown float64
	sharpe      float64
}{
	contracts.TierConservative: {0.10, 1.2},
	contracts.TierModerate:     {0.18, 1.0},
	contracts.TierAggressive:   {0.30, 0.8},
}

// Tier-specific beta ceilings that trigger a recommendation.
var tierBetaCeilings = map[contracts.RiskTier]float64{
	contracts.TierConservative: 1.1,
	contracts.TierModerate:     1.3,
	contracts.TierAggressive:   1.6,
}

// AssessPortfolio computes the aggregate risk metrics for a holdings
// list. Weights need not sum to 1; concentration uses the actual weight
// distribution via a normalized Herfindahl index.
func (c *Calculator) AssessPortfolio(holdings []Holding, portfolioValue float64, tier contracts.RiskTier) (PortfolioAssessment, error) {
	if _, ok := c.tiers[tier]; !ok {
		return PortfolioAssessment{}, &contracts.ValidationError{Field: "risk_tier", Reason: "unknown risk tier"}
	}
	if len(holdings) == 0 {
		return PortfolioAssessment{}, &contracts.ValidationError{Field: "holdings", Reason: "must not be empty"}
	}
	if portfolioValue <= 0 {
		return PortfolioAssessment{}, &contracts.ValidationError{Field: "portfolio_value", Reason: "must be positive"}
	}
	for i, h := range holdings {
		if h.Symbol == "" {
			return PortfolioAssessment{}, &contracts.ValidationError{
				Field: fmt.Sprintf("holdings[%d].symbol", i), Reason: "must not be empty"}
		}
		if h.Value <= 0 {
			return PortfolioAssessment{}, &contracts.ValidationError{
				Field: fmt.Sprintf("holdings[%d].value", i), Reason: "must be positive"}
		}
		if h.Weight <= 0 {
			return PortfolioAssessment{}, &contracts.ValidationError{
				Field: fmt.Sprintf("holdings[%d].weight", i), Reason: "must be positive"}
		}
	}

	concentration := concentrationRisk(holdings)
	correlation := correlationRisk(holdings)
	beta := portfolioBeta(holdings)

	betaScore := clamp01(beta / 2.0)
	riskScore := round2(100 * (betaScoreWeight*betaScore +
		concentrationScoreWeight*concentration +
		correlationScoreWeight*correlation))

	base := tierBaselines[tier]
	assessment := PortfolioAssessment{
		TotalValue:        totalValue(holdings),
		RiskScore:         riskScore,
		MaxDrawdown:       round2(base.maxDrawdown * (1 + 0.5*concentration)),
		SharpeRatio:       round2(base.sharpe * (1 - 0.3*concentration)),
		Beta:              round2(beta),
		CorrelationRisk:   round2(correlation),
		ConcentrationRisk: round2(concentration),
		Recommendations:   buildRecommendations(tier, beta, concentration, correlation),
	}

	c.logger.WithFields(map[string]interface{}{
		"tier":          tier,
		"holdings":      len(holdings),
		"risk_score":    assessment.RiskScore,
		"beta":          assessment.Beta,
		"concentration": assessment.ConcentrationRisk,
	}).Debug("Assessed portfolio risk")

	return assessment, nil
}

// concentrationRisk is the Herfindahl index of the weight distribution,
// normalized so an equal-weight portfolio scores 0 and a single-holding
// portfolio scores 1.
func concentrationRisk(holdings []Holding) float64 {
	n := len(holdings)
	if n == 1 {
		return 1.0
	}

	total := 0.0
	for _, h := range holdings {
		total += h.Weight
	}

	herfindahl := 0.0
	for _, h := range holdings {
		w := h.Weight / total
		herfindahl += w * w
	}

	floor := 1.0 / float64(n)
	return clamp01((herfindahl - floor) / (1 - floor))
}

// correlationRisk approximates co-movement from sector clustering: the
// Herfindahl of sector value shares when sectors are known, otherwise a
// symbol-count heuristic.
func correlationRisk(holdings []Holding) float64 {
	total := totalValue(holdings)

	sectorValues := make(map[string]float64)
	tagged := false
	for _, h := range holdings {
		if h.Sector != "" {
			tagged = true
			sectorValues[h.Sector] += h.Value
		} else {
			sectorValues["unclassified:"+h.Symbol] += h.Value
		}
	}
	if !tagged {
		return clamp01(1 / math.Sqrt(float64(len(holdings))))
	}

	risk := 0.0
	for _, v := range sectorValues {
		share := v / total
		risk += share * share
	}
	return clamp01(risk)
}

func portfolioBeta(holdings []Holding) float64 {
	values := make([]float64, len(holdings))
	betas := make([]float64, len(holdings))
	for i, h := range holdings {
		values[i] = h.Value
		betas[i] = h.Beta.Or(1.0)
	}
	return stat.Mean(betas, values)
}

func totalValue(holdings []Holding) float64 {
	total := 0.0
	for _, h := range holdings {
		total += h.Value
	}
	return total
}

func buildRecommendations(tier contracts.RiskTier, beta, concentration, correlation float64) []string {
	var recs []string
	if concentration > 0.4 {
		recs = append(recs, "Consider diversifying across more holdings to reduce concentration risk")
	}
	if beta > tierBetaCeilings[tier] {
		recs = append(recs, fmt.Sprintf("Portfolio beta %.2f is high for a %s risk profile; consider lower-beta holdings", beta, tier))
	}
	if correlation > 0.6 {
		recs = append(recs, "Holdings are clustered in related sectors; add uncorrelated exposure")
	}
	if len(recs) == 0 {
		recs = append(recs, "Portfolio risk is within acceptable bounds for the selected risk tier")
	}
	return recs
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
