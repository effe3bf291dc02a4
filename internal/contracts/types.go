package contracts

import "fmt"

// RiskTier controls the per-trade risk fraction and risk-scoring
// sensitivity.
type RiskTier string

const (
	TierConservative RiskTier = "conservative"
	TierModerate     RiskTier = "moderate"
	TierAggressive   RiskTier = "aggressive"
)

// ParseRiskTier converts a string into a RiskTier.
func ParseRiskTier(s string) (RiskTier, error) {
	switch RiskTier(s) {
	case TierConservative, TierModerate, TierAggressive:
		return RiskTier(s), nil
	default:
		return "", &ValidationError{Field: "risk_tier", Reason: fmt.Sprintf("unknown risk tier %q", s)}
	}
}

// Valid reports whether the tier is one of the three known tiers.
func (t RiskTier) Valid() bool {
	switch t {
	case TierConservative, TierModerate, TierAggressive:
		return true
	}
	return false
}

// Recommendation is the five-level investment recommendation.
type Recommendation string

const (
	StrongBuy Recommendation = "strong_buy"
	Buy       Recommendation = "buy"
	Hold      Recommendation = "hold"
	WeakHold  Recommendation = "weak_hold"
	Sell      Recommendation = "sell"
)

// RecommendationForScore maps a 0-100 score onto the recommendation
// ladder. The same thresholds apply to the fundamental health score and
// the orchestrated overall score.
func RecommendationForScore(score float64) Recommendation {
	switch {
	case score >= 80:
		return StrongBuy
	case score >= 70:
		return Buy
	case score >= 60:
		return Hold
	case score >= 40:
		return WeakHold
	default:
		return Sell
	}
}

// AnalysisStatus is the lifecycle state of an analysis request.
// COMPLETED and FAILED are terminal.
type AnalysisStatus string

const (
	StatusPending    AnalysisStatus = "pending"
	StatusInProgress AnalysisStatus = "in_progress"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Terminal reports whether the status admits no further transitions.
func (s AnalysisStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
