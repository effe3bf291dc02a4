package contracts

// CompositeAnalysis is the blended output of a full analysis run. It is
// constructed once by the orchestrator and never mutated; re-evaluating a
// symbol produces a fresh value.
type CompositeAnalysis struct {
	Symbol           string         `json:"symbol"`
	RiskTier         RiskTier       `json:"risk_tier"`
	TechnicalScore   float64        `json:"technical_score"`
	FundamentalScore float64        `json:"fundamental_score"`
	RiskScore        float64        `json:"risk_score"`
	OverallScore     float64        `json:"overall_score"`
	Recommendation   Recommendation `json:"recommendation"`
	Confidence       float64        `json:"confidence"`
	KeyMetrics       map[string]any `json:"key_metrics,omitempty"`
}
