// Package risk sizes trades against a per-tier risk budget and assesses
// portfolio-level risk. All computations are pure and deterministic.
package risk

import (
	"github.com/mugpunters/vantage/internal/contracts"
	"github.com/mugpunters/vantage/pkg/config"
	"github.com/mugpunters/vantage/pkg/logger"
)

// tierParams holds the per-tier risk budget: the fraction of portfolio
// value risked per trade and the maximum fraction held in one position.
type tierParams struct {
	riskPerTrade float64
	maxPosition  float64
}

// Calculator sizes positions and assesses portfolios. Tier tables come
// from configuration; it carries no mutable state and is safe for
// concurrent use.
type Calculator struct {
	logger *logger.Logger
	tiers  map[contracts.RiskTier]tierParams
}

// NewCalculator builds a calculator from the configured tier tables.
func NewCalculator(log *logger.Logger, cfg config.RiskConfig) *Calculator {
	return &Calculator{
		logger: log,
		tiers: map[contracts.RiskTier]tierParams{
			contracts.TierConservative: {cfg.ConservativeRiskPerTrade, cfg.ConservativeMaxPosition},
			contracts.TierModerate:     {cfg.ModerateRiskPerTrade, cfg.ModerateMaxPosition},
			contracts.TierAggressive:   {cfg.AggressiveRiskPerTrade, cfg.AggressiveMaxPosition},
		},
	}
}

// RiskPerTrade returns the configured risk fraction for a tier.
func (c *Calculator) RiskPerTrade(tier contracts.RiskTier) (float64, bool) {
	p, ok := c.tiers[tier]
	return p.riskPerTrade, ok
}
