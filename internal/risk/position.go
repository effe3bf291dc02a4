package risk

import (
	"math"

	"github.com/mugpunters/vantage/internal/contracts"
)

// Thresholds above which the risk fraction is damped.
const (
	highVolatilityThreshold = 0.5
	highBetaThreshold       = 1.5
	dampingFactor           = 0.8
)

// PositionRequest are the trade parameters for sizing. Volatility is
// annualized; volatility and beta are optional.
type PositionRequest struct {
	Symbol         string             `json:"symbol"`
	EntryPrice     float64            `json:"entry_price"`
	StopLossPrice  float64            `json:"stop_loss_price"`
	PortfolioValue float64            `json:"portfolio_value"`
	Tier           contracts.RiskTier `json:"risk_tier"`
	Volatility     contracts.Value    `json:"volatility"`
	Beta           contracts.Value    `json:"beta"`
}

// PositionSize is a risk-bounded trade size. RecommendedShares never
// exceeds MaxShares, and RiskAmount never exceeds the portfolio's
// per-trade risk budget.
type PositionSize struct {
	Symbol            string  `json:"symbol"`
	RecommendedShares int64   `json:"recommended_shares"`
	MaxShares         int64   `json:"max_shares"`
	RiskPerTrade      float64 `json:"risk_per_trade"`
	PositionValue     float64 `json:"position_value"`
	RiskAmount        float64 `json:"risk_amount"`
	StopLossPrice     float64 `json:"stop_loss_price"`
}

// SizePosition converts entry/stop prices and portfolio value into a
// bounded share count. The per-trade risk fraction is fixed by tier and
// damped when volatility or beta run high; the independent max-position
// cap always wins over the risk-based size.
func (c *Calculator) SizePosition(req PositionRequest) (PositionSize, error) {
	params, ok := c.tiers[req.Tier]
	if !ok {
		return PositionSize{}, &contracts.ValidationError{Field: "risk_tier", Reason: "unknown risk tier"}
	}
	if req.EntryPrice <= 0 {
		return PositionSize{}, &contracts.ValidationError{Field: "entry_price", Reason: "must be positive"}
	}
	if req.StopLossPrice < 0 {
		return PositionSize{}, &contracts.ValidationError{Field: "stop_loss_price", Reason: "must not be negative"}
	}
	if req.PortfolioValue <= 0 {
		return PositionSize{}, &contracts.ValidationError{Field: "portfolio_value", Reason: "must be positive"}
	}
	if req.EntryPrice == req.StopLossPrice {
		return PositionSize{}, &contracts.ValidationError{Field: "stop_loss_price", Reason: "must differ from entry price"}
	}

	riskFraction := params.riskPerTrade
	if vol, ok := req.Volatility.Float(); ok && vol > highVolatilityThreshold {
		riskFraction *= dampingFactor
	}
	if beta, ok := req.Beta.Float(); ok && beta > highBetaThreshold {
		riskFraction *= dampingFactor
	}

	riskBudget := req.PortfolioValue * riskFraction
	riskPerShare := math.Abs(req.EntryPrice - req.StopLossPrice)

	recommended := int64(math.Floor(riskBudget / riskPerShare))
	maxShares := int64(math.Floor(params.maxPosition * req.PortfolioValue / req.EntryPrice))
	if recommended > maxShares {
		recommended = maxShares
	}

	result := PositionSize{
		Symbol:            req.Symbol,
		RecommendedShares: recommended,
		MaxShares:         maxShares,
		RiskPerTrade:      riskFraction,
		PositionValue:     float64(recommended) * req.EntryPrice,
		RiskAmount:        float64(recommended) * riskPerShare,
		StopLossPrice:     req.StopLossPrice,
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol":      req.Symbol,
		"tier":        req.Tier,
		"recommended": result.RecommendedShares,
		"max_shares":  result.MaxShares,
		"risk_amount": result.RiskAmount,
	}).Debug("Sized position")

	return result, nil
}
