package analysis

import (
	"math"

	"github.com/mugpunters/vantage/internal/contracts"
	"github.com/mugpunters/vantage/internal/fundamental"
	"github.com/mugpunters/vantage/internal/technical"
)

// Numeric reading per qualitative signal, on the 0-100 scale. Oversold
// reads bullish and overbought bearish, contrarian on the extremes.
var signalValues = map[technical.Signal]float64{
	technical.SignalBullish:    75,
	technical.SignalBearish:    25,
	technical.SignalOverbought: 30,
	technical.SignalOversold:   70,
	technical.SignalNeutral:    50,
}

// summaryKeyCount is how many signal keys a full summary carries.
const summaryKeyCount = 3

// technicalScore averages the numeric readings of the present signals.
// The second return is false when no signals are present.
func technicalScore(signals map[string]technical.Signal) (float64, bool) {
	if len(signals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, sig := range signals {
		sum += signalValues[sig]
	}
	return round2(sum / float64(len(signals))), true
}

// Volatility and beta band boundaries for the single-name risk proxy.
const riskProxyBase = 50.0

// riskProxyScore rates single-name risk from volatility and beta bands.
// Higher means lower risk. Missing inputs leave the base untouched.
func riskProxyScore(volatility, beta contracts.Value) float64 {
	score := riskProxyBase

	if vol, ok := volatility.Float(); ok {
		switch {
		case vol < 0.2:
			score += 20
		case vol < 0.4:
			score += 10
		case vol < 0.6:
			// Elevated but tolerable.
		default:
			score -= 15
		}
	}

	if b, ok := beta.Float(); ok {
		switch {
		case b < 0.8:
			score += 15
		case b <= 1.2:
			score += 5
		case b <= 1.5:
			score -= 5
		default:
			score -= 15
		}
	}

	return math.Max(0, math.Min(100, score))
}

// confidence measures data completeness in [0,1]: the defined fraction
// of fundamental ratios averaged with the present fraction of signal
// keys. It reflects input coverage, never score magnitude.
func confidence(m fundamental.Metrics, signals map[string]technical.Signal) float64 {
	signalFraction := float64(len(signals)) / float64(summaryKeyCount)
	if signalFraction > 1 {
		signalFraction = 1
	}
	return round2((m.DefinedFraction() + signalFraction) / 2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
