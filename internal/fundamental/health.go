package fundamental

import (
	"math"

	"github.com/mugpunters/vantage/internal/contracts"
)

// HealthScore is the multi-factor financial health rating. Sub-scores
// and the weighted overall are clamped to [0,100].
type HealthScore struct {
	Profitability  float64                  `json:"profitability"`
	Liquidity      float64                  `json:"liquidity"`
	Leverage       float64                  `json:"leverage"`
	Efficiency     float64                  `json:"efficiency"`
	Overall        float64                  `json:"overall"`
	Recommendation contracts.Recommendation `json:"recommendation"`
	Strengths      []string                 `json:"strengths"`
	Weaknesses     []string                 `json:"weaknesses"`
}

// Weights of the four sub-scores in the overall figure.
const (
	profitabilityWeight = 0.3
	liquidityWeight     = 0.2
	leverageWeight      = 0.2
	efficiencyWeight    = 0.3
)

// ScoreHealth rates the metrics against the industry benchmark. Unknown
// industries score against DefaultBenchmark. Sub-scores accumulate
// tiered bonuses; missing inputs simply contribute nothing, so sparse
// data yields a low score rather than an error.
func (a *Analyzer) ScoreHealth(m Metrics, industry string) HealthScore {
	bench := a.benchmarks.Lookup(industry)

	hs := HealthScore{
		Profitability: a.scoreProfitability(m, bench),
		Liquidity:     a.scoreLiquidity(m),
		Leverage:      a.scoreLeverage(m, bench),
		Efficiency:    a.scoreEfficiency(m),
	}
	hs.Overall = round2(hs.Profitability*profitabilityWeight +
		hs.Liquidity*liquidityWeight +
		hs.Leverage*leverageWeight +
		hs.Efficiency*efficiencyWeight)
	hs.Recommendation = contracts.RecommendationForScore(hs.Overall)
	hs.Strengths, hs.Weaknesses = a.findSignals(m, hs)

	a.logger.WithFields(map[string]interface{}{
		"industry":       industry,
		"profitability":  hs.Profitability,
		"liquidity":      hs.Liquidity,
		"leverage":       hs.Leverage,
		"efficiency":     hs.Efficiency,
		"overall":        hs.Overall,
		"recommendation": hs.Recommendation,
	}).Debug("Scored financial health")

	return hs
}

func (a *Analyzer) scoreProfitability(m Metrics, bench Benchmark) float64 {
	score := 0.0

	if roe, ok := m.ROE.Float(); ok {
		roePct := roe * 100
		switch {
		case roePct >= bench.ROE*1.2:
			score += 40
		case roePct >= bench.ROE:
			score += 30
		case roePct >= bench.ROE*0.8:
			score += 20
		}
	}

	if nm, ok := m.NetMargin.Float(); ok {
		switch {
		case nm >= 15:
			score += 30
		case nm >= 10:
			score += 20
		case nm >= 5:
			score += 10
		}
	}

	if om, ok := m.OperatingMargin.Float(); ok {
		switch {
		case om >= 20:
			score += 30
		case om >= 15:
			score += 20
		case om >= 10:
			score += 10
		}
	}

	return clampScore(score)
}

func (a *Analyzer) scoreLiquidity(m Metrics) float64 {
	score := 0.0

	if cr, ok := m.CurrentRatio.Float(); ok {
		switch {
		case cr >= 2.0:
			score += 50
		case cr >= 1.5:
			score += 40
		case cr >= 1.0:
			score += 30
		}
	}

	if qr, ok := m.QuickRatio.Float(); ok {
		switch {
		case qr >= 1.0:
			score += 50
		case qr >= 0.8:
			score += 40
		case qr >= 0.5:
			score += 30
		}
	}

	return clampScore(score)
}

// scoreLeverage starts at 100 and deducts as debt/equity exceeds
// multiples of the benchmark. No debt data keeps the full score.
func (a *Analyzer) scoreLeverage(m Metrics, bench Benchmark) float64 {
	de, ok := m.DebtToEquity.Float()
	if !ok {
		return 100
	}
	switch {
	case de > bench.DebtToEquity*2.0:
		return 20
	case de > bench.DebtToEquity*1.5:
		return 40
	case de > bench.DebtToEquity*1.0:
		return 60
	case de > bench.DebtToEquity*0.5:
		return 80
	}
	return 100
}

func (a *Analyzer) scoreEfficiency(m Metrics) float64 {
	score := 0.0

	if roa, ok := m.ROA.Float(); ok {
		roaPct := roa * 100
		switch {
		case roaPct >= 10:
			score += 50
		case roaPct >= 7:
			score += 40
		case roaPct >= 5:
			score += 30
		}
	}

	if at, ok := m.AssetTurnover.Float(); ok {
		switch {
		case at >= 1.0:
			score += 50
		case at >= 0.8:
			score += 40
		case at >= 0.6:
			score += 30
		}
	}

	return clampScore(score)
}

func (a *Analyzer) findSignals(m Metrics, hs HealthScore) (strengths, weaknesses []string) {
	if hs.Profitability >= 70 {
		strengths = append(strengths, "Strong profitability")
	} else if hs.Profitability < 50 {
		weaknesses = append(weaknesses, "Weak profitability")
	}
	if hs.Liquidity >= 70 {
		strengths = append(strengths, "Healthy liquidity position")
	} else if hs.Liquidity < 50 {
		weaknesses = append(weaknesses, "Tight liquidity")
	}
	if hs.Leverage >= 70 {
		strengths = append(strengths, "Conservative debt levels")
	} else if hs.Leverage < 50 {
		weaknesses = append(weaknesses, "High debt load")
	}
	if hs.Efficiency >= 70 {
		strengths = append(strengths, "Efficient asset utilization")
	} else if hs.Efficiency < 50 {
		weaknesses = append(weaknesses, "Low asset efficiency")
	}
	if dy, ok := m.DividendYield.Float(); ok && dy >= 4 {
		strengths = append(strengths, "Attractive dividend yield")
	}
	if pe, ok := m.PE.Float(); ok && pe > 30 {
		weaknesses = append(weaknesses, "High valuation relative to earnings")
	}
	return strengths, weaknesses
}

func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
