package fundamental

import "github.com/mugpunters/vantage/internal/contracts"

// Metrics holds the ratios derived from a Snapshot. Every field is a
// tagged value: a ratio whose denominator is not positive is undefined,
// never zero or infinity.
type Metrics struct {
	PE           contracts.Value `json:"pe_ratio"`
	PB           contracts.Value `json:"pb_ratio"`
	DebtToEquity contracts.Value `json:"debt_to_equity"`
	ROE          contracts.Value `json:"roe"`
	ROA          contracts.Value `json:"roa"`
	CurrentRatio contracts.Value `json:"current_ratio"`
	QuickRatio   contracts.Value `json:"quick_ratio"`

	// Margins are percentages.
	GrossMargin     contracts.Value `json:"gross_margin"`
	OperatingMargin contracts.Value `json:"operating_margin"`
	NetMargin       contracts.Value `json:"net_margin"`

	RevenueGrowth  contracts.Value `json:"revenue_growth"`
	EarningsGrowth contracts.Value `json:"earnings_growth"`

	DividendYield contracts.Value `json:"dividend_yield"`
	PayoutRatio   contracts.Value `json:"payout_ratio"`

	AssetTurnover contracts.Value `json:"asset_turnover"`
}

// DefinedFraction reports how many of the core ratios carry a value, as
// a fraction in [0,1]. Asset turnover is excluded: it is an optional
// external input and would otherwise permanently depress confidence.
func (m Metrics) DefinedFraction() float64 {
	fields := []contracts.Value{
		m.PE, m.PB, m.DebtToEquity, m.ROE, m.ROA,
		m.CurrentRatio, m.QuickRatio,
		m.GrossMargin, m.OperatingMargin, m.NetMargin,
		m.RevenueGrowth, m.EarningsGrowth,
		m.DividendYield, m.PayoutRatio,
	}
	defined := 0
	for _, f := range fields {
		if f.IsDefined() {
			defined++
		}
	}
	return float64(defined) / float64(len(fields))
}

// ratio returns num/den when den > 0, otherwise undefined.
func ratio(num, den float64) contracts.Value {
	if den <= 0 {
		return contracts.Undefined()
	}
	return contracts.Defined(num / den)
}

// ComputeMetrics derives the ratio set from a snapshot. PE and payout
// ratio additionally require positive earnings: a negative-earnings PE
// is undefined, not negative.
func (a *Analyzer) ComputeMetrics(snap Snapshot) Metrics {
	m := Metrics{
		PB:           ratio(snap.MarketCap, snap.TotalEquity),
		DebtToEquity: ratio(snap.TotalDebt, snap.TotalEquity),
		ROE:          ratio(snap.NetIncome, snap.TotalEquity),
		ROA:          ratio(snap.NetIncome, snap.TotalAssets),
		CurrentRatio: ratio(snap.CurrentAssets, snap.CurrentLiabilities),
		QuickRatio:   ratio(snap.CurrentAssets-snap.Inventory, snap.CurrentLiabilities),

		RevenueGrowth:  snap.RevenueGrowth,
		EarningsGrowth: snap.EarningsGrowth,
		AssetTurnover:  snap.AssetTurnover,
	}

	if snap.NetIncome > 0 {
		m.PE = ratio(snap.SharePrice*snap.SharesOutstanding, snap.NetIncome)
		m.PayoutRatio = ratio(snap.DividendsPaid, snap.NetIncome)
	}

	if snap.Revenue > 0 {
		m.GrossMargin = contracts.Defined(snap.GrossProfit / snap.Revenue * 100)
		m.OperatingMargin = contracts.Defined(snap.OperatingIncome / snap.Revenue * 100)
		m.NetMargin = contracts.Defined(snap.NetIncome / snap.Revenue * 100)
	}

	if snap.MarketCap > 0 {
		m.DividendYield = contracts.Defined(snap.DividendsPaid / snap.MarketCap * 100)
	}

	a.logger.WithFields(map[string]interface{}{
		"pe":  m.PE.Or(0),
		"pb":  m.PB.Or(0),
		"roe": m.ROE.Or(0),
	}).Debug("Computed financial metrics")

	return m
}
