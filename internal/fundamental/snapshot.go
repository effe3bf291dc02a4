package fundamental

import "github.com/mugpunters/vantage/internal/contracts"

// Snapshot is a point-in-time view of a company's financial statements.
// Absent fields are left at zero; ratio derivation treats a non-positive
// denominator as "ratio undefined" rather than an input error.
type Snapshot struct {
	MarketCap         float64 `json:"market_cap"`
	SharePrice        float64 `json:"share_price"`
	SharesOutstanding float64 `json:"shares_outstanding"`

	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingIncome float64 `json:"operating_income"`
	NetIncome       float64 `json:"net_income"`

	TotalAssets        float64 `json:"total_assets"`
	TotalEquity        float64 `json:"total_equity"`
	TotalDebt          float64 `json:"total_debt"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	Inventory          float64 `json:"inventory"`
	DividendsPaid      float64 `json:"dividends_paid"`

	// Supplied by the caller when known; never derived here.
	RevenueGrowth  contracts.Value `json:"revenue_growth"`
	EarningsGrowth contracts.Value `json:"earnings_growth"`
	AssetTurnover  contracts.Value `json:"asset_turnover"`
}
