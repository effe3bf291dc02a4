package fundamental

import (
	"math"

	"github.com/mugpunters/vantage/internal/contracts"
)

// Valuation is the per-share intrinsic-value estimate. IntrinsicValue is
// the DCF figure; FairValueLow/High span the three methods with a 20%
// margin either side.
type Valuation struct {
	DCFValue       float64 `json:"dcf_value"`
	PEValuation    float64 `json:"pe_valuation"`
	PBValuation    float64 `json:"pb_valuation"`
	IntrinsicValue float64 `json:"intrinsic_value"`
	FairValueLow   float64 `json:"fair_value_low"`
	FairValueHigh  float64 `json:"fair_value_high"`
}

const dcfYears = 5

// EstimateIntrinsicValue projects net income forward five years at
// growthRate, discounts at discountRate, and adds a Gordon-growth
// terminal value on year-5 earnings. It fails closed: a discount rate at
// or below the growth rate makes the terminal value undefined and
// returns a ComputationError instead of a wrong number.
func (a *Analyzer) EstimateIntrinsicValue(snap Snapshot, growthRate, discountRate float64) (Valuation, error) {
	if discountRate <= growthRate {
		return Valuation{}, &contracts.ComputationError{
			Op:     "intrinsic_value",
			Reason: "discount rate must exceed growth rate for the terminal value",
		}
	}
	if snap.SharesOutstanding <= 0 {
		return Valuation{}, &contracts.ComputationError{
			Op:     "intrinsic_value",
			Reason: "shares outstanding must be positive",
		}
	}

	total := 0.0
	for year := 1; year <= dcfYears; year++ {
		projected := snap.NetIncome * math.Pow(1+growthRate, float64(year))
		total += projected / math.Pow(1+discountRate, float64(year))
	}

	finalEarnings := snap.NetIncome * math.Pow(1+growthRate, dcfYears)
	terminal := finalEarnings / (discountRate - growthRate)
	total += terminal / math.Pow(1+discountRate, dcfYears)

	v := Valuation{
		DCFValue:    round2(total / snap.SharesOutstanding),
		PEValuation: round2(snap.NetIncome * a.peMultiple / snap.SharesOutstanding),
		PBValuation: round2(snap.TotalEquity * a.pbMultiple / snap.SharesOutstanding),
	}
	v.IntrinsicValue = v.DCFValue

	lo := math.Min(v.DCFValue, math.Min(v.PEValuation, v.PBValuation))
	hi := math.Max(v.DCFValue, math.Max(v.PEValuation, v.PBValuation))
	v.FairValueLow = round2(lo * 0.8)
	v.FairValueHigh = round2(hi * 1.2)

	a.logger.WithFields(map[string]interface{}{
		"dcf":       v.DCFValue,
		"pe_value":  v.PEValuation,
		"pb_value":  v.PBValuation,
		"fair_low":  v.FairValueLow,
		"fair_high": v.FairValueHigh,
	}).Debug("Estimated intrinsic value")

	return v, nil
}
