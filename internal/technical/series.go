// Package technical computes indicator series and qualitative signal
// summaries from chronological price data. All functions are pure;
// positions lacking sufficient history carry an explicit undefined
// marker, never a numeric placeholder.
package technical

import "github.com/mugpunters/vantage/internal/contracts"

// PriceSeries is a chronological sequence of samples, oldest first.
// Close is required; the other slices are optional but must align 1:1
// with Close when supplied.
type PriceSeries struct {
	Open   []float64 `json:"open,omitempty"`
	High   []float64 `json:"high,omitempty"`
	Low    []float64 `json:"low,omitempty"`
	Close  []float64 `json:"close"`
	Volume []float64 `json:"volume,omitempty"`
}

// HasHighLow reports whether high and low series are present and aligned
// with the close series.
func (p PriceSeries) HasHighLow() bool {
	n := len(p.Close)
	return n > 0 && len(p.High) == n && len(p.Low) == n
}

// Series is an indicator output aligned with the input closes.
type Series []contracts.Value

// Latest returns the last defined value, scanning from the end.
func (s Series) Latest() (float64, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i].Float(); ok {
			return v, true
		}
	}
	return 0, false
}

// Round returns a copy with every defined value rounded to the given
// number of decimal places.
func (s Series) Round(places int) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v.Round(places)
	}
	return out
}

func undefinedSeries(n int) Series {
	return make(Series, n)
}
