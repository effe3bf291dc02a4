package technical

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mugpunters/vantage/internal/contracts"
)

// Default indicator parameters.
const (
	RSIPeriod = 14

	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9

	BollingerPeriod = 20
	BollingerWidth  = 2.0

	StochasticK = 14
	StochasticD = 3
)

// DefaultSMAWindows are the simple moving average windows computed by
// ComputeIndicators.
var DefaultSMAWindows = []int{5, 10, 20, 50, 200}

// DefaultEMAPeriods are the exponential moving average periods computed
// by ComputeIndicators.
var DefaultEMAPeriods = []int{12, 26, 50}

// MACDSeries holds the three MACD components.
type MACDSeries struct {
	Line      Series `json:"line"`
	Signal    Series `json:"signal"`
	Histogram Series `json:"histogram"`
}

// BollingerSeries holds the three bands. Upper >= Middle >= Lower at
// every defined index.
type BollingerSeries struct {
	Upper  Series `json:"upper"`
	Middle Series `json:"middle"`
	Lower  Series `json:"lower"`
}

// StochasticSeries holds the %K and %D oscillator lines.
type StochasticSeries struct {
	K Series `json:"k"`
	D Series `json:"d"`
}

// IndicatorSet carries every indicator series aligned with the input
// closes. Stochastic is nil when no high/low data was supplied.
type IndicatorSet struct {
	RSI        Series            `json:"rsi"`
	MACD       MACDSeries        `json:"macd"`
	SMA        map[int]Series    `json:"sma"`
	EMA        map[int]Series    `json:"ema"`
	Bollinger  BollingerSeries   `json:"bollinger"`
	Stochastic *StochasticSeries `json:"stochastic,omitempty"`
}

// ewmSpan is the exponentially weighted mean with smoothing span n:
// alpha = 2/(n+1), seeded with the first sample.
func ewmSpan(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RSI computes the relative strength index over the given period. A
// series shorter than period+1 yields all-undefined output; the first
// index has no delta and is always undefined.
func RSI(closes []float64, period int) Series {
	n := len(closes)
	out := undefinedSeries(n)
	if n < period+1 {
		return out
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	avgGain := ewmSpan(gains, period)
	avgLoss := ewmSpan(losses, period)

	for i := 1; i < n; i++ {
		switch {
		case avgLoss[i] == 0 && avgGain[i] == 0:
			// No movement at all: RS is 0/0.
		case avgLoss[i] == 0:
			out[i] = contracts.Defined(100)
		default:
			rs := avgGain[i] / avgLoss[i]
			out[i] = contracts.Defined(100 - 100/(1+rs))
		}
	}
	return out
}

// MACD computes the MACD line, signal line, and histogram. A series
// shorter than the slow period yields all-undefined output.
func MACD(closes []float64, fast, slow, signal int) MACDSeries {
	n := len(closes)
	if n < slow {
		return MACDSeries{
			Line:      undefinedSeries(n),
			Signal:    undefinedSeries(n),
			Histogram: undefinedSeries(n),
		}
	}

	emaFast := ewmSpan(closes, fast)
	emaSlow := ewmSpan(closes, slow)
	line := make([]float64, n)
	for i := range line {
		line[i] = emaFast[i] - emaSlow[i]
	}
	sig := ewmSpan(line, signal)

	out := MACDSeries{
		Line:      make(Series, n),
		Signal:    make(Series, n),
		Histogram: make(Series, n),
	}
	for i := 0; i < n; i++ {
		out.Line[i] = contracts.Defined(line[i])
		out.Signal[i] = contracts.Defined(sig[i])
		out.Histogram[i] = contracts.Defined(line[i] - sig[i])
	}
	return out
}

// SMA computes the simple moving average; defined from index window-1.
func SMA(closes []float64, window int) Series {
	n := len(closes)
	out := undefinedSeries(n)
	if window <= 0 || n < window {
		return out
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += closes[i]
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = contracts.Defined(sum / float64(window))
		}
	}
	return out
}

// EMA computes the exponential moving average with the same smoothing as
// MACD's internal EMA. A series shorter than the period yields
// all-undefined output.
func EMA(closes []float64, period int) Series {
	n := len(closes)
	out := undefinedSeries(n)
	if period <= 0 || n < period {
		return out
	}
	ema := ewmSpan(closes, period)
	for i, v := range ema {
		out[i] = contracts.Defined(v)
	}
	return out
}

// Bollinger computes the bands around SMA(period) using the sample
// standard deviation of each rolling window.
func Bollinger(closes []float64, period int, width float64) BollingerSeries {
	n := len(closes)
	out := BollingerSeries{
		Upper:  undefinedSeries(n),
		Middle: SMA(closes, period),
		Lower:  undefinedSeries(n),
	}
	if period <= 1 || n < period {
		return out
	}

	for i := period - 1; i < n; i++ {
		window := closes[i-period+1 : i+1]
		sd := stat.StdDev(window, nil)
		mid, _ := out.Middle[i].Float()
		out.Upper[i] = contracts.Defined(mid + width*sd)
		out.Lower[i] = contracts.Defined(mid - width*sd)
	}
	return out
}

// Stochastic computes the %K and %D oscillator from aligned high, low,
// and close series. A flat window, where the highest high equals the
// lowest low, leaves %K undefined at that index.
func Stochastic(high, low, closes []float64, kPeriod, dPeriod int) StochasticSeries {
	n := len(closes)
	out := StochasticSeries{K: undefinedSeries(n), D: undefinedSeries(n)}
	if kPeriod <= 0 || dPeriod <= 0 || n < kPeriod || len(high) != n || len(low) != n {
		return out
	}

	for i := kPeriod - 1; i < n; i++ {
		hh := math.Inf(-1)
		ll := math.Inf(1)
		for j := i - kPeriod + 1; j <= i; j++ {
			hh = math.Max(hh, high[j])
			ll = math.Min(ll, low[j])
		}
		if hh == ll {
			continue
		}
		out.K[i] = contracts.Defined(100 * (closes[i] - ll) / (hh - ll))
	}

	for i := dPeriod - 1; i < n; i++ {
		sum := 0.0
		defined := true
		for j := i - dPeriod + 1; j <= i; j++ {
			v, ok := out.K[j].Float()
			if !ok {
				defined = false
				break
			}
			sum += v
		}
		if defined {
			out.D[i] = contracts.Defined(sum / float64(dPeriod))
		}
	}
	return out
}

// ComputeIndicators runs the full indicator suite over the price series.
// Rounding to two decimal places (four for MACD components) is applied
// here, at the output boundary only. High/low series, when supplied,
// must align with the closes.
func ComputeIndicators(prices PriceSeries) (IndicatorSet, error) {
	n := len(prices.Close)
	if (len(prices.High) > 0 && len(prices.High) != n) ||
		(len(prices.Low) > 0 && len(prices.Low) != n) {
		return IndicatorSet{}, &contracts.ValidationError{
			Field:  "price_series",
			Reason: "high/low series must align with close series",
		}
	}

	macd := MACD(prices.Close, MACDFast, MACDSlow, MACDSignal)
	boll := Bollinger(prices.Close, BollingerPeriod, BollingerWidth)

	set := IndicatorSet{
		RSI: RSI(prices.Close, RSIPeriod).Round(2),
		MACD: MACDSeries{
			Line:      macd.Line.Round(4),
			Signal:    macd.Signal.Round(4),
			Histogram: macd.Histogram.Round(4),
		},
		SMA: make(map[int]Series, len(DefaultSMAWindows)),
		EMA: make(map[int]Series, len(DefaultEMAPeriods)),
		Bollinger: BollingerSeries{
			Upper:  boll.Upper.Round(2),
			Middle: boll.Middle.Round(2),
			Lower:  boll.Lower.Round(2),
		},
	}
	for _, w := range DefaultSMAWindows {
		set.SMA[w] = SMA(prices.Close, w).Round(2)
	}
	for _, p := range DefaultEMAPeriods {
		set.EMA[p] = EMA(prices.Close, p).Round(2)
	}

	if prices.HasHighLow() {
		stoch := Stochastic(prices.High, prices.Low, prices.Close, StochasticK, StochasticD)
		set.Stochastic = &StochasticSeries{K: stoch.K.Round(2), D: stoch.D.Round(2)}
	}
	return set, nil
}
