package technical

// Signal is a qualitative reading derived from the latest defined value
// of an indicator.
type Signal string

const (
	SignalOverbought Signal = "Overbought"
	SignalOversold   Signal = "Oversold"
	SignalNeutral    Signal = "Neutral"
	SignalBullish    Signal = "Bullish"
	SignalBearish    Signal = "Bearish"
)

// Signal summary keys.
const (
	KeyRSI            = "rsi"
	KeyMACD           = "macd"
	KeyMovingAverages = "moving_averages"
)

// Summarize reads the latest defined value of each indicator into a
// qualitative signal. An indicator with no defined value is omitted
// from the map rather than defaulted.
func Summarize(set IndicatorSet) map[string]Signal {
	signals := make(map[string]Signal)

	if rsi, ok := set.RSI.Latest(); ok {
		switch {
		case rsi > 70:
			signals[KeyRSI] = SignalOverbought
		case rsi < 30:
			signals[KeyRSI] = SignalOversold
		default:
			signals[KeyRSI] = SignalNeutral
		}
	}

	if line, ok := set.MACD.Line.Latest(); ok {
		if sig, ok := set.MACD.Signal.Latest(); ok {
			if line > sig {
				signals[KeyMACD] = SignalBullish
			} else {
				signals[KeyMACD] = SignalBearish
			}
		}
	}

	if sma20, ok := set.SMA[20].Latest(); ok {
		if sma50, ok := set.SMA[50].Latest(); ok {
			if sma20 > sma50 {
				signals[KeyMovingAverages] = SignalBullish
			} else {
				signals[KeyMovingAverages] = SignalBearish
			}
		}
	}

	return signals
}
