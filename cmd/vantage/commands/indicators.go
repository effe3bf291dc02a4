package commands

import (
	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/internal/technical"
)

// indicatorsCmd computes the technical indicator suite
var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Compute technical indicators for a price series",
	Long: `Computes RSI, MACD, moving averages, Bollinger Bands, and the
stochastic oscillator (when high/low data is present) over a
chronological price series, plus the qualitative signal summary.

Input document:

  {"close": [...], "high": [...], "low": [...]}

Example:
  go run ./cmd/vantage indicators --input prices.json`,
	RunE: runIndicators,
}

func init() {
	rootCmd.AddCommand(indicatorsCmd)
}

func runIndicators(cmd *cobra.Command, args []string) error {
	if _, _, err := setup(); err != nil {
		return err
	}

	var prices technical.PriceSeries
	if err := readInput(&prices); err != nil {
		return err
	}

	set, err := technical.ComputeIndicators(prices)
	if err != nil {
		return err
	}

	return writeOutput(struct {
		Indicators technical.IndicatorSet      `json:"indicators"`
		Signals    map[string]technical.Signal `json:"signals"`
	}{set, technical.Summarize(set)})
}
