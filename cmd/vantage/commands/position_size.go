package commands

import (
	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/internal/risk"
)

// positionSizeCmd sizes a trade against the per-tier risk budget
var positionSizeCmd = &cobra.Command{
	Use:   "position-size",
	Short: "Size a trade against the per-tier risk budget",
	Long: `Converts entry/stop prices and portfolio value into a bounded
share count for the selected risk tier.

Input document:

  {
    "symbol": "BHP",
    "entry_price": 100,
    "stop_loss_price": 95,
    "portfolio_value": 100000,
    "risk_tier": "moderate",
    "volatility": 0.3,
    "beta": 1.1
  }

Example:
  go run ./cmd/vantage position-size --input trade.json`,
	RunE: runPositionSize,
}

func init() {
	rootCmd.AddCommand(positionSizeCmd)
}

func runPositionSize(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	var req risk.PositionRequest
	if err := readInput(&req); err != nil {
		return err
	}

	calc := risk.NewCalculator(log, cfg.Risk)
	result, err := calc.SizePosition(req)
	if err != nil {
		return err
	}
	return writeOutput(result)
}
