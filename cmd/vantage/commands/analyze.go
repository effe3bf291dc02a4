package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/internal/analysis"
)

// analyzeCmd runs the full analysis pipeline for one symbol
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline for one symbol",
	Long: `Runs technical, fundamental, and risk analysis over the supplied
inputs and prints the composite record.

The input document carries the symbol, risk tier, price series, and
financial snapshot:

  {
    "symbol": "CBA",
    "risk_tier": "moderate",
    "industry": "Banks",
    "prices": {"close": [...]},
    "snapshot": {"net_income": ..., ...}
  }

Example:
  go run ./cmd/vantage analyze --input request.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	var req analysis.Request
	if err := readInput(&req); err != nil {
		return err
	}

	engine := analysis.NewEngine(log, cfg)
	record := engine.Run(context.Background(), req)
	return writeOutput(record)
}
