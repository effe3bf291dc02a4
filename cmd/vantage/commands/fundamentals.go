package commands

import (
	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/internal/fundamental"
)

// fundamentalsCmd derives ratios, health score, and intrinsic value
var fundamentalsCmd = &cobra.Command{
	Use:   "fundamentals",
	Short: "Score financial health and estimate intrinsic value",
	Long: `Derives the financial ratio set from a statement snapshot, scores
financial health against the industry benchmark, and estimates the
intrinsic value per share.

Input document:

  {
    "industry": "Technology",
    "growth_rate": 0.05,
    "discount_rate": 0.10,
    "snapshot": {"net_income": ..., ...}
  }

growth_rate and discount_rate fall back to the configured defaults
when omitted.

Example:
  go run ./cmd/vantage fundamentals --input snapshot.json`,
	RunE: runFundamentals,
}

func init() {
	rootCmd.AddCommand(fundamentalsCmd)
}

func runFundamentals(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	var in struct {
		Industry     string               `json:"industry"`
		GrowthRate   float64              `json:"growth_rate"`
		DiscountRate float64              `json:"discount_rate"`
		Snapshot     fundamental.Snapshot `json:"snapshot"`
	}
	if err := readInput(&in); err != nil {
		return err
	}
	if in.GrowthRate == 0 {
		in.GrowthRate = cfg.Valuation.GrowthRate
	}
	if in.DiscountRate == 0 {
		in.DiscountRate = cfg.Valuation.DiscountRate
	}

	analyzer := fundamental.NewAnalyzer(log, fundamental.BuiltinBenchmarks(),
		cfg.Valuation.IndustryPE, cfg.Valuation.IndustryPB)

	metrics := analyzer.ComputeMetrics(in.Snapshot)
	health := analyzer.ScoreHealth(metrics, in.Industry)
	valuation, err := analyzer.EstimateIntrinsicValue(in.Snapshot, in.GrowthRate, in.DiscountRate)
	if err != nil {
		return err
	}

	return writeOutput(struct {
		Metrics   fundamental.Metrics     `json:"metrics"`
		Health    fundamental.HealthScore `json:"health"`
		Valuation fundamental.Valuation   `json:"valuation"`
	}{metrics, health, valuation})
}
