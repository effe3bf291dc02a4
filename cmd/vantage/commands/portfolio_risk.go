package commands

import (
	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/internal/contracts"
	"github.com/mugpunters/vantage/internal/risk"
)

// portfolioRiskCmd assesses aggregate portfolio risk
var portfolioRiskCmd = &cobra.Command{
	Use:   "portfolio-risk",
	Short: "Assess aggregate risk for a holdings list",
	Long: `Computes the portfolio risk score, concentration and correlation
risk, value-weighted beta, and templated recommendations.

Input document:

  {
    "portfolio_value": 250000,
    "risk_tier": "moderate",
    "holdings": [
      {"symbol": "CBA", "value": 50000, "weight": 0.2, "sector": "Banks"}
    ]
  }

Example:
  go run ./cmd/vantage portfolio-risk --input holdings.json`,
	RunE: runPortfolioRisk,
}

func init() {
	rootCmd.AddCommand(portfolioRiskCmd)
}

func runPortfolioRisk(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	var in struct {
		PortfolioValue float64            `json:"portfolio_value"`
		Tier           contracts.RiskTier `json:"risk_tier"`
		Holdings       []risk.Holding     `json:"holdings"`
	}
	if err := readInput(&in); err != nil {
		return err
	}

	calc := risk.NewCalculator(log, cfg.Risk)
	assessment, err := calc.AssessPortfolio(in.Holdings, in.PortfolioValue, in.Tier)
	if err != nil {
		return err
	}
	return writeOutput(assessment)
}
