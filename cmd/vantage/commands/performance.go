package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/internal/performance"
)

// performanceCmd grades past recommendations against realized prices
var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Grade past recommendations against realized prices",
	Long: `Grades each past report against its current price and aggregates
the results: accuracy, letter grades, hit rates per recommendation,
and the return distribution.

Input document:

  {
    "as_of": "2026-08-31T00:00:00Z",
    "reports": [
      {
        "report": {
          "symbol": "CBA",
          "recommendation": "buy",
          "price_at_analysis": 100,
          "predicted_return_pct": 8,
          "analysis_date": "2026-05-01T00:00:00Z"
        },
        "current_price": 107.5
      }
    ]
  }

as_of defaults to now.

Example:
  go run ./cmd/vantage performance --input reports.json`,
	RunE: runPerformance,
}

func init() {
	rootCmd.AddCommand(performanceCmd)
}

func runPerformance(cmd *cobra.Command, args []string) error {
	if _, _, err := setup(); err != nil {
		return err
	}

	var in struct {
		AsOf    time.Time `json:"as_of"`
		Reports []struct {
			Report       performance.ReportSnapshot `json:"report"`
			CurrentPrice float64                    `json:"current_price"`
		} `json:"reports"`
	}
	if err := readInput(&in); err != nil {
		return err
	}
	if in.AsOf.IsZero() {
		in.AsOf = time.Now()
	}

	perfs := make([]performance.Performance, 0, len(in.Reports))
	for _, r := range in.Reports {
		p, err := performance.Evaluate(r.Report, r.CurrentPrice, in.AsOf)
		if err != nil {
			return err
		}
		perfs = append(perfs, p)
	}

	return writeOutput(struct {
		Performances []performance.Performance `json:"performances"`
		Summary      performance.Summary       `json:"summary"`
	}{perfs, performance.Summarize(perfs)})
}
