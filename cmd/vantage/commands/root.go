package commands

import (
	"github.com/spf13/cobra"

	"github.com/mugpunters/vantage/pkg/config"
	"github.com/mugpunters/vantage/pkg/logger"
)

var (
	// Global flags
	inputFile string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vantage",
	Short: "Vantage - equity analysis engine",
	Long: `Vantage CLI

Runs the equity analysis engine over caller-supplied JSON documents:
financial snapshots, price series, trade parameters, and holdings.
Results are printed as JSON on stdout.

Usage:
  go run ./cmd/vantage [command]

Examples:
  go run ./cmd/vantage analyze --input request.json
  go run ./cmd/vantage indicators --input prices.json
  go run ./cmd/vantage position-size --input trade.json`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "input JSON file (default: stdin)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and builds the logger shared by every
// subcommand.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg)
	return cfg, log, nil
}
