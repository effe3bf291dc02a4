package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the analysis engine.
// All environment variables are read here and nowhere else.
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string
	LogFormat string

	// Score blending
	Analysis AnalysisConfig

	// Valuation defaults
	Valuation ValuationConfig

	// Position sizing
	Risk RiskConfig
}

// AnalysisConfig holds the fixed weights used to blend the three
// component scores into the overall score.
type AnalysisConfig struct {
	TechnicalWeight   float64
	FundamentalWeight float64
	RiskWeight        float64
}

// ValuationConfig holds intrinsic-value defaults. The PE and PB
// multiples are industry proxies applied when the caller supplies none.
type ValuationConfig struct {
	GrowthRate   float64
	DiscountRate float64
	IndustryPE   float64
	IndustryPB   float64
}

// RiskConfig holds per-tier risk fractions. Each pair must be
// monotonically increasing from conservative to aggressive.
type RiskConfig struct {
	// Fraction of portfolio value risked per trade
	ConservativeRiskPerTrade float64
	ModerateRiskPerTrade     float64
	AggressiveRiskPerTrade   float64

	// Cap on a single position as a fraction of portfolio value
	ConservativeMaxPosition float64
	ModerateMaxPosition     float64
	AggressiveMaxPosition   float64
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Analysis: AnalysisConfig{
			TechnicalWeight:   getEnvAsFloat("ANALYSIS_TECHNICAL_WEIGHT", 0.40),
			FundamentalWeight: getEnvAsFloat("ANALYSIS_FUNDAMENTAL_WEIGHT", 0.40),
			RiskWeight:        getEnvAsFloat("ANALYSIS_RISK_WEIGHT", 0.20),
		},

		Valuation: ValuationConfig{
			GrowthRate:   getEnvAsFloat("VALUATION_GROWTH_RATE", 0.05),
			DiscountRate: getEnvAsFloat("VALUATION_DISCOUNT_RATE", 0.10),
			IndustryPE:   getEnvAsFloat("VALUATION_INDUSTRY_PE", 15.0),
			IndustryPB:   getEnvAsFloat("VALUATION_INDUSTRY_PB", 1.5),
		},

		Risk: RiskConfig{
			ConservativeRiskPerTrade: getEnvAsFloat("RISK_CONSERVATIVE_PER_TRADE", 0.01),
			ModerateRiskPerTrade:     getEnvAsFloat("RISK_MODERATE_PER_TRADE", 0.02),
			AggressiveRiskPerTrade:   getEnvAsFloat("RISK_AGGRESSIVE_PER_TRADE", 0.03),
			ConservativeMaxPosition:  getEnvAsFloat("RISK_CONSERVATIVE_MAX_POSITION", 0.10),
			ModerateMaxPosition:      getEnvAsFloat("RISK_MODERATE_MAX_POSITION", 0.15),
			AggressiveMaxPosition:    getEnvAsFloat("RISK_AGGRESSIVE_MAX_POSITION", 0.25),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	sum := c.Analysis.TechnicalWeight + c.Analysis.FundamentalWeight + c.Analysis.RiskWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("analysis weights must sum to 1.0, got %.4f", sum)
	}

	if c.Valuation.DiscountRate <= c.Valuation.GrowthRate {
		return fmt.Errorf("VALUATION_DISCOUNT_RATE must exceed VALUATION_GROWTH_RATE")
	}

	r := c.Risk
	if !(r.ConservativeRiskPerTrade < r.ModerateRiskPerTrade && r.ModerateRiskPerTrade < r.AggressiveRiskPerTrade) {
		return fmt.Errorf("risk-per-trade fractions must increase from conservative to aggressive")
	}
	if !(r.ConservativeMaxPosition < r.ModerateMaxPosition && r.ModerateMaxPosition < r.AggressiveMaxPosition) {
		return fmt.Errorf("max-position fractions must increase from conservative to aggressive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
