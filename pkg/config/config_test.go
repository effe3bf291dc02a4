package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}

	if cfg.Analysis.TechnicalWeight != 0.40 {
		t.Errorf("Expected TechnicalWeight to be 0.40, got %f", cfg.Analysis.TechnicalWeight)
	}

	if cfg.Risk.ModerateRiskPerTrade != 0.02 {
		t.Errorf("Expected ModerateRiskPerTrade to be 0.02, got %f", cfg.Risk.ModerateRiskPerTrade)
	}

	if cfg.Valuation.IndustryPE != 15.0 {
		t.Errorf("Expected IndustryPE to be 15.0, got %f", cfg.Valuation.IndustryPE)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("RISK_MODERATE_PER_TRADE", "0.025")

	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("RISK_MODERATE_PER_TRADE")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}

	if cfg.Risk.ModerateRiskPerTrade != 0.025 {
		t.Errorf("Expected ModerateRiskPerTrade to be 0.025, got %f", cfg.Risk.ModerateRiskPerTrade)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "testing")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Expected Load() to fail for unknown ENV")
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	os.Setenv("ANALYSIS_TECHNICAL_WEIGHT", "0.9")
	defer os.Unsetenv("ANALYSIS_TECHNICAL_WEIGHT")

	if _, err := Load(); err == nil {
		t.Error("Expected Load() to fail when weights do not sum to 1.0")
	}
}

func TestLoadRejectsNonMonotonicTiers(t *testing.T) {
	os.Setenv("RISK_AGGRESSIVE_PER_TRADE", "0.005")
	defer os.Unsetenv("RISK_AGGRESSIVE_PER_TRADE")

	if _, err := Load(); err == nil {
		t.Error("Expected Load() to fail for non-monotonic risk tiers")
	}
}

func TestLoadRejectsDiscountBelowGrowth(t *testing.T) {
	os.Setenv("VALUATION_DISCOUNT_RATE", "0.05")
	defer os.Unsetenv("VALUATION_DISCOUNT_RATE")

	if _, err := Load(); err == nil {
		t.Error("Expected Load() to fail when discount rate does not exceed growth rate")
	}
}
