// Package config loads the exploration settings from the environment, with
// optional .env support.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration.
type Config struct {
	// Alpha is the significance level used by the hypothesis-testing steps.
	Alpha float64
	// TopShareThreshold gates the value-counts chart: the most frequent
	// value's share must exceed it.
	TopShareThreshold float64
	// MaxShapiroSize caps the sample size fed to the Shapiro-Wilk test;
	// larger samples get a skip instead.
	MaxShapiroSize int
	// Color toggles ANSI styling on the report stream.
	Color bool
	// OutputPath optionally tees the plain report text to a file or
	// directory.
	OutputPath string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Alpha:             0.05,
		TopShareThreshold: 0.25,
		MaxShapiroSize:    5000,
		Color:             true,
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	var err error
	if cfg.Alpha, err = getEnvFloat("GOEXPLORE_ALPHA", cfg.Alpha); err != nil {
		return nil, err
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, fmt.Errorf("GOEXPLORE_ALPHA must be in (0, 1), got %v", cfg.Alpha)
	}
	if cfg.TopShareThreshold, err = getEnvFloat("GOEXPLORE_TOP_SHARE", cfg.TopShareThreshold); err != nil {
		return nil, err
	}
	if cfg.MaxShapiroSize, err = getEnvInt("GOEXPLORE_MAX_SHAPIRO", cfg.MaxShapiroSize); err != nil {
		return nil, err
	}
	if cfg.MaxShapiroSize < 3 {
		return nil, fmt.Errorf("GOEXPLORE_MAX_SHAPIRO must be at least 3, got %d", cfg.MaxShapiroSize)
	}
	if v := os.Getenv("GOEXPLORE_NO_COLOR"); v != "" {
		cfg.Color = false
	}
	cfg.OutputPath = os.Getenv("GOEXPLORE_OUTPUT")
	return cfg, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
