// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
)

// Config holds all application configuration. CLI flags layer on top of
// these values; environment variables supply the defaults.
type Config struct {
	Logging  LoggingConfig
	Analysis AnalysisConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// AnalysisConfig holds default analysis settings.
type AnalysisConfig struct {
	// File is the default path to the Flighty CSV export
	File string `env:"FLIGHTY_EXPORT"`

	// Preset selects a named policy (e.g. "korea", "schengen")
	Preset string `env:"ANALYZER_PRESET"`

	// Strict makes malformed flight sequences fail the run instead of
	// being skipped with a warning
	Strict bool `env:"ANALYZER_STRICT" envDefault:"false"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	if cfg.Analysis.Preset != "" {
		if _, ok := domain.PresetPolicies()[cfg.Analysis.Preset]; !ok {
			return fmt.Errorf("ANALYZER_PRESET must name a known preset; got %q", cfg.Analysis.Preset)
		}
	}

	return nil
}
