// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/diceboard/internal/telemetry"
)

// Config holds every setting read from the environment.
type Config struct {
	LogLevel   string        `env:"DICEBOARD_LOG_LEVEL" envDefault:"warn"`
	TurnDelay  time.Duration `env:"DICEBOARD_TURN_DELAY" envDefault:"600ms"`
	StartCoins int           `env:"DICEBOARD_START_COINS" envDefault:"2"`
	Color      bool          `env:"DICEBOARD_COLOR" envDefault:"true"`
	// Screen switches interactive games to the full-screen renderer.
	Screen bool `env:"DICEBOARD_SCREEN" envDefault:"false"`

	HoneycombAPIKey  string `env:"HONEYCOMB_DICEBOARD_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_DICEBOARD_DATASET" envDefault:"diceboard"`
}

// Load reads the optional .env file at path, then parses the environment.
// A missing .env file is not an error; variables may be set directly.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.StartCoins < 1 {
		return fmt.Errorf("DICEBOARD_START_COINS must be at least 1, got %d", c.StartCoins)
	}
	if c.TurnDelay < 0 {
		return fmt.Errorf("DICEBOARD_TURN_DELAY must not be negative, got %s", c.TurnDelay)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("DICEBOARD_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Telemetry returns the trace export settings.
func (c Config) Telemetry() telemetry.Settings {
	return telemetry.Settings{
		APIKey:  c.HoneycombAPIKey,
		Dataset: c.HoneycombDataset,
	}
}
