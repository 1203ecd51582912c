package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	// Seed for the bracket shuffle. Zero seeds from the clock.
	Seed         int64        `yaml:"seed"`
	DefaultTitle string       `yaml:"default_title"`
	Log          LogConfig    `yaml:"log"`
	Titles       TitlesConfig `yaml:"titles"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// TitlesConfig holds configuration of the video title lookup.
type TitlesConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Endpoint      string        `yaml:"endpoint"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DefaultTitle: "Untitled Tournament",
		Log: LogConfig{
			Level: "info",
		},
		Titles: TitlesConfig{
			Enabled:       false,
			Endpoint:      "https://noembed.com/embed",
			RatePerSecond: 2,
			Timeout:       10 * time.Second,
		},
	}
}

// LoadConfig loads the configuration from a YAML file.
// A missing file falls back to the defaults. Environment
// variables override both.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults and environment only
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides the configuration with the VERSUS_* environment variables
func applyEnv(cfg *Config) error {
	if v := os.Getenv("VERSUS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid VERSUS_SEED value: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("VERSUS_DEFAULT_TITLE"); v != "" {
		cfg.DefaultTitle = v
	}
	if v := os.Getenv("VERSUS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("VERSUS_TITLES_ENABLED"); v != "" {
		cfg.Titles.Enabled = v == "true"
	}
	if v := os.Getenv("VERSUS_TITLES_ENDPOINT"); v != "" {
		cfg.Titles.Endpoint = v
	}
	if v := os.Getenv("VERSUS_TITLES_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid VERSUS_TITLES_RATE value: %w", err)
		}
		cfg.Titles.RatePerSecond = r
	}
	if v := os.Getenv("VERSUS_TITLES_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid VERSUS_TITLES_TIMEOUT value: %w", err)
		}
		cfg.Titles.Timeout = d
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.Log.Level)
}
