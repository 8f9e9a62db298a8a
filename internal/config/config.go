// Package config loads folio settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"folio/internal/project"
	"folio/internal/stats"
)

// Config holds runtime settings. All fields come from FOLIO_* variables.
type Config struct {
	ProjectsSource string        `env:"FOLIO_PROJECTS"        envDefault:"project-template.json"`
	StatsPath      string        `env:"FOLIO_STATS"`
	StatsFormat    stats.Format  `env:"FOLIO_STATS_FORMAT"    envDefault:"sqlite"`
	RevealInterval time.Duration `env:"FOLIO_REVEAL_INTERVAL" envDefault:"100ms"`
	FetchTimeout   time.Duration `env:"FOLIO_FETCH_TIMEOUT"   envDefault:"10s"`
	Watch          bool          `env:"FOLIO_WATCH"           envDefault:"true"`
	ProbeImages    bool          `env:"FOLIO_PROBE_IMAGES"    envDefault:"false"`
	LogFile        string        `env:"FOLIO_LOG_FILE"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		ProjectsSource: project.DefaultSource,
		StatsFormat:    stats.FormatSQLite,
		RevealInterval: 100 * time.Millisecond,
		FetchTimeout:   10 * time.Second,
		Watch:          true,
	}
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the gallery cannot run with.
func (c Config) Validate() error {
	switch c.StatsFormat {
	case stats.FormatSQLite, stats.FormatJSON, stats.FormatMemory:
	default:
		return fmt.Errorf("config: FOLIO_STATS_FORMAT: %w: %q", stats.ErrUnknownFormat, c.StatsFormat)
	}
	if c.StatsFormat == stats.FormatJSON && c.StatsPath == "" {
		return fmt.Errorf("config: FOLIO_STATS is required for the json stats format")
	}
	if c.RevealInterval < 0 {
		return fmt.Errorf("config: FOLIO_REVEAL_INTERVAL must not be negative")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config: FOLIO_FETCH_TIMEOUT must be positive")
	}
	return nil
}
