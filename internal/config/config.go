package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Config holds the knapsack command defaults, read from KNAPSACK_* variables.
type Config struct {
	Precision     float64 `envconfig:"PRECISION" default:"0.1"`
	MaxNodes      int     `envconfig:"MAX_NODES" default:"0"`
	MaxFrontier   int     `envconfig:"MAX_FRONTIER" default:"0"`
	MaxTableCells int64   `envconfig:"MAX_TABLE_CELLS" default:"67108864"`

	Workers int `envconfig:"WORKERS" default:"4"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("KNAPSACK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid config: KNAPSACK_WORKERS=%d must be at least 1", cfg.Workers)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid config: KNAPSACK_LOG_FORMAT=%q, want console or json", cfg.LogFormat)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// Options converts the solver-related fields into knapsack.Options.
func (c *Config) Options() knapsack.Options {
	opts := knapsack.DefaultOptions()
	opts.Epsilon = c.Precision
	opts.MaxNodes = c.MaxNodes
	opts.MaxFrontier = c.MaxFrontier
	opts.MaxTableCells = c.MaxTableCells
	return opts
}
