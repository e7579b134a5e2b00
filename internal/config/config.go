package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	CatalogID      string        `env:"CATALOG_ID" envDefault:"nemesis"`
	Workers        int           `env:"SIM_WORKERS" envDefault:"0"`
	MaxTrials      int           `env:"SIM_MAX_TRIALS" envDefault:"1000000"`
	DefaultTrials  int           `env:"SIM_DEFAULT_TRIALS" envDefault:"10000"`
	RequestTimeout time.Duration `env:"SIM_REQUEST_TIMEOUT" envDefault:"30s"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if c.Workers < 0 {
		return Config{}, fmt.Errorf("invalid SIM_WORKERS %d", c.Workers)
	}
	if c.DefaultTrials < 1 || c.DefaultTrials > c.MaxTrials {
		return Config{}, fmt.Errorf("SIM_DEFAULT_TRIALS must be between 1 and SIM_MAX_TRIALS (%d)", c.MaxTrials)
	}

	return c, nil
}
