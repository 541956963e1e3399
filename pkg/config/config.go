package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/travigo/bikeshare/pkg/dataimporter/datasets"
)

type Config struct {
	// Directory holding the city CSV files
	DataDir string `env:"BIKESHARE_DATA_DIR" envDefault:"data"`

	// Optional YAML city table, replaces the built-in one
	CitiesFile string `env:"BIKESHARE_CITIES_FILE"`

	PageSize int `env:"BIKESHARE_PAGE_SIZE" envDefault:"5"`

	// JSON for machine readable logs, anything else is console output
	LogFormat string `env:"BIKESHARE_LOG_FORMAT" envDefault:"CONSOLE"`

	// YES turns on debug logging
	Debug string `env:"BIKESHARE_DEBUG"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if cfg.PageSize <= 0 {
		return Config{}, fmt.Errorf("BIKESHARE_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.DataDir == "" {
		return Config{}, errors.New("BIKESHARE_DATA_DIR must not be empty")
	}

	return cfg, nil
}

func (c Config) DebugEnabled() bool {
	return c.Debug == "YES"
}

func (c Config) JSONLogs() bool {
	return c.LogFormat == "JSON"
}

// Registry returns the city table from CitiesFile, or the built-in one.
func (c Config) Registry() (datasets.Registry, error) {
	if c.CitiesFile != "" {
		return datasets.LoadRegistry(c.CitiesFile, c.DataDir)
	}

	return datasets.Default(c.DataDir), nil
}
