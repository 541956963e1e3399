package config

import (
	"github.com/urfave/cli/v2"
)

// Flags lets a command override where trip data is read from.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "data-dir",
			Usage: "directory holding the city CSV files (overrides BIKESHARE_DATA_DIR)",
		},
		&cli.StringFlag{
			Name:  "cities-file",
			Usage: "YAML table of cities and their files (overrides BIKESHARE_CITIES_FILE)",
		},
	}
}

// FromContext loads the environment configuration and applies Flags.
func FromContext(c *cli.Context) (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}

	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("cities-file") {
		cfg.CitiesFile = c.String("cities-file")
	}

	return cfg, nil
}
