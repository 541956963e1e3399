package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bikeshare/pkg/config"
	"github.com/travigo/bikeshare/pkg/dataimporter"
	statscli "github.com/travigo/bikeshare/pkg/stats/cli"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Reports go to stdout so logs stay on stderr
	if !cfg.JSONLogs() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if cfg.DebugEnabled() {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "bikeshare",
		Description: "Explore US bikeshare trip history by city, month and day",

		Commands: []*cli.Command{
			statscli.RegisterCLI(),
			dataimporter.RegisterCLI(),
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
