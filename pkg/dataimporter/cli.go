package dataimporter

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bikeshare/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "datasets",
		Usage: "Inspect the registered city trip-history files",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the supported cities and their source files",
				Flags: config.Flags(),
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}
					registry, err := cfg.Registry()
					if err != nil {
						return err
					}

					table := tablewriter.NewWriter(c.App.Writer)
					table.SetHeader([]string{"City", "Name", "Source"})
					table.SetAutoWrapText(false)
					for _, dataset := range registry.DataSets() {
						table.Append([]string{dataset.Identifier, dataset.Name, dataset.Source})
					}
					table.Render()

					return nil
				},
			},
			{
				Name:  "check",
				Usage: "Parse a city's file and report what it contains",
				Flags: append(config.Flags(),
					&cli.StringFlag{
						Name:     "city",
						Usage:    "city to check",
						Required: true,
					},
				),
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}
					registry, err := cfg.Registry()
					if err != nil {
						return err
					}

					dataset, err := registry.Get(c.String("city"))
					if err != nil {
						return err
					}

					collection, err := NewLoader(registry).Parse(dataset)
					if err != nil {
						return err
					}

					log.Info().Str("city", dataset.Identifier).Int("records", collection.Len()).Msg("Dataset parsed")

					fmt.Fprintf(c.App.Writer, "%s: %d trips, gender column: %t, birth year column: %t\n",
						dataset.Name, collection.Len(), collection.Schema.Gender, collection.Schema.BirthYear)

					return nil
				},
			},
		},
	}
}
