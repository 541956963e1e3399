package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bikeshare/pkg/config"
	"github.com/travigo/bikeshare/pkg/dataimporter"
	"github.com/travigo/bikeshare/pkg/prompt"
	"github.com/travigo/bikeshare/pkg/stats"
	"github.com/travigo/bikeshare/pkg/stats/export"
	"github.com/travigo/bikeshare/pkg/stats/output"
	"github.com/travigo/bikeshare/pkg/stats/viewer"
	"github.com/travigo/bikeshare/pkg/tripdata"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Calculate trip statistics for a city",
		Subcommands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "print the statistics for one city, month and day",
				Flags: append(config.Flags(),
					&cli.StringFlag{
						Name:     "city",
						Usage:    "city to analyse",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "month",
						Usage: "only trips starting in this month (january to june)",
					},
					&cli.StringFlag{
						Name:  "day",
						Usage: "only trips starting on this weekday (monday to friday)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "output format, text or json",
					},
					&cli.BoolFlag{
						Name:  "detailed",
						Usage: "include timings and duration components in json output",
					},
					&cli.BoolFlag{
						Name:  "trips",
						Usage: "also print every matching trip",
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "trips per page when printing trips (overrides BIKESHARE_PAGE_SIZE)",
					},
				),
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}
					loader, err := newLoader(cfg)
					if err != nil {
						return err
					}

					criteria := tripdata.Criteria{
						City:  c.String("city"),
						Month: c.String("month"),
						Day:   c.String("day"),
					}.Normalise()
					if err := criteria.Validate(); err != nil {
						return err
					}

					format := c.String("format")
					if format != "text" && format != "json" {
						return fmt.Errorf("unknown format %q", format)
					}

					pageSize := cfg.PageSize
					if c.IsSet("page-size") {
						pageSize = c.Int("page-size")
					}
					if pageSize <= 0 {
						return fmt.Errorf("%w: %d", viewer.ErrInvalidPageSize, pageSize)
					}

					collection, err := loader.Load(criteria)
					if err != nil {
						return err
					}

					report := stats.Calculate(collection)
					out := c.App.Writer

					if format == "json" {
						groups := []string{output.GroupBasic}
						if c.Bool("detailed") {
							groups = []string{output.GroupDetailed}
						}
						if err := output.WriteReportJSON(out, report, groups...); err != nil {
							return err
						}
					} else {
						if err := output.WriteHeader(out, criteria.City, criteria.Month, criteria.Day, report.Trips); err != nil {
							return err
						}
						if err := output.WriteReport(out, report); err != nil {
							return err
						}
					}

					if !c.Bool("trips") {
						return nil
					}

					cursor, err := viewer.NewCursor(collection, pageSize)
					if err != nil {
						return err
					}

					var writeErr error
					viewer.Walk(cursor, func(page viewer.Page) bool {
						writeErr = output.WritePage(out, page)
						return writeErr == nil
					})

					return writeErr
				},
			},
			{
				Name:  "export",
				Usage: "write the matching trips to a parquet or xlsx file",
				Flags: append(config.Flags(),
					&cli.StringFlag{
						Name:     "city",
						Usage:    "city to export",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "month",
						Usage: "only trips starting in this month (january to june)",
					},
					&cli.StringFlag{
						Name:  "day",
						Usage: "only trips starting on this weekday (monday to friday)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: export.FormatParquet,
						Usage: "file format, parquet or xlsx",
					},
					&cli.StringFlag{
						Name:     "output",
						Usage:    "file to write",
						Required: true,
					},
				),
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}
					loader, err := newLoader(cfg)
					if err != nil {
						return err
					}

					criteria := tripdata.Criteria{
						City:  c.String("city"),
						Month: c.String("month"),
						Day:   c.String("day"),
					}.Normalise()
					if err := criteria.Validate(); err != nil {
						return err
					}

					format := c.String("format")
					if !slices.Contains(export.Formats, format) {
						return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
					}

					collection, err := loader.Load(criteria)
					if err != nil {
						return err
					}

					file, err := os.Create(c.String("output"))
					if err != nil {
						return err
					}
					defer file.Close()

					written, err := export.Write(file, format, collection)
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "Wrote %d trips to %s\n", written, c.String("output"))

					return file.Close()
				},
			},
			{
				Name:  "explore",
				Usage: "interactively choose filters and browse trips",
				Flags: append(config.Flags(),
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "trips per page (overrides BIKESHARE_PAGE_SIZE)",
					},
				),
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}
					loader, err := newLoader(cfg)
					if err != nil {
						return err
					}

					pageSize := cfg.PageSize
					if c.IsSet("page-size") {
						pageSize = c.Int("page-size")
					}
					if pageSize <= 0 {
						return fmt.Errorf("%w: %d", viewer.ErrInvalidPageSize, pageSize)
					}

					session := &explorer{
						loader:   loader,
						prompter: prompt.New(c.App.Reader, c.App.Writer),
						out:      c.App.Writer,
						pageSize: pageSize,
					}

					err = session.Run()
					if errors.Is(err, prompt.ErrInputClosed) {
						return nil
					}

					return err
				},
			},
		},
	}
}

func newLoader(cfg config.Config) (*dataimporter.Loader, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Using configuration %s", pretty.Sprint(cfg))

	return dataimporter.NewLoader(registry), nil
}

type explorer struct {
	loader   *dataimporter.Loader
	prompter *prompt.Prompter
	out      io.Writer
	pageSize int
}

// Run asks for filters, prints the report and pages through trips on
// request, then offers to start over.
func (e *explorer) Run() error {
	for {
		output.Banner(e.out, "Hello! Let's explore some US bikeshare data!")

		criteria, err := e.prompter.Filters(e.loader.Registry().Cities())
		if err != nil {
			return err
		}

		collection, err := e.loader.Load(criteria)
		if err != nil {
			if !errors.Is(err, dataimporter.ErrParse) && !errors.Is(err, dataimporter.ErrSourceMissing) {
				return err
			}

			log.Error().Err(err).Str("city", criteria.City).Msg("Failed to load trip history")
			fmt.Fprintf(e.out, "\nCould not load data for %s: %s\n", criteria.City, err)
		} else {
			if err := e.show(criteria, collection); err != nil {
				return err
			}
		}

		output.Banner(e.out, "You have reached the end of the program.")

		restart, err := e.prompter.Confirm("Would you like to restart the program")
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (e *explorer) show(criteria tripdata.Criteria, collection *tripdata.Collection) error {
	report := stats.Calculate(collection)

	if err := output.WriteHeader(e.out, criteria.City, criteria.Month, criteria.Day, report.Trips); err != nil {
		return err
	}
	if err := output.WriteReport(e.out, report); err != nil {
		return err
	}

	if collection.Empty() {
		return nil
	}

	output.Banner(e.out, "Individual trip data")

	more, err := e.prompter.Confirm("Would you like to see individual trip data")
	if err != nil || !more {
		return err
	}

	cursor, err := viewer.NewCursor(collection, e.pageSize)
	if err != nil {
		return err
	}

	var walkErr error
	viewer.Walk(cursor, func(page viewer.Page) bool {
		if walkErr = output.WritePage(e.out, page); walkErr != nil {
			return false
		}
		if cursor.Remaining() == 0 {
			fmt.Fprintln(e.out, "No more trips to show.")
			return false
		}

		more, walkErr = e.prompter.Confirm("Would you like to see more individual trip data")
		return walkErr == nil && more
	})

	return walkErr
}
