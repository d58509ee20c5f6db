package dataimporter

import (
	"time"

	"github.com/kr/pretty"
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/dataimporter/datasets"
	"github.com/trailhub/trailhub/pkg/gpx"
	"github.com/trailhub/trailhub/pkg/redis_client"
	"github.com/urfave/cli/v2"

	"github.com/rs/zerolog/log"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Download & convert GPX datasets into the canonical model",
		Subcommands: []*cli.Command{
			{
				Name:  "dataset",
				Usage: "Import a dataset from the registry",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "ID of the dataset",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "registry",
						Usage: "Path to the dataset registry file",
						Value: "datasets.yaml",
					},
					&cli.StringFlag{
						Name:     "repeat-every",
						Usage:    "Repeat this import every X seconds",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to Redis")
					}

					registry, err := datasets.LoadRegistry(c.String("registry"))
					if err != nil {
						return err
					}

					dataset, err := datasets.Get(registry, c.String("id"))
					if err != nil {
						return err
					}

					repeatEvery := c.String("repeat-every")
					repeat := repeatEvery != ""
					var repeatDuration time.Duration
					if repeat {
						var err error
						repeatDuration, err = time.ParseDuration(repeatEvery)

						if err != nil {
							return err
						}
					}

					for {
						startTime := time.Now()

						if err := importDataset(dataset); err != nil {
							return err
						}

						if !repeat {
							break
						}

						executionDuration := time.Since(startTime)
						log.Info().Msgf("Import took %s", executionDuration.String())

						waitTime := repeatDuration - executionDuration
						if waitTime > 0 {
							time.Sleep(waitTime)
						}
					}

					return nil
				},
			},
			{
				Name:  "file",
				Usage: "Import a single GPX file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path or URL of the GPX file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "id",
						Usage: "Identifier to store the import under",
						Value: "adhoc",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					dataset := datasets.DataSet{
						Identifier: c.String("id"),
						Format:     datasets.DataSetFormatGPX,
						Source:     c.String("file"),
						SupportedObjects: datasets.SupportedObjects{
							Tracks:    true,
							Waypoints: true,
						},
					}

					return importDataset(dataset)
				},
			},
			{
				Name:  "validate",
				Usage: "Parse a GPX file and print a summary without importing",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path or URL of the GPX file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					reader, err := openSource(c.String("file"))
					if err != nil {
						return err
					}
					defer reader.Close()

					document, err := gpx.ParseXMLFile(reader, gpx.DefaultReaderSettings())
					if err != nil {
						return err
					}

					pretty.Println(document.Metadata)

					log.Info().Msgf("Document by %q", document.Creator)
					log.Info().Msgf(" - %d waypoints", len(document.Waypoints))
					log.Info().Msgf(" - %d routes", len(document.Routes))
					log.Info().Msgf(" - %d tracks", len(document.Tracks))

					return nil
				},
			},
		},
	}
}
