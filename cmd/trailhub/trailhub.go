package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/trailhub/trailhub/pkg/api"
	"github.com/trailhub/trailhub/pkg/dataimporter"
	"github.com/trailhub/trailhub/pkg/indexer"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRAILHUB_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAILHUB_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "trailhub",
		Description: "Single binary of truth for TrailHub - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			dataimporter.RegisterCLI(),
			indexer.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
