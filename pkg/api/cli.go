package api

import (
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/elastic_client"
	"github.com/trailhub/trailhub/pkg/redis_client"
	"github.com/urfave/cli/v2"

	"github.com/rs/zerolog/log"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to Redis")
					}
					if err := elastic_client.Connect(false); err != nil {
						return err
					}

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
