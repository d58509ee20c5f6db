package indexer

import (
	"github.com/rs/zerolog/log"
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/elastic_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Indexes data into Elasticsearch",
		Subcommands: []*cli.Command{
			{
				Name:  "tracks",
				Usage: "do an index of the Tracks",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(true); err != nil {
						return err
					}

					IndexTracks()

					elastic_client.WaitUntilQueueEmpty()

					log.Info().Msg("Index queue emptied")

					return nil
				},
			},
		},
	}
}
