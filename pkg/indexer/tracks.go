package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/elastic_client"
	"github.com/trailhub/trailhub/pkg/traildata"
	"github.com/trailhub/trailhub/pkg/util"
)

const indexDescriptionLength = 512

func IndexTracks() {
	indexName := fmt.Sprintf("trailhub-tracks-%d", time.Now().Unix())

	createTrackIndex(indexName)
	indexTracksFromMongo(indexName)

	deleteOldIndexes("trailhub-tracks-*", indexName)
}

func createTrackIndex(indexName string) {
	mapping := `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 1
		},
		"mappings": {
			"properties": {
				"PrimaryIdentifier": {
					"type": "text",
					"fields": {
						"keyword": {
							"type": "keyword",
							"ignore_above": 256
						}
					}
				},
				"Name": {
					"type": "text",
					"fields": {
						"keyword": {
							"type": "keyword",
							"ignore_above": 256
						},
						"search_as_you_type": {
							"type": "search_as_you_type"
						}
					}
				},
				"Description": {
					"type": "text"
				},
				"Keywords": {
					"type": "text",
					"fields": {
						"keyword": {
							"type": "keyword",
							"ignore_above": 256
						}
					}
				},
				"Bounds": {
					"properties": {
						"MinLatitude": { "type": "float" },
						"MinLongitude": { "type": "float" },
						"MaxLatitude": { "type": "float" },
						"MaxLongitude": { "type": "float" }
					}
				},
				"Distance": {
					"type": "float"
				}
			}
		}
	}`

	indexReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}

	resp, err := indexReq.Do(context.Background(), elastic_client.Client)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create index")
	}

	responseBytes, _ := io.ReadAll(resp.Body)
	pretty.Println(string(responseBytes))
}

func indexTracksFromMongo(indexName string) {
	tracksCollection := database.GetCollection("tracks")

	cursor, _ := tracksCollection.Find(context.Background(), bson.M{})

	indexPool := pool.New().WithMaxGoroutines(5)

	for cursor.Next(context.Background()) {
		var track *traildata.Track
		cursor.Decode(&track)

		indexPool.Go(func() {
			jsonTrack, _ := json.Marshal(map[string]interface{}{
				"PrimaryIdentifier": track.PrimaryIdentifier,
				"Name":              track.Name,
				"Description":       util.TrimString(track.Description, indexDescriptionLength),
				"Keywords":          track.Keywords,
				"Bounds":            track.Bounds,
				"Distance":          track.Stats.Distance,
			})

			elastic_client.IndexRequest(indexName, bytes.NewReader(jsonTrack))
		})
	}

	indexPool.Wait()

	log.Info().Msg("Sent all index requests to queue")
}
