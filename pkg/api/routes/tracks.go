package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/dataimporter/datasets"
	"github.com/trailhub/trailhub/pkg/dataimporter/formats/gpxtrack"
	"github.com/trailhub/trailhub/pkg/redis_client"
	"github.com/trailhub/trailhub/pkg/traildata"
	"go.mongodb.org/mongo-driver/bson"
)

var trackCache *cache.Cache[string]

func TracksRouter(router fiber.Router) {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(30*time.Minute))
	trackCache = cache.New[string](redisStore)

	router.Get("/", listTracks)
	router.Post("/", uploadTrack)
	router.Get("/:identifier", getTrack)
	router.Get("/:identifier/gpx", getTrackGPX)
}

func listTracks(c *fiber.Ctx) error {
	boundsQuery := c.Query("bounds")

	if boundsQuery == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A filter must be applied to the request",
		})
	}

	boundsQuerySplit := strings.Split(boundsQuery, ",")
	if len(boundsQuerySplit) != 4 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Bounds must contain 4 co-ordinates",
		})
	}
	bottomLeftLon, _ := strconv.ParseFloat(boundsQuerySplit[0], 64)
	bottomLeftLat, _ := strconv.ParseFloat(boundsQuerySplit[1], 64)
	topRightLon, _ := strconv.ParseFloat(boundsQuerySplit[2], 64)
	topRightLat, _ := strconv.ParseFloat(boundsQuerySplit[3], 64)

	tracks := []traildata.Track{}

	tracksCollection := database.GetCollection("tracks")

	boundsPolygon := bson.A{bson.A{
		bson.A{bottomLeftLon, bottomLeftLat},
		bson.A{topRightLon, bottomLeftLat},
		bson.A{topRightLon, topRightLat},
		bson.A{bottomLeftLon, topRightLat},
		bson.A{bottomLeftLon, bottomLeftLat},
	}}
	query := bson.M{"geometry": bson.M{"$geoWithin": bson.M{"$geometry": bson.M{
		"type":        "Polygon",
		"coordinates": boundsPolygon,
	}}}}
	cursor, _ := tracksCollection.Find(context.Background(), query)

	for cursor.Next(context.TODO()) {
		var track *traildata.Track
		err := cursor.Decode(&track)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode Track")
			continue
		}

		tracks = append(tracks, *track)
	}

	tracksReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, tracks)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce tracks",
		})
	}

	return c.JSON(tracksReduced)
}

func getTrackByIdentifier(identifier string) *traildata.Track {
	var track *traildata.Track

	trackCacheValue, err := trackCache.Get(context.Background(), identifier)
	if err == nil {
		if trackCacheValue == "N/A" {
			return nil
		}

		json.Unmarshal([]byte(trackCacheValue), &track)
		return track
	}

	tracksCollection := database.GetCollection("tracks")
	tracksCollection.FindOne(context.Background(), bson.M{"primaryidentifier": identifier}).Decode(&track)

	if track == nil {
		trackCache.Set(context.Background(), identifier, "N/A")
	} else {
		trackJSON, _ := json.Marshal(track)
		trackCache.Set(context.Background(), identifier, string(trackJSON))
	}

	return track
}

func getTrack(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	track := getTrackByIdentifier(identifier)

	if track == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Track matching Track Identifier",
		})
	}

	trackReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, track)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce track",
		})
	}

	return c.JSON(trackReduced)
}

func getTrackGPX(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	track := getTrackByIdentifier(identifier)

	if track == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Track matching Track Identifier",
		})
	}

	document := gpxtrack.TrackToGPX(track)

	var buffer bytes.Buffer
	err := document.Write(&buffer, nil)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not generate GPX document for Track",
		})
	}

	c.Set("Content-Type", "application/gpx+xml")
	return c.Send(buffer.Bytes())
}

func uploadTrack(c *fiber.Ctx) error {
	datasetIdentifier := c.Query("id")
	if datasetIdentifier == "" {
		datasetIdentifier = fmt.Sprintf("upload-%d", time.Now().Unix())
	}

	source := gpxtrack.Source{}
	err := source.ParseFile(bytes.NewReader(c.Body()))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	dataset := datasets.DataSet{
		Identifier: datasetIdentifier,
		Format:     datasets.DataSetFormatGPX,
		SupportedObjects: datasets.SupportedObjects{
			Tracks:    true,
			Waypoints: true,
		},
	}
	datasource := &traildata.DataSource{
		OriginalFormat: "gpx",
		Provider:       "upload",
		Dataset:        dataset.Identifier,
		Identifier:     fmt.Sprint(time.Now().Unix()),
	}

	err = source.Import(dataset, datasource)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(fiber.Map{
		"dataset": dataset.Identifier,
		"tracks":  len(source.Document.Tracks),
	})
}
