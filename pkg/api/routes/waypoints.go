package routes

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/traildata"
	"go.mongodb.org/mongo-driver/bson"
)

func WaypointsRouter(router fiber.Router) {
	router.Get("/", listWaypoints)
	router.Get("/:identifier", getWaypoint)
}

func listWaypoints(c *fiber.Ctx) error {
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

	waypoints := []traildata.Waypoint{}

	waypointsCollection := database.GetCollection("waypoints")

	query := bson.M{"location.coordinates": bson.M{"$geoWithin": bson.M{"$box": bson.A{
		bson.A{bottomLeftLon, bottomLeftLat},
		bson.A{topRightLon, topRightLat},
	}}}}
	cursor, _ := waypointsCollection.Find(context.Background(), query)

	for cursor.Next(context.TODO()) {
		var waypoint *traildata.Waypoint
		err := cursor.Decode(&waypoint)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode Waypoint")
			continue
		}

		waypoints = append(waypoints, *waypoint)
	}

	waypointsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, waypoints)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce waypoints",
		})
	}

	return c.JSON(waypointsReduced)
}

func getWaypoint(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	waypointsCollection := database.GetCollection("waypoints")
	var waypoint *traildata.Waypoint
	waypointsCollection.FindOne(context.Background(), bson.M{"primaryidentifier": identifier}).Decode(&waypoint)

	if waypoint == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Waypoint matching Waypoint Identifier",
		})
	}

	waypointReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, waypoint)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce waypoint",
		})
	}

	return c.JSON(waypointReduced)
}
