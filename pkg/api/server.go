package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trailhub/trailhub/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.TracksRouter(group.Group("/tracks"))
	routes.WaypointsRouter(group.Group("/waypoints"))

	return webApp.Listen(listen)
}
