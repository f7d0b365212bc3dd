package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/shuttle-planner/pkg/api/routes"
	"github.com/travigo/shuttle-planner/pkg/session"
)

func NewApp(store *session.Store, maxUploadBytes int) *fiber.App {
	webApp := fiber.New(fiber.Config{
		BodyLimit:             maxUploadBytes,
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	group := webApp.Group("/planner")

	group.Get("version", routes.APIVersion)

	routes.TrafficLevelsRouter(group.Group("/traffic_levels"))
	routes.SessionsRouter(group.Group("/sessions"), store)

	return webApp
}

func SetupServer(listen string, store *session.Store, maxUploadBytes int) error {
	webApp := NewApp(store, maxUploadBytes)

	return webApp.Listen(listen)
}
