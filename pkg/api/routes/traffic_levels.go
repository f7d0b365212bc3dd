package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/shuttle-planner/pkg/planner"
)

func TrafficLevelsRouter(router fiber.Router) {
	router.Get("/", listTrafficLevels)
}

func listTrafficLevels(c *fiber.Ctx) error {
	levels := []fiber.Map{}

	for _, level := range planner.TrafficLevels {
		levels = append(levels, fiber.Map{
			"label":      level,
			"multiplier": level.Multiplier(),
		})
	}

	return c.JSON(levels)
}
