package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/shuttle-planner/pkg/session"
	"github.com/travigo/shuttle-planner/pkg/trips"
)

// errorStatus maps pipeline errors onto HTTP statuses. Errors it does not know
// about get the fallback status.
func errorStatus(err error, fallback int) int {
	var formatErr *trips.FormatError
	var schemaErr *trips.SchemaError
	var dateErr *trips.DateParseError
	var countErr *trips.InvalidCountError
	var levelErr *trips.UnknownTrafficLevelError

	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, session.ErrAwaitingUpload):
		return fiber.StatusConflict
	case errors.As(err, &formatErr):
		return fiber.StatusUnsupportedMediaType
	case errors.As(err, &schemaErr), errors.As(err, &dateErr), errors.As(err, &countErr), errors.As(err, &levelErr):
		return fiber.StatusBadRequest
	default:
		return fallback
	}
}

func sendError(c *fiber.Ctx, err error, fallback int) error {
	c.Status(errorStatus(err, fallback))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
