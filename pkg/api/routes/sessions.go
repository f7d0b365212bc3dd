package routes

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/shuttle-planner/pkg/planner"
	"github.com/travigo/shuttle-planner/pkg/session"
)

type sessionsRouter struct {
	store *session.Store
}

func SessionsRouter(router fiber.Router, store *session.Store) {
	s := sessionsRouter{store: store}

	router.Post("/", s.createSession)
	router.Get("/:id", s.getSession)
	router.Delete("/:id", s.deleteSession)
	router.Post("/:id/upload", s.uploadFile)
	router.Get("/:id/months", s.getMonths)
	router.Get("/:id/plan", s.getPlan)
}

func (s sessionsRouter) createSession(c *fiber.Ctx) error {
	plannerSession, err := s.store.Create()
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	c.Status(fiber.StatusCreated)
	return c.JSON(describeSession(plannerSession))
}

func (s sessionsRouter) getSession(c *fiber.Ctx) error {
	plannerSession, err := s.store.Get(c.Params("id"))
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(describeSession(plannerSession))
}

func (s sessionsRouter) deleteSession(c *fiber.Ctx) error {
	if !s.store.Delete(c.Params("id")) {
		return sendError(c, session.ErrSessionNotFound, fiber.StatusNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s sessionsRouter) uploadFile(c *fiber.Ctx) error {
	plannerSession, err := s.store.Get(c.Params("id"))
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A file must be uploaded in the file form field",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return sendError(c, err, fiber.StatusBadRequest)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return sendError(c, err, fiber.StatusBadRequest)
	}

	months, err := plannerSession.Upload(fileHeader.Filename, data)
	if err != nil {
		// Anything that went wrong while reading the file is down to its contents
		return sendError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"id":       plannerSession.ID,
		"filename": fileHeader.Filename,
		"months":   months,
	})
}

func (s sessionsRouter) getMonths(c *fiber.Ctx) error {
	plannerSession, err := s.store.Get(c.Params("id"))
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	months, err := plannerSession.Months()
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(months)
}

func (s sessionsRouter) getPlan(c *fiber.Ctx) error {
	plannerSession, err := s.store.Get(c.Params("id"))
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	months, err := plannerSession.Months()
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	// Same defaults as the selection boxes: first month, average traffic
	month := c.Query("month")
	if month == "" && len(months) > 0 {
		month = months[0]
	}
	traffic := c.Query("traffic", string(planner.TrafficLevelAverage))

	plan, err := plannerSession.Plan(month, traffic)
	if err != nil {
		return sendError(c, err, fiber.StatusInternalServerError)
	}

	groups := []string{"basic"}
	if c.QueryBool("detail", false) {
		groups = append(groups, "detailed")
	}

	planReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, plan)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce plan",
		})
	}

	return c.JSON(planReduced)
}

func describeSession(plannerSession *session.Session) fiber.Map {
	description := fiber.Map{
		"id":       plannerSession.ID,
		"loaded":   plannerSession.Loaded(),
		"filename": plannerSession.Filename(),
	}

	if months, err := plannerSession.Months(); err == nil {
		description["months"] = months
	}

	return description
}
