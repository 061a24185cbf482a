package handler

import (
	"github.com/gofiber/fiber/v2"

	"docshare/internal/service"
)

// SystemStats handles GET /api/stats/system. Public.
func SystemStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.System(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// TeacherStats handles GET /api/stats/teacher/:userId. Any authenticated
// caller may query any target user.
func TeacherStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userId")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		stats, err := svc.Teacher(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// StudentStats handles GET /api/stats/student/:userId.
func StudentStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userId")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		stats, err := svc.Student(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}
