package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TestHandler exposes the diagnostics endpoints the Android client uses
// while pairing a new build against a backend deployment.
type TestHandler struct {
	service statsApplicationService
}

func NewTestHandler(service statsApplicationService) *TestHandler {
	return &TestHandler{service: service}
}

func (h *TestHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "API is working!",
		"timestamp": time.Now().UTC(),
	})
}

func (h *TestHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// DatabaseTest exercises the full stats round-trip for a throwaway user
// id, proving store connectivity end to end.
func (h *TestHandler) DatabaseTest(c *fiber.Ctx) error {
	testUserID := uuid.NewString()

	stats, err := h.service.GetStats(c.Context(), testUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database connection failed",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Database connection successful!",
		"testUserId": testUserID,
		"stats":      stats,
	})
}
