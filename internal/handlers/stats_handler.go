package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/ErkinAl/MuvTimeBack/internal/models"
	"github.com/ErkinAl/MuvTimeBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service statsApplicationService
}

type statsApplicationService interface {
	GetStats(ctx context.Context, userID string) (*models.StatsView, error)
	UpdateStats(ctx context.Context, userID string, input services.UpdateStatsInput) (*models.StatsView, error)
	GetSessions(ctx context.Context, userID string) ([]models.SessionView, error)
	ResetStats(ctx context.Context, userID string) (*models.StatsView, error)
	InitializeStats(ctx context.Context, userID string, displayName string, email string) (*models.StatsView, error)
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type updateStatsRequest struct {
	ExerciseType    string `json:"exercise_type"`
	RepsCompleted   int    `json:"reps_completed"`
	XPEarned        int    `json:"xp_earned"`
	SessionDuration int    `json:"session_duration"`
}

type initializeStatsRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	stats, err := h.service.GetStats(c.Context(), userID)
	if err != nil {
		return mapStatsError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) UpdateStats(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	var req updateStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	stats, err := h.service.UpdateStats(c.Context(), userID, services.UpdateStatsInput{
		ExerciseType:    req.ExerciseType,
		RepsCompleted:   req.RepsCompleted,
		XPEarned:        req.XPEarned,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		return mapStatsError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) GetSessions(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	sessions, err := h.service.GetSessions(c.Context(), userID)
	if err != nil {
		return mapStatsError(c, err)
	}
	return c.JSON(sessions)
}

func (h *StatsHandler) ResetStats(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	stats, err := h.service.ResetStats(c.Context(), userID)
	if err != nil {
		return mapStatsError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) InitializeStats(c *fiber.Ctx) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	var req initializeStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	stats, err := h.service.InitializeStats(c.Context(), userID, req.DisplayName, req.Email)
	if err != nil {
		return mapStatsError(c, err)
	}
	return c.JSON(stats)
}

func parseUserIDParam(c *fiber.Ctx) (string, error) {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return "", services.ErrEmptyUserID
	}
	return userID, nil
}

// mapStatsError shapes service failures for the app: a 400 for a blank
// user id, otherwise a single opaque 500 carrying the failure message.
func mapStatsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrEmptyUserID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
