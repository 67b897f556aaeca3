package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

type pomodoroSessionInput struct {
	TaskID      *uint  `json:"taskId"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
	CompletedAt string `json:"completedAt"`
}

func (handler *Handler) CreatePomodoroSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input pomodoroSessionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	var completedAt *time.Time
	if input.CompletedAt != "" {
		parsed, err := time.Parse(time.RFC3339, input.CompletedAt)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid completedAt timestamp")
		}
		completedAt = &parsed
	}

	session, err := handler.pomodoroService.Record(user.ID, services.SessionInput{
		TaskID:      input.TaskID,
		Duration:    input.Duration,
		Type:        input.Type,
		CompletedAt: completedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSessionType):
			return apiError(c, fiber.StatusBadRequest, "session type must be work or break")
		case errors.Is(err, services.ErrInvalidSessionDuration):
			return apiError(c, fiber.StatusBadRequest, "duration must be positive")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to record session")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) GetPomodoroStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, valid := parseOptionalDateQuery(c, "date", handler.location)
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	stats, err := handler.pomodoroService.Stats(user.ID, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute stats")
	}
	return c.JSON(stats)
}
