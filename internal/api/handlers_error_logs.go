package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/models"
)

type errorLogInput struct {
	BlockType    string         `json:"blockType"`
	ErrorMessage string         `json:"errorMessage"`
	ErrorStack   string         `json:"errorStack"`
	ErrorDetails map[string]any `json:"errorDetails"`
}

// CreateErrorLog accepts crash reports without requiring a session. If
// a valid session happens to be present, the report is attributed to it.
func (handler *Handler) CreateErrorLog(c *fiber.Ctx) error {
	var input errorLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(input.BlockType) == "" || strings.TrimSpace(input.ErrorMessage) == "" {
		return apiError(c, fiber.StatusBadRequest, "blockType and errorMessage are required")
	}

	entry := models.ErrorLog{
		BlockType:    strings.TrimSpace(input.BlockType),
		ErrorMessage: input.ErrorMessage,
		ErrorStack:   input.ErrorStack,
		ErrorDetails: input.ErrorDetails,
	}
	if user, err := handler.authenticateRequest(c); err == nil {
		entry.UserID = &user.ID
	}

	if err := handler.repositories.ErrorLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record error log")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
