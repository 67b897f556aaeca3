package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

type dailyReflectionInput struct {
	Date             string `json:"date"`
	Reflection       string `json:"reflection"`
	TomorrowPriority string `json:"tomorrowPriority"`
	EnergyLevel      int    `json:"energyLevel"`
}

func (handler *Handler) GetDailyReflection(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDateParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	reflection, found, err := handler.reflectionService.Fetch(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch reflection")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "reflection not found")
	}
	return c.JSON(reflection)
}

func (handler *Handler) UpsertDailyReflection(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input dailyReflectionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	day, err := parseDateParam(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	reflection, err := handler.reflectionService.Save(user.ID, services.ReflectionInput{
		Date:             day,
		Reflection:       input.Reflection,
		TomorrowPriority: input.TomorrowPriority,
		EnergyLevel:      input.EnergyLevel,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidEnergyLevel) {
			return apiError(c, fiber.StatusBadRequest, "energy level must be between 1 and 5")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save reflection")
	}
	return c.JSON(reflection)
}
