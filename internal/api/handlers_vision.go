package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

type visionPlanInput struct {
	CoreValues      []string `json:"coreValues"`
	ThreeYearVision string   `json:"threeYearVision"`
	Purpose         string   `json:"purpose"`
}

func (handler *Handler) GetVisionPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, found, err := handler.visionService.Fetch(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch vision plan")
	}
	if !found {
		// A missing plan is the normal first-visit state, not a server
		// failure; the client treats this 404 as "no plan yet".
		return apiError(c, fiber.StatusNotFound, "vision plan not found")
	}
	return c.JSON(plan)
}

func (handler *Handler) UpsertVisionPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input visionPlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	plan, err := handler.visionService.Save(user.ID, services.VisionPlanInput{
		CoreValues:      input.CoreValues,
		ThreeYearVision: input.ThreeYearVision,
		Purpose:         input.Purpose,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save vision plan")
	}
	return c.JSON(plan)
}
