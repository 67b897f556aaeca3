package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/models"
	"github.com/inmotionhq/inmotion/internal/services"
)

type weeklyPlanInput struct {
	QuestID       *uint                   `json:"questId"`
	WeekStartDate string                  `json:"weekStartDate"`
	Priorities    []models.WeeklyPriority `json:"priorities"`
	Reflection    models.WeeklyReflection `json:"reflection"`
	Progress      int                     `json:"progress"`
}

type weeklyPlanPatchInput struct {
	QuestID    optionalUint             `json:"questId"`
	Priorities *[]models.WeeklyPriority `json:"priorities"`
	Reflection *models.WeeklyReflection `json:"reflection"`
	Progress   *int                     `json:"progress"`
}

func (handler *Handler) GetWeeklyPlans(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	weekStart, valid := parseOptionalDateQuery(c, "weekStart", handler.location)
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid weekStart date")
	}

	plans, err := handler.weeklyPlanService.List(user.ID, weekStart)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch weekly plans")
	}
	return c.JSON(plans)
}

func (handler *Handler) CreateWeeklyPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input weeklyPlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	weekStart, err := parseDateParam(input.WeekStartDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid weekStartDate")
	}

	plan, err := handler.weeklyPlanService.Create(user.ID, services.WeeklyPlanInput{
		QuestID:       input.QuestID,
		WeekStartDate: weekStart,
		Priorities:    input.Priorities,
		Reflection:    input.Reflection,
		Progress:      input.Progress,
	})
	if err != nil {
		if weeklyPlanValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create weekly plan")
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (handler *Handler) UpdateWeeklyPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	planID, err := c.ParamsInt("id")
	if err != nil || planID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	var input weeklyPlanPatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	patch := services.WeeklyPlanPatch{
		Priorities: input.Priorities,
		Reflection: input.Reflection,
		Progress:   input.Progress,
	}
	if input.QuestID.present {
		patch.QuestID = &input.QuestID.value
	}

	plan, err := handler.weeklyPlanService.Update(uint(planID), user.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeeklyPlanNotFound):
			return apiError(c, fiber.StatusNotFound, "weekly plan not found")
		case weeklyPlanValidationError(err):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update weekly plan")
		}
	}
	return c.JSON(plan)
}

func weeklyPlanValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidPlanProgress) ||
		errors.Is(err, services.ErrPriorityTitleRequired) ||
		errors.Is(err, services.ErrEmptyPlanUpdate)
}
