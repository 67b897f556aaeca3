package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

type dailyTaskInput struct {
	WeeklyPlanID *uint  `json:"weeklyPlanId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Impact       string `json:"impact"`
	Date         string `json:"date"`
}

type dailyTaskPatchInput struct {
	WeeklyPlanID optionalUint `json:"weeklyPlanId"`
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Impact       *string      `json:"impact"`
	IsCompleted  *bool        `json:"isCompleted"`
	Date         *string      `json:"date"`
}

func (handler *Handler) GetDailyTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, valid := parseOptionalDateQuery(c, "date", handler.location)
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	tasks, err := handler.taskService.List(user.ID, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateDailyTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input dailyTaskInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	date, err := parseDateParam(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	task, err := handler.taskService.Create(user.ID, services.TaskInput{
		WeeklyPlanID: input.WeeklyPlanID,
		Title:        input.Title,
		Description:  input.Description,
		Impact:       input.Impact,
		Date:         date,
	})
	if err != nil {
		if taskValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateDailyTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	var input dailyTaskPatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	patch := services.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Impact:      input.Impact,
		IsCompleted: input.IsCompleted,
	}
	if input.WeeklyPlanID.present {
		patch.WeeklyPlanID = &input.WeeklyPlanID.value
	}
	if input.Date != nil {
		date, err := parseDateParam(*input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		patch.Date = &date
	}

	task, err := handler.taskService.Update(uint(taskID), user.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return apiError(c, fiber.StatusNotFound, "task not found")
		case taskValidationError(err):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteDailyTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.taskService.Delete(uint(taskID), user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func taskValidationError(err error) bool {
	return errors.Is(err, services.ErrTaskTitleRequired) ||
		errors.Is(err, services.ErrInvalidImpact) ||
		errors.Is(err, services.ErrEmptyTaskUpdate)
}
