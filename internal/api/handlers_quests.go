package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

type questInput struct {
	Title    string `json:"title"`
	Goal     string `json:"goal"`
	Plan     string `json:"plan"`
	Systems  string `json:"systems"`
	Quarter  string `json:"quarter"`
	Year     int    `json:"year"`
	Progress int    `json:"progress"`
	IsActive *bool  `json:"isActive"`
}

type questPatchInput struct {
	Title    *string `json:"title"`
	Goal     *string `json:"goal"`
	Plan     *string `json:"plan"`
	Systems  *string `json:"systems"`
	Quarter  *string `json:"quarter"`
	Year     *int    `json:"year"`
	Progress *int    `json:"progress"`
	IsActive *bool   `json:"isActive"`
}

func (handler *Handler) GetQuarterlyQuests(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	quests, err := handler.questService.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch quests")
	}
	return c.JSON(quests)
}

func (handler *Handler) CreateQuarterlyQuest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input questInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	quest, err := handler.questService.Create(user.ID, services.QuestInput{
		Title:    input.Title,
		Goal:     input.Goal,
		Plan:     input.Plan,
		Systems:  input.Systems,
		Quarter:  input.Quarter,
		Year:     input.Year,
		Progress: input.Progress,
		IsActive: isActive,
	})
	if err != nil {
		if questValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create quest")
	}
	return c.Status(fiber.StatusCreated).JSON(quest)
}

func (handler *Handler) UpdateQuarterlyQuest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	questID, err := c.ParamsInt("id")
	if err != nil || questID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid quest id")
	}

	var input questPatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	quest, err := handler.questService.Update(uint(questID), user.ID, services.QuestPatch{
		Title:    input.Title,
		Goal:     input.Goal,
		Plan:     input.Plan,
		Systems:  input.Systems,
		Quarter:  input.Quarter,
		Year:     input.Year,
		Progress: input.Progress,
		IsActive: input.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestNotFound):
			return apiError(c, fiber.StatusNotFound, "quest not found")
		case questValidationError(err):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update quest")
		}
	}
	return c.JSON(quest)
}

func questValidationError(err error) bool {
	return errors.Is(err, services.ErrQuestTitleRequired) ||
		errors.Is(err, services.ErrInvalidQuarterLabel) ||
		errors.Is(err, services.ErrInvalidQuestProgress) ||
		errors.Is(err, services.ErrEmptyQuestUpdate)
}
