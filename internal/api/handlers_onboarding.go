package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) OnboardingStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.onboardingService.Status(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute onboarding status")
	}
	return c.JSON(status)
}
