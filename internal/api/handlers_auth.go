package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

type registerInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profilePatchInput struct {
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.Register(services.RegistrationInput{
		Email:           input.Email,
		Password:        input.Password,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrInvalidEmail):
			return apiError(c, fiber.StatusBadRequest, "invalid email address")
		case errors.Is(err, services.ErrPasswordTooShort):
			return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to register")
		}
	}

	token, err := handler.issueAuthToken(user.ID, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	handler.setAuthCookie(c, token, defaultAuthTokenTTL)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	token, err := handler.issueAuthToken(user.ID, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	handler.setAuthCookie(c, token, defaultAuthTokenTTL)

	return c.JSON(fiber.Map{"user": user, "token": token})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CurrentUserProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input profilePatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updated, err := handler.authService.UpdateProfile(user.ID, services.ProfilePatch{
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return apiError(c, fiber.StatusBadRequest, "invalid email address")
		case errors.Is(err, services.ErrUserNotFound):
			return apiError(c, fiber.StatusNotFound, "user not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}
	return c.JSON(updated)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
		case errors.Is(err, services.ErrPasswordTooShort):
			return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to change password")
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}
