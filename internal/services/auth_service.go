package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/inmotionhq/inmotion/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrPasswordTooShort       = errors.New("password too short")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

const minPasswordLength = 8

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Provision(user *models.User) (models.User, error)
	UpdateProfile(userID uint, updates map[string]any) (models.User, bool, error)
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegistrationInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	email := NormalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:           email,
		PasswordHash:    string(passwordHash),
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		ProfileImageURL: strings.TrimSpace(input.ProfileImageURL),
	}
	return service.users.Provision(&user)
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

type ProfilePatch struct {
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

func (service *AuthService) UpdateProfile(userID uint, patch ProfilePatch) (models.User, error) {
	updates := map[string]any{}
	if patch.Email != nil {
		email := NormalizeEmail(*patch.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return models.User{}, ErrInvalidEmail
		}
		updates["email"] = email
	}
	if patch.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*patch.LastName)
	}
	if patch.ProfileImageURL != nil {
		updates["profile_image_url"] = strings.TrimSpace(*patch.ProfileImageURL)
	}
	if len(updates) == 0 {
		user, err := service.users.FindByID(userID)
		if err != nil {
			return models.User{}, ErrUserNotFound
		}
		return user, nil
	}

	user, found, err := service.users.UpdateProfile(userID, updates)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(passwordHash), false)
}
