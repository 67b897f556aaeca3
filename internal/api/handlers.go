package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/db"
	"github.com/inmotionhq/inmotion/internal/models"
	"github.com/inmotionhq/inmotion/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "inmotion_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories      *db.Repositories
	authService       *services.AuthService
	visionService     *services.VisionService
	questService      *services.QuestService
	weeklyPlanService *services.WeeklyPlanService
	taskService       *services.TaskService
	pomodoroService   *services.PomodoroService
	reflectionService *services.ReflectionService
	onboardingService *services.OnboardingService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
