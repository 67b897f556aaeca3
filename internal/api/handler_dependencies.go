package api

import (
	"github.com/inmotionhq/inmotion/internal/db"
	"github.com/inmotionhq/inmotion/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.visionService = services.NewVisionService(handler.repositories.VisionPlans)
	handler.questService = services.NewQuestService(handler.repositories.QuarterlyQuests)
	handler.weeklyPlanService = services.NewWeeklyPlanService(handler.repositories.WeeklyPlans, handler.location)
	handler.taskService = services.NewTaskService(handler.repositories.DailyTasks, handler.location)
	handler.pomodoroService = services.NewPomodoroService(handler.repositories.PomodoroSessions, handler.repositories.DailyTasks, handler.location)
	handler.reflectionService = services.NewReflectionService(handler.repositories.DailyReflections, handler.location)
	handler.onboardingService = services.NewOnboardingService(handler.repositories.VisionPlans, handler.repositories.QuarterlyQuests)
	return handler
}
