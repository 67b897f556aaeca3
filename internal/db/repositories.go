package db

import "gorm.io/gorm"

type Repositories struct {
	Users            *UserRepository
	VisionPlans      *VisionPlanRepository
	QuarterlyQuests  *QuarterlyQuestRepository
	WeeklyPlans      *WeeklyPlanRepository
	DailyTasks       *DailyTaskRepository
	PomodoroSessions *PomodoroSessionRepository
	DailyReflections *DailyReflectionRepository
	ErrorLogs        *ErrorLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		VisionPlans:      NewVisionPlanRepository(database),
		QuarterlyQuests:  NewQuarterlyQuestRepository(database),
		WeeklyPlans:      NewWeeklyPlanRepository(database),
		DailyTasks:       NewDailyTaskRepository(database),
		PomodoroSessions: NewPomodoroSessionRepository(database),
		DailyReflections: NewDailyReflectionRepository(database),
		ErrorLogs:        NewErrorLogRepository(database),
	}
}
