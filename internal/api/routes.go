package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUserProfile)

	api.Patch("/profile", handler.AuthRequired, handler.UpdateProfile)
	api.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	vision := api.Group("/vision", handler.AuthRequired)
	vision.Get("", handler.GetVisionPlan)
	vision.Post("", handler.UpsertVisionPlan)

	quests := api.Group("/quarterly-quests", handler.AuthRequired)
	quests.Get("", handler.GetQuarterlyQuests)
	quests.Post("", handler.CreateQuarterlyQuest)
	quests.Patch("/:id", handler.UpdateQuarterlyQuest)

	weeklyPlans := api.Group("/weekly-plans", handler.AuthRequired)
	weeklyPlans.Get("", handler.GetWeeklyPlans)
	weeklyPlans.Post("", handler.CreateWeeklyPlan)
	weeklyPlans.Patch("/:id", handler.UpdateWeeklyPlan)

	dailyTasks := api.Group("/daily-tasks", handler.AuthRequired)
	dailyTasks.Get("", handler.GetDailyTasks)
	dailyTasks.Post("", handler.CreateDailyTask)
	dailyTasks.Patch("/:id", handler.UpdateDailyTask)
	dailyTasks.Delete("/:id", handler.DeleteDailyTask)

	pomodoro := api.Group("/pomodoro-sessions", handler.AuthRequired)
	pomodoro.Post("", handler.CreatePomodoroSession)
	pomodoro.Get("/stats", handler.GetPomodoroStats)

	reflections := api.Group("/daily-reflections", handler.AuthRequired)
	reflections.Post("", handler.UpsertDailyReflection)
	reflections.Get("/:date", handler.GetDailyReflection)

	api.Get("/onboarding/status", handler.AuthRequired, handler.OnboardingStatus)

	// Error reports are accepted pre-authentication: the client may be
	// failing before it has a session.
	api.Post("/error-logs", handler.CreateErrorLog)
}
