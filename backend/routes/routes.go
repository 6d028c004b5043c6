package routes

import (
	"confidencecompass/backend/config"
	"confidencecompass/backend/controllers"
	"confidencecompass/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authMiddleware, authController.Logout)
	app.Get("/api/auth/me", authMiddleware, authController.Me)
	app.Put("/api/auth/password", authMiddleware, authController.UpdatePassword)

	// Children routes
	childrenController := controllers.NewChildrenController(db, cfg)
	children := app.Group("/api/children", authMiddleware)
	children.Get("/", childrenController.List)
	children.Post("/", childrenController.Create)
	children.Get("/:id", childrenController.Get)
	children.Put("/:id", childrenController.Update)
	children.Delete("/:id", childrenController.Delete)

	// Pillar routes (public reference data)
	pillarsController := controllers.NewPillarsController(db, cfg)
	app.Get("/api/pillars", pillarsController.List)
	app.Get("/api/pillars/:id", pillarsController.Get)
	app.Get("/api/pillars/:id/techniques", pillarsController.Techniques)
	app.Get("/api/pillars/:id/age-adaptations/:ageGroup", pillarsController.AgeAdaptations)

	// Activity routes; /recommended must be registered before /:id
	activitiesController := controllers.NewActivitiesController(db, cfg)
	app.Get("/api/activities", activitiesController.List)
	app.Get("/api/activities/recommended", authMiddleware, activitiesController.Recommended)
	app.Get("/api/activities/:id", activitiesController.Get)

	// Challenge routes; /current and /day must be registered before /:id
	challengesController := controllers.NewChallengesController(db, cfg)
	app.Get("/api/challenges", challengesController.List)
	app.Get("/api/challenges/current", authMiddleware, challengesController.Current)
	app.Get("/api/challenges/day/:day", challengesController.ByDay)
	app.Get("/api/challenges/:id", challengesController.Get)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	progress := app.Group("/api/progress", authMiddleware)
	progress.Get("/:childId", progressController.GetOverall)
	progress.Get("/:childId/pillars", progressController.GetPillars)
	progress.Get("/:childId/pillars/:pillarId", progressController.GetPillar)
	progress.Post("/:childId/activities/:activityId", progressController.CompleteActivity)
	progress.Post("/:childId/challenges/:challengeId", progressController.CompleteChallenge)
	progress.Post("/:childId/assessments", progressController.AddAssessment)

	// Habit routes
	habitsController := controllers.NewHabitsController(db, cfg)
	habits := app.Group("/api/habits", authMiddleware)
	habits.Get("/:childId", habitsController.List)
	habits.Post("/:childId", habitsController.Record)
	habits.Get("/:childId/today", habitsController.Today)

	// Notification routes; /unread and /read-all before /:id/read
	notificationsController := controllers.NewNotificationsController(db, cfg)
	notifications := app.Group("/api/notifications", authMiddleware)
	notifications.Get("/", notificationsController.List)
	notifications.Get("/unread", notificationsController.Unread)
	notifications.Put("/read-all", notificationsController.ReadAll)
	notifications.Put("/:id/read", notificationsController.MarkRead)
	notifications.Post("/preferences", notificationsController.UpdatePreferences)

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "API is running"})
	})
}
