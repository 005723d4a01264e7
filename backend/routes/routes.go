package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/controllers"
	"tradequest/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Onboarding routes
	onboardingController := controllers.NewOnboardingController(db, cfg)
	onboarding := app.Group("/api/onboarding", authMiddleware)
	onboarding.Put("/answers", onboardingController.SaveAnswers)
	onboarding.Get("/preview", onboardingController.Preview)
	onboarding.Post("/complete", onboardingController.Complete)

	// Path routes
	pathController := controllers.NewPathController(db, cfg)
	app.Get("/api/path", authMiddleware, pathController.GetPath)
	app.Get("/api/path/curriculum/:archetype", authMiddleware, pathController.GetCurriculum)

	// Lesson routes
	lessonsController := controllers.NewLessonsController(db, cfg)
	app.Post("/api/lessons/:code/complete", authMiddleware, lessonsController.CompleteLesson)

	// Progression routes
	progressionController := controllers.NewProgressionController(db, cfg)
	progression := app.Group("/api/progression", authMiddleware)
	progression.Get("/", progressionController.GetProgression)
	progression.Get("/overview", progressionController.GetOverview)
	progression.Post("/claim", progressionController.ClaimRewards)

	// League routes
	leagueController := controllers.NewLeagueController(db, cfg)
	league := app.Group("/api/league", authMiddleware)
	league.Get("/", leagueController.GetLeague)
	league.Get("/leaderboard", leagueController.GetLeaderboard)
}
