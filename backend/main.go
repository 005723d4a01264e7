package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"

	"tradequest/backend/config"
	"tradequest/backend/controllers"
	"tradequest/backend/engine"
	"tradequest/backend/middleware"
	"tradequest/backend/routes"
	"tradequest/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Curriculum data is authored by hand; a malformed catalog is a bug,
	// not a runtime condition.
	if err := engine.ValidateCatalog(); err != nil {
		log.Fatalf("Invalid curriculum catalog: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Monthly league settlement, with a catch-up run at boot in case the
	// process was down over a period boundary.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("5 0 1 * *", func() {
		controllers.SettleLeaguePeriods(db, logger, cfg.CohortSize)
	}); err != nil {
		log.Fatalf("Error scheduling league settlement: %v", err)
	}
	scheduler.Start()
	go controllers.SettleLeaguePeriods(db, logger, cfg.CohortSize)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
