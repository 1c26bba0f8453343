package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"euramax/config"
	courseController "euramax/controllers/course"
	dashboardController "euramax/controllers/dashboard"
	notificationController "euramax/controllers/notification"
	securityController "euramax/controllers/security"
	"euramax/course"
	"euramax/database"
	"euramax/detector"
	"euramax/notifications"
	"euramax/routers/authRoutes"
	"euramax/routers/courseRoutes"
	"euramax/routers/dashboardRoutes"
	"euramax/routers/notificationRoutes"
	"euramax/routers/securityRoutes"
	"euramax/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Course catalog is static content; a corrupt catalog is a programming
	// error and must fail startup.
	catalog, err := course.LoadDefaultCatalog()
	if err != nil {
		log.Fatalf("Invalid course catalog: %v", err)
	}
	tracker := course.NewTracker(catalog)

	engine := detector.NewEngine(config.AppConfig.DetectionThreshold)
	notifier := notifications.NewService(database.Database.Db, config.AppConfig)

	courseCtl := courseController.New(catalog, tracker)
	securityCtl := securityController.New(engine, notifier)
	notificationCtl := notificationController.New(notifier)
	dashboardCtl := dashboardController.New(engine, notifier)

	scheduler, err := utils.StartScanScheduler(config.AppConfig.ScanCronSpec, engine, securityCtl.ProcessDetection)
	if err != nil {
		log.Fatalf("Failed to start scan scheduler: %v", err)
	}
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "operationeel",
			"detector": engine.Statistics(),
			"notifier": notifier.HealthCheck(),
		})
	})

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app, courseCtl)
	securityRoutes.SetupSecurityRoutes(app, securityCtl)
	notificationRoutes.SetupNotificationRoutes(app, notificationCtl)
	dashboardRoutes.SetupDashboardRoutes(app, dashboardCtl)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
