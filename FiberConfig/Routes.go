package FiberConfig

import (
	"log"

	"Petrel/Config"
	"Petrel/Controllers"
	"Petrel/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *Config.Config) {
	authHandler := Controllers.NewAuthHandler(db, cfg.JWTSecret)
	vehicleController := Controllers.NewVehicleController(db)
	reportController := Controllers.NewReportController(db)
	uploadController := Controllers.NewUploadController(db)
	exportController := Controllers.NewExportController(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth
	api.Post("/Login", authHandler.Login)
	api.Post("/Logout", authHandler.Logout)
	api.Get("/User", authHandler.CurrentUser)
	api.Post("/RegisterUser", middleware.Verify(db, cfg.JWTSecret, 4), authHandler.RegisterUser)

	// Dashboard
	api.Get("/statistics", middleware.Verify(db, cfg.JWTSecret, 1), reportController.Statistics)
	api.Get("/plates", middleware.Verify(db, cfg.JWTSecret, 1), reportController.Plates)
	api.Get("/vehicle-types", middleware.Verify(db, cfg.JWTSecret, 1), reportController.VehicleTypes)

	// Vehicle registry
	vehicles := api.Group("/vehicles", middleware.Verify(db, cfg.JWTSecret, 1))
	vehicles.Get("/", vehicleController.GetVehicles)
	vehicles.Post("/", middleware.Verify(db, cfg.JWTSecret, 3), vehicleController.CreateVehicle)
	vehicles.Post("/bulk-import", middleware.Verify(db, cfg.JWTSecret, 3), vehicleController.BulkImport)
	vehicles.Post("/bulk-update-owner", middleware.Verify(db, cfg.JWTSecret, 3), vehicleController.BulkUpdateOwner)
	vehicles.Post("/bulk-update-active", middleware.Verify(db, cfg.JWTSecret, 3), vehicleController.BulkUpdateActive)
	vehicles.Get("/:plate", vehicleController.GetVehicle)
	vehicles.Put("/:plate", middleware.Verify(db, cfg.JWTSecret, 3), vehicleController.UpdateVehicle)
	vehicles.Delete("/:plate", middleware.Verify(db, cfg.JWTSecret, 3), vehicleController.DeleteVehicle)

	// Reports
	analysis := api.Group("/analysis", middleware.Verify(db, cfg.JWTSecret, 1))
	analysis.Get("/fleet", reportController.FleetAnalysis)

	accounting := api.Group("/accounting", middleware.Verify(db, cfg.JWTSecret, 3))
	accounting.Get("/calculate", reportController.AccountingReport)

	performance := api.Group("/performance", middleware.Verify(db, cfg.JWTSecret, 1))
	performance.Get("/calculate", reportController.VehiclePerformance)
	performance.Post("/compare", reportController.ComparePerformance)

	// Ingestion
	api.Post("/upload", middleware.Verify(db, cfg.JWTSecret, 3), uploadController.Upload)
	api.Get("/uploads", middleware.Verify(db, cfg.JWTSecret, 3), uploadController.ProcessedFiles)

	// Exports
	export := api.Group("/export", middleware.Verify(db, cfg.JWTSecret, 3))
	export.Post("/accounting/pdf", exportController.AccountingPDF)
	export.Post("/analysis/excel", exportController.AnalysisExcel)
}

func FiberConfig(cfg *Config.Config, db *gorm.DB) {
	app := fiber.New()

	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: cfg.CORSOrigins != "*",
		MaxAge:           300,
	}))

	SetupRoutes(app, db, cfg)

	log.Println("Server up on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
