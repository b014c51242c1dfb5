package main

import (
	"log"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/routes/approvals"
	"factory-kpi/app/routes/auth"
	"factory-kpi/app/routes/dashboard"
	"factory-kpi/app/routes/entries"
	"factory-kpi/app/routes/incidents"
	"factory-kpi/app/routes/reports"
	"factory-kpi/app/routes/rules"
	"factory-kpi/app/routes/sections"
	"factory-kpi/app/routes/workers"
	"factory-kpi/app/services"
	"factory-kpi/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler maps errors to the JSON envelope for API requests and
// the error template for pages
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Factory KPI",
		"CurrentPage":  "",
		"ErrorCode":    code,
		"ErrorTitle":   "Something went wrong",
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// Load configuration and connect to the database
	config.Load()

	// Apply schema migrations and seed reference data
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Migrations failed:", err)
	}

	// Photo-evidence blob store, served under /uploads
	store, err := storage.NewDiskStore(config.AppConfig.UploadDir, "/uploads")
	if err != nil {
		log.Fatal("Failed to initialize upload storage:", err)
	}
	incidents.Store = store

	// Template engine
	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// Static assets and uploaded photos
	app.Static("/static", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup sections routes
	sections.SetupSectionsRoutes(app)

	// Setup workers routes
	workers.SetupWorkersRoutes(app)

	// Approvals must register before entries: /api/entries/pending ahead
	// of /api/entries/:id
	approvals.SetupApprovalsRoutes(app)

	// Setup entries routes
	entries.SetupEntriesRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Setup rules routes
	rules.SetupRulesRoutes(app)

	// Setup incidents routes
	incidents.SetupIncidentsRoutes(app)

	// Nightly monthly-summary refresh
	services.StartScheduler(config.GetDB())

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on", config.AppConfig.Listen)
	log.Fatal(app.Listen(config.AppConfig.Listen))
}
