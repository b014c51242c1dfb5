package entries

import (
	"time"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/routes/auth"
	"factory-kpi/app/scoring"

	"github.com/gofiber/fiber/v2"
)

func SetupEntriesRoutes(app *fiber.App) {
	pages := app.Group("/entries")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", EntriesPage)

	api := app.Group("/api/entries")
	api.Use(auth.AuthMiddleware)
	api.Post("/", SubmitEntryAPI)
	api.Post("/preview", PreviewEntryAPI)
	api.Get("/", ListEntriesAPI)
	// /pending, /:id/approve and /:id/reject live in the approvals package;
	// its routes must be registered before the /:id catch-all below.
	api.Get("/:id", GetEntryAPI)
}

func EntriesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	sections, err := database.GetAllSections(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - Factory KPI",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load sections.",
			"user":         user,
		})
	}

	today := time.Now().Format("2006-01-02")
	return c.Render("entries/index", fiber.Map{
		"Title":           "KPI Entries - Factory KPI",
		"CurrentPage":     "entries",
		"user":            user,
		"FirstName":       user.FirstName,
		"LastName":        user.LastName,
		"Email":           user.Email,
		"sections":        sections,
		"complianceCodes": scoring.KnownComplianceCodes(),
		"today":           today,
	})
}
