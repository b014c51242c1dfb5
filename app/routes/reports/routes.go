package reports

import (
	"time"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	pages := app.Group("/reports")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", ReportsPage)

	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware, auth.RequireReports)
	api.Get("/range", GetRangeReportAPI)
	api.Get("/monthly", GetMonthlyReportAPI)
	api.Get("/export.csv", ExportRangeCSV)
}

func ReportsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanViewReports() {
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Denied - Factory KPI",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Denied",
			"ErrorMessage": "Manager role required.",
			"user":         user,
		})
	}

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

	now := time.Now()
	return c.Render("reports/index", fiber.Map{
		"Title":        "Reports - Factory KPI",
		"CurrentPage":  "reports",
		"user":         user,
		"FirstName":    user.FirstName,
		"LastName":     user.LastName,
		"Email":        user.Email,
		"sections":     sections,
		"currentMonth": now.Format("2006-01"),
		"monthStart":   now.AddDate(0, 0, -now.Day()+1).Format("2006-01-02"),
		"today":        now.Format("2006-01-02"),
	})
}
