package rules

import (
	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupRulesRoutes(app *fiber.App) {
	pages := app.Group("/rules")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", RulesPage)

	api := app.Group("/api/rules")
	api.Use(auth.AuthMiddleware, auth.RequireAdmin)
	api.Get("/", GetRulesAPI)
	api.Post("/", CreateRuleAPI)
	api.Put("/:id", UpdateRuleAPI)
	api.Post("/:id/deactivate", DeactivateRuleAPI)
}

func RulesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanManageRules() {
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Denied - Factory KPI",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Denied",
			"ErrorMessage": "Admin role required.",
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

	return c.Render("rules/index", fiber.Map{
		"Title":       "Scoring Rules - Factory KPI",
		"CurrentPage": "rules",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"sections":    sections,
	})
}
