package sections

import (
	"factory-kpi/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSectionsRoutes(app *fiber.App) {
	api := app.Group("/api/sections")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSectionsAPI)
	api.Get("/:code/rules", GetSectionRulesAPI)
}
