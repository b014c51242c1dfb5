package workers

import (
	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupWorkersRoutes(app *fiber.App) {
	api := app.Group("/api/workers")
	api.Use(auth.AuthMiddleware)
	api.Get("/search", SearchWorkersAPI)
}

// SearchWorkersAPI backs the entry-form autocomplete. The client debounces
// and drops stale responses by comparing its own request sequence; the
// server just answers the query it was given.
func SearchWorkersAPI(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.JSON(fiber.Map{"ok": true, "workers": []interface{}{}, "count": 0})
	}

	users, err := database.SearchUsers(config.GetDB(), q, c.QueryInt("limit", 10))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "workers": users, "count": len(users)})
}
