package incidents

import (
	"factory-kpi/app/routes/auth"
	"factory-kpi/app/storage"

	"github.com/gofiber/fiber/v2"
)

// Store is the photo-evidence blob store, set in main before routes run.
var Store storage.BlobStore

func SetupIncidentsRoutes(app *fiber.App) {
	api := app.Group("/api/incidents")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetIncidentsAPI)
	api.Post("/", CreateIncidentAPI)
}
