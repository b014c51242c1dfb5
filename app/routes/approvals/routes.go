package approvals

import (
	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupApprovalsRoutes must run before the entries routes so that
// /api/entries/pending is matched ahead of /api/entries/:id.
//
// The approver guard is attached per route, not via Group.Use: Use mounts
// prefix middleware, which would also gate the submit/list routes the
// entries package registers on the same /api/entries prefix.
func SetupApprovalsRoutes(app *fiber.App) {
	pages := app.Group("/approvals")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", ApprovalsPage)

	api := app.Group("/api/entries")
	api.Get("/pending", auth.AuthMiddleware, auth.RequireApprover, GetPendingEntriesAPI)
	api.Post("/:id/approve", auth.AuthMiddleware, auth.RequireApprover, ApproveEntryAPI)
	api.Post("/:id/reject", auth.AuthMiddleware, auth.RequireApprover, RejectEntryAPI)
}

func ApprovalsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanApprove() {
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Denied - Factory KPI",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Denied",
			"ErrorMessage": "Approver role required.",
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

	return c.Render("approvals/index", fiber.Map{
		"Title":       "Approval Queue - Factory KPI",
		"CurrentPage": "approvals",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"sections":    sections,
	})
}
