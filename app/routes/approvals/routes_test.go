package approvals

import (
	"net/http/httptest"
	"strings"
	"testing"

	"factory-kpi/app/models"
	"factory-kpi/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// The approval handlers share the /api/entries prefix with the submission
// routes, so the approver guard must never be mounted as prefix middleware.
func TestSetupApprovalsRoutesNoPrefixMiddlewareOnEntries(t *testing.T) {
	app := fiber.New()
	SetupApprovalsRoutes(app)

	for _, r := range app.GetRoutes() {
		if r.Method == "USE" && strings.HasPrefix(r.Path, "/api/entries") {
			t.Fatalf("prefix middleware mounted on %s; guards must be per-route", r.Path)
		}
	}
}

func TestApproverGuardScopedToApprovalRoutes(t *testing.T) {
	app := fiber.New()

	worker := &models.User{Roles: []*models.Role{{Name: models.RoleWorker}}}
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", worker)
		return c.Next()
	})

	// Same registration order and prefix layout as main.go: the approval
	// routes first, then the submission route on the shared prefix.
	api := app.Group("/api/entries")
	api.Get("/pending", auth.RequireApprover, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	api.Post("/:id/approve", auth.RequireApprover, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	api.Post("/:id/reject", auth.RequireApprover, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	sub := app.Group("/api/entries")
	sub.Post("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/entries/", nil))
	if err != nil {
		t.Fatalf("submit request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("worker submit got status %d, want 200", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/entries/pending", nil))
	if err != nil {
		t.Fatalf("pending request failed: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Fatalf("worker pending-queue access got status %d, want 403", resp.StatusCode)
	}
}
