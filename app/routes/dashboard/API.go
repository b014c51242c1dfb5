package dashboard

import (
	"time"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard handles the landing page
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	month := time.Now().Format("2006-01")
	summaries, err := database.GetMonthlySummaries(db, month)
	if err != nil {
		summaries = nil
	}

	var pendingCount int
	if user.CanApprove() {
		if pending, err := database.GetPendingEntries(db, ""); err == nil {
			pendingCount = len(pending)
		}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":        "Dashboard - Factory KPI",
		"CurrentPage":  "dashboard",
		"user":         user,
		"FirstName":    user.FirstName,
		"LastName":     user.LastName,
		"Email":        user.Email,
		"month":        month,
		"summaries":    summaries,
		"pendingCount": pendingCount,
		"canApprove":   user.CanApprove(),
		"canReports":   user.CanViewReports(),
		"canRules":     user.CanManageRules(),
	})
}

// GetDashboardStatsAPI returns today's headline numbers as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	today := time.Now().Format("2006-01-02")

	stats := fiber.Map{
		"today":          today,
		"pending_count":  0,
		"approved_today": 0,
		"rejected_today": 0,
	}

	if pending, err := database.ListEntries(db, database.EntryFilters{Status: string(models.StatusPending)}); err == nil {
		stats["pending_count"] = len(pending)
	}
	if approved, err := database.ListEntries(db, database.EntryFilters{
		From: today, To: today, Status: string(models.StatusApproved),
	}); err == nil {
		stats["approved_today"] = len(approved)
	}
	if rejected, err := database.ListEntries(db, database.EntryFilters{
		From: today, To: today, Status: string(models.StatusRejected),
	}); err == nil {
		stats["rejected_today"] = len(rejected)
	}

	return c.JSON(fiber.Map{"ok": true, "stats": stats})
}
