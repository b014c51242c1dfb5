package approvals

import (
	"database/sql"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/scoring"

	"github.com/gofiber/fiber/v2"
)

func GetPendingEntriesAPI(c *fiber.Ctx) error {
	sectionID := ""
	if code := c.Query("section"); code != "" {
		section, err := database.GetSectionByCode(config.GetDB(), code)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Section not found"})
			}
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		sectionID = section.ID
	}

	entries, err := database.GetPendingEntries(config.GetDB(), sectionID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "entries": entries, "count": len(entries)})
}

type decisionRequest struct {
	Note string `json:"note"`
}

// ApproveEntryAPI fires pending -> approved. Violations are recomputed from
// the stored compliance code so a penalty-table change between submission
// and approval is reflected; the day score itself is never recomputed.
func ApproveEntryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry ID is required"})
	}

	var req decisionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	entry, err := database.GetEntryByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	if entry.Status.IsTerminal() {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry is already " + string(entry.Status)})
	}

	section, err := database.GetSectionByID(config.GetDB(), entry.SectionID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	violations := scoring.ViolationWeight(section.Kind, entry.ComplianceCode)

	user := c.Locals("user").(*models.User)
	if err := database.ApproveEntry(config.GetDB(), id, user.ID, req.Note, violations); err != nil {
		if err == sql.ErrNoRows {
			// Lost a race with another approver.
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry is no longer pending"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	entry, err = database.GetEntryByID(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true, "entry": entry})
}

// RejectEntryAPI fires pending -> rejected. Only status, note, approver and
// timestamp change; score fields stay as submitted.
func RejectEntryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry ID is required"})
	}

	var req decisionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}
	if req.Note == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "A note is required when rejecting"})
	}

	entry, err := database.GetEntryByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	if entry.Status.IsTerminal() {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry is already " + string(entry.Status)})
	}

	user := c.Locals("user").(*models.User)
	if err := database.RejectEntry(config.GetDB(), id, user.ID, req.Note); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry is no longer pending"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	entry, err = database.GetEntryByID(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true, "entry": entry})
}
