package sections

import (
	"database/sql"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetSectionsAPI(c *fiber.Ctx) error {
	sections, err := database.GetAllSections(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true, "sections": sections, "count": len(sections)})
}

// GetSectionRulesAPI returns the active rule table the entry forms score
// against, in evaluation order.
func GetSectionRulesAPI(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Section code is required"})
	}

	section, err := database.GetSectionByCode(config.GetDB(), code)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Section not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	var category *string
	if cat := c.Query("category"); cat != "" {
		category = &cat
	}
	if section.Kind == models.KindMolding && category == nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "category is required for Molding"})
	}

	rules, err := database.GetActiveRules(config.GetDB(), section.ID, category)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"section": section,
		"rules":   rules,
		"count":   len(rules),
	})
}
