package rules

import (
	"database/sql"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"

	"github.com/gofiber/fiber/v2"
)

// Rule edits take effect on the next scoring call. Already-submitted
// entries keep the scores they were stored with.

func GetRulesAPI(c *fiber.Ctx) error {
	code := c.Query("section")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "section is required"})
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

	rules, err := database.GetRules(config.GetDB(), section.ID, category)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "section": section, "rules": rules, "count": len(rules)})
}

type ruleRequest struct {
	SectionCode string  `json:"section_code"`
	Category    *string `json:"category,omitempty"`
	Threshold   float64 `json:"threshold"`
	Score       int     `json:"score"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Note        string  `json:"note"`
}

func CreateRuleAPI(c *fiber.Ctx) error {
	var req ruleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}
	if req.SectionCode == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "section_code is required"})
	}
	if req.Threshold < 0 || req.Score < 0 {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "threshold and score must be non-negative"})
	}

	section, err := database.GetSectionByCode(config.GetDB(), req.SectionCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Section not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	category := req.Category
	if category != nil && *category == "" {
		category = nil
	}
	if section.Kind == models.KindMolding && category == nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "category is required for Molding rules"})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rule := &models.ScoringRule{
		SectionID: section.ID,
		Category:  category,
		Threshold: req.Threshold,
		Score:     req.Score,
		IsActive:  active,
		Note:      req.Note,
	}
	if err := database.CreateRule(config.GetDB(), rule); err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	// Duplicate thresholds are legal but usually a typo; flag them.
	warning := ""
	if existing, err := database.GetActiveRules(config.GetDB(), section.ID, category); err == nil {
		for _, r := range existing {
			if r.ID != rule.ID && r.Threshold == rule.Threshold {
				warning = "Another active rule has the same threshold; the older one wins ties"
				break
			}
		}
	}

	resp := fiber.Map{"ok": true, "rule": rule}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(resp)
}

func UpdateRuleAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Rule ID is required"})
	}

	rule, err := database.GetRuleByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Rule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	var req ruleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}
	if req.Threshold < 0 || req.Score < 0 {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "threshold and score must be non-negative"})
	}

	rule.Threshold = req.Threshold
	rule.Score = req.Score
	rule.Note = req.Note
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := database.UpdateRule(config.GetDB(), rule); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Rule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "rule": rule})
}

func DeactivateRuleAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Rule ID is required"})
	}

	if err := database.DeactivateRule(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Rule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true})
}
