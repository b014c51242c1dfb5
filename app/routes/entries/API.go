package entries

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/scoring"

	"github.com/gofiber/fiber/v2"
)

// EntryRequest is the submit/preview payload. Numeric fields arrive as
// interface{} because the forms send whatever is in the input box; anything
// non-numeric is coerced to zero rather than rejected.
type EntryRequest struct {
	SectionCode    string      `json:"section_code"`
	Category       *string     `json:"category,omitempty"`
	EntryDate      string      `json:"entry_date"`
	WorkerID       string      `json:"worker_id,omitempty"`
	Shift          string      `json:"shift"`
	Line           string      `json:"line"`
	InputHours     interface{} `json:"input_hours"`
	StopHours      interface{} `json:"stop_hours"`
	DefectCount    interface{} `json:"defect_count"`
	Metric         interface{} `json:"metric"`
	ComplianceCode string      `json:"compliance_code"`
}

func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return n
	case string:
		return scoring.ParseMetric(n)
	case int:
		if n < 0 {
			return 0
		}
		return float64(n)
	}
	return 0
}

func coerceInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil || i < 0 {
			return 0
		}
		return i
	case int:
		if n < 0 {
			return 0
		}
		return n
	}
	return 0
}

// resolveAndScore validates the request, loads the section and its active
// rule table, and evaluates the scores. Shared by submit and preview.
func resolveAndScore(req *EntryRequest) (*models.KPIEntry, *models.Section, error) {
	if req.SectionCode == "" {
		return nil, nil, fmt.Errorf("section_code is required")
	}
	if req.EntryDate == "" {
		return nil, nil, fmt.Errorf("entry_date is required")
	}
	date, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid entry_date, use YYYY-MM-DD")
	}

	section, err := database.GetSectionByCode(config.GetDB(), req.SectionCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, fmt.Errorf("unknown section %q", req.SectionCode)
		}
		return nil, nil, err
	}

	category := req.Category
	if category != nil && *category == "" {
		category = nil
	}
	if section.Kind == models.KindMolding && category == nil {
		return nil, nil, fmt.Errorf("category is required for %s", section.Name)
	}

	rules, err := database.GetActiveRules(config.GetDB(), section.ID, category)
	if err != nil {
		return nil, nil, err
	}

	code := req.ComplianceCode
	if code == "" {
		code = models.ComplianceNone
	}

	metric := coerceFloat(req.Metric)
	defects := coerceInt(req.DefectCount)
	res := scoring.Evaluate(section, rules, metric, defects, code)

	entry := &models.KPIEntry{
		EntryDate:      date,
		SectionID:      section.ID,
		Category:       category,
		Shift:          req.Shift,
		Line:           req.Line,
		InputHours:     coerceFloat(req.InputHours),
		StopHours:      coerceFloat(req.StopHours),
		DefectCount:    defects,
		Metric:         metric,
		ComplianceCode: code,
		PScore:         res.PScore,
		QScore:         res.QScore,
		CScore:         res.CScore,
		DayScore:       res.DayScore,
		Overflow:       res.Overflow,
		Violations:     res.Violations,
		Status:         models.StatusPending,
	}
	return entry, section, nil
}

// SubmitEntryAPI stores a new pending entry with scores computed from the
// rule tables active right now. Raw inputs are stored alongside so reports
// can re-derive.
func SubmitEntryAPI(c *fiber.Ctx) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	entry, _, err := resolveAndScore(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	user := c.Locals("user").(*models.User)
	entry.WorkerID = user.ID
	// Approvers and admins may submit on behalf of a worker.
	if req.WorkerID != "" && req.WorkerID != user.ID {
		if !user.CanApprove() {
			return c.Status(403).JSON(fiber.Map{"ok": false, "error": "Cannot submit for another worker"})
		}
		entry.WorkerID = req.WorkerID
	}

	exists, err := database.HasEntryForDay(config.GetDB(), entry.WorkerID, entry.SectionID, entry.EntryDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	if exists {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "An entry for this worker, section and date already exists"})
	}

	if err := database.CreateEntry(config.GetDB(), entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "entry": entry})
}

// PreviewEntryAPI runs the same scoring without persisting, for the live
// score preview on the entry forms.
func PreviewEntryAPI(c *fiber.Ctx) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	entry, _, err := resolveAndScore(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"ok": true,
		"scores": scoring.Result{
			PScore:     entry.PScore,
			QScore:     entry.QScore,
			CScore:     entry.CScore,
			DayScore:   entry.DayScore,
			Overflow:   entry.Overflow,
			Violations: entry.Violations,
		},
	})
}

func ListEntriesAPI(c *fiber.Ctx) error {
	f := database.EntryFilters{
		From:     c.Query("from"),
		To:       c.Query("to"),
		WorkerID: c.Query("worker"),
		Status:   c.Query("status"),
		Limit:    c.QueryInt("limit", 100),
		Offset:   (c.QueryInt("page", 1) - 1) * c.QueryInt("limit", 100),
	}
	if f.Status != "" && !models.EntryStatus(f.Status).Valid() {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid status filter"})
	}
	if code := c.Query("section"); code != "" {
		section, err := database.GetSectionByCode(config.GetDB(), code)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Section not found"})
			}
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		f.SectionID = section.ID
	}

	// Workers only see their own entries.
	user := c.Locals("user").(*models.User)
	if !user.CanViewReports() {
		f.WorkerID = user.ID
	}

	entries, err := database.ListEntries(config.GetDB(), f)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "entries": entries, "count": len(entries)})
}

func GetEntryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Entry ID is required"})
	}

	entry, err := database.GetEntryByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	user := c.Locals("user").(*models.User)
	if !user.CanViewReports() && entry.WorkerID != user.ID {
		return c.Status(403).JSON(fiber.Map{"ok": false, "error": "Access denied"})
	}

	return c.JSON(fiber.Map{"ok": true, "entry": entry})
}
