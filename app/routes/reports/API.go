package reports

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/scoring"

	"github.com/gofiber/fiber/v2"
)

func parseRange(c *fiber.Ctx) (from, to, sectionID string, err error) {
	from = c.Query("from")
	to = c.Query("to")
	if from == "" || to == "" {
		return "", "", "", fmt.Errorf("from and to are required (YYYY-MM-DD)")
	}
	if _, perr := time.Parse("2006-01-02", from); perr != nil {
		return "", "", "", fmt.Errorf("invalid from date")
	}
	if _, perr := time.Parse("2006-01-02", to); perr != nil {
		return "", "", "", fmt.Errorf("invalid to date")
	}

	if code := c.Query("section"); code != "" {
		section, serr := database.GetSectionByCode(config.GetDB(), code)
		if serr != nil {
			if serr == sql.ErrNoRows {
				return "", "", "", fmt.Errorf("unknown section %q", code)
			}
			return "", "", "", serr
		}
		sectionID = section.ID
	}
	return from, to, sectionID, nil
}

// GetRangeReportAPI lists approved entries in a date range with per-worker
// totals. Scores come from the stored rows; nothing is recomputed here, so
// re-running the report is idempotent.
func GetRangeReportAPI(c *fiber.Ctx) error {
	from, to, sectionID, err := parseRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	rows, err := database.GetApprovedEntriesInRange(config.GetDB(), from, to, sectionID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	type workerTotal struct {
		WorkerID   string `json:"worker_id"`
		WorkerName string `json:"worker_name"`
		Total      int    `json:"total_score"`
		Violations int    `json:"violations"`
		EntryCount int    `json:"entry_count"`
	}
	totals := map[string]*workerTotal{}
	order := []string{}
	for _, r := range rows {
		t, ok := totals[r.Entry.WorkerID]
		if !ok {
			t = &workerTotal{WorkerID: r.Entry.WorkerID, WorkerName: r.WorkerName}
			totals[r.Entry.WorkerID] = t
			order = append(order, r.Entry.WorkerID)
		}
		t.Total += r.Entry.DayScore
		t.Violations += r.Entry.Violations
		t.EntryCount++
	}
	totalList := make([]*workerTotal, 0, len(order))
	for _, id := range order {
		totalList = append(totalList, totals[id])
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"from":    from,
		"to":      to,
		"entries": rows,
		"totals":  totalList,
		"count":   len(rows),
	})
}

// GetMonthlyReportAPI aggregates one month of approved entries per worker
// and applies the violation penalty curve.
func GetMonthlyReportAPI(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "month is required (YYYY-MM)"})
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "invalid month, use YYYY-MM"})
	}
	workerID := c.Query("worker")

	entries, err := database.GetApprovedEntriesForMonth(config.GetDB(), month, workerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	type monthlyRow struct {
		WorkerID string `json:"worker_id"`
		scoring.MonthTotal
	}

	byWorker := map[string][]*models.KPIEntry{}
	order := []string{}
	for _, e := range entries {
		if _, ok := byWorker[e.WorkerID]; !ok {
			order = append(order, e.WorkerID)
		}
		byWorker[e.WorkerID] = append(byWorker[e.WorkerID], e)
	}

	results := make([]*monthlyRow, 0, len(order))
	for _, id := range order {
		results = append(results, &monthlyRow{
			WorkerID:   id,
			MonthTotal: scoring.AggregateMonth(byWorker[id]),
		})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"month":   month,
		"workers": results,
		"count":   len(results),
	})
}

// ExportRangeCSV streams the range report as a CSV download.
func ExportRangeCSV(c *fiber.Ctx) error {
	from, to, sectionID, err := parseRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	rows, err := database.GetApprovedEntriesInRange(config.GetDB(), from, to, sectionID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"date", "worker", "badge", "section", "category", "shift", "line",
		"metric", "defects", "compliance_code",
		"p_score", "q_score", "c_score", "day_score", "overflow", "violations",
	}
	if err := w.Write(header); err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	for _, r := range rows {
		e := r.Entry
		category := ""
		if e.Category != nil {
			category = *e.Category
		}
		record := []string{
			e.EntryDate.Format("2006-01-02"),
			r.WorkerName,
			r.WorkerBadge,
			r.SectionName,
			category,
			e.Shift,
			e.Line,
			strconv.FormatFloat(e.Metric, 'f', 2, 64),
			strconv.Itoa(e.DefectCount),
			e.ComplianceCode,
			strconv.Itoa(e.PScore),
			strconv.Itoa(e.QScore),
			strconv.Itoa(e.CScore),
			strconv.Itoa(e.DayScore),
			strconv.Itoa(e.Overflow),
			strconv.Itoa(e.Violations),
		}
		if err := w.Write(record); err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	filename := fmt.Sprintf("kpi-report-%s-to-%s.csv", from, to)
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
