package database

import (
	"database/sql"

	"factory-kpi/app/models"
)

// ReportRow is one approved entry joined with worker and section labels for
// the range report and CSV export.
type ReportRow struct {
	Entry       *models.KPIEntry `json:"entry"`
	WorkerName  string           `json:"worker_name"`
	WorkerBadge string           `json:"worker_badge"`
	SectionCode string           `json:"section_code"`
	SectionName string           `json:"section_name"`
}

// GetApprovedEntriesInRange returns approved entries between two dates
// (inclusive), optionally restricted to one section.
func GetApprovedEntriesInRange(db *sql.DB, from, to, sectionID string) ([]*ReportRow, error) {
	query := `
		SELECT ` + entryColumns + `,
			u.first_name || ' ' || u.last_name,
			COALESCE(u.badge, ''),
			s.code, s.name
		FROM kpi_entries e
		JOIN users u ON u.id = e.worker_id
		JOIN sections s ON s.id = e.section_id
		WHERE e.status = 'approved' AND e.entry_date >= $1 AND e.entry_date <= $2
	`
	args := []interface{}{from, to}
	if sectionID != "" {
		args = append(args, sectionID)
		query += " AND e.section_id = $3"
	}
	query += " ORDER BY e.entry_date, u.first_name, u.last_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*ReportRow
	for rows.Next() {
		e := &models.KPIEntry{}
		r := &ReportRow{Entry: e}
		err := rows.Scan(
			&e.ID, &e.EntryDate, &e.WorkerID, &e.ApproverID, &e.SectionID, &e.Category,
			&e.Shift, &e.Line, &e.InputHours, &e.StopHours, &e.DefectCount, &e.Metric,
			&e.ComplianceCode, &e.PScore, &e.QScore, &e.CScore, &e.DayScore,
			&e.Overflow, &e.Violations, &e.Status, &e.Note, &e.ApprovedAt,
			&e.CreatedAt, &e.UpdatedAt,
			&r.WorkerName, &r.WorkerBadge, &r.SectionCode, &r.SectionName,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetApprovedEntriesForMonth returns one worker's approved entries in a
// month, or every worker's when workerID is empty. Month is YYYY-MM.
func GetApprovedEntriesForMonth(db *sql.DB, month, workerID string) ([]*models.KPIEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM kpi_entries e
		WHERE e.status = 'approved' AND to_char(e.entry_date, 'YYYY-MM') = $1
	`
	args := []interface{}{month}
	if workerID != "" {
		args = append(args, workerID)
		query += " AND e.worker_id = $2"
	}
	query += " ORDER BY e.worker_id, e.entry_date"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.KPIEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetWorkersWithEntriesInMonth lists distinct workers with approved entries
// in a month, for the monthly report and the summary job.
func GetWorkersWithEntriesInMonth(db *sql.DB, month string) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.first_name, u.last_name, COALESCE(u.badge, '')
		FROM kpi_entries e
		JOIN users u ON u.id = e.worker_id
		WHERE e.status = 'approved' AND to_char(e.entry_date, 'YYYY-MM') = $1
		ORDER BY u.first_name, u.last_name
	`
	rows, err := db.Query(query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Badge); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpsertMonthlySummary stores the materialized monthly total for a worker.
func UpsertMonthlySummary(db *sql.DB, s *models.MonthlySummary) error {
	_, err := db.Exec(`
		INSERT INTO monthly_summaries (worker_id, month, total_score, penalized_score, violations, entry_count, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (worker_id, month) DO UPDATE SET
			total_score = EXCLUDED.total_score,
			penalized_score = EXCLUDED.penalized_score,
			violations = EXCLUDED.violations,
			entry_count = EXCLUDED.entry_count,
			generated_at = NOW()
	`, s.WorkerID, s.Month, s.TotalScore, s.PenalizedScore, s.Violations, s.EntryCount)
	return err
}

// GetMonthlySummaries reads the materialized cache for the dashboard.
func GetMonthlySummaries(db *sql.DB, month string) ([]*models.MonthlySummary, error) {
	query := `
		SELECT ms.id, ms.worker_id, ms.month, ms.total_score, ms.penalized_score,
			ms.violations, ms.entry_count, ms.generated_at
		FROM monthly_summaries ms
		WHERE ms.month = $1
		ORDER BY ms.penalized_score DESC
	`
	rows, err := db.Query(query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.MonthlySummary
	for rows.Next() {
		s := &models.MonthlySummary{}
		if err := rows.Scan(&s.ID, &s.WorkerID, &s.Month, &s.TotalScore, &s.PenalizedScore,
			&s.Violations, &s.EntryCount, &s.GeneratedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
