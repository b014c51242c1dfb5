package database

import (
	"database/sql"
	"strconv"
	"time"

	"factory-kpi/app/models"
)

func placeholder(n int) string {
	return strconv.Itoa(n)
}

// EntryFilters narrows ListEntries. Zero values mean "no filter".
type EntryFilters struct {
	From      string // YYYY-MM-DD
	To        string
	SectionID string
	WorkerID  string
	Status    string
	Limit     int
	Offset    int
}

const entryColumns = `
	e.id, e.entry_date, e.worker_id, e.approver_id, e.section_id, e.category,
	e.shift, e.line, e.input_hours, e.stop_hours, e.defect_count, e.metric,
	e.compliance_code, e.p_score, e.q_score, e.c_score, e.day_score,
	e.overflow, e.violations, e.status, e.note, e.approved_at,
	e.created_at, e.updated_at
`

func scanEntry(row interface{ Scan(...interface{}) error }) (*models.KPIEntry, error) {
	e := &models.KPIEntry{}
	err := row.Scan(
		&e.ID, &e.EntryDate, &e.WorkerID, &e.ApproverID, &e.SectionID, &e.Category,
		&e.Shift, &e.Line, &e.InputHours, &e.StopHours, &e.DefectCount, &e.Metric,
		&e.ComplianceCode, &e.PScore, &e.QScore, &e.CScore, &e.DayScore,
		&e.Overflow, &e.Violations, &e.Status, &e.Note, &e.ApprovedAt,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateEntry(db *sql.DB, e *models.KPIEntry) error {
	query := `
		INSERT INTO kpi_entries (
			entry_date, worker_id, section_id, category, shift, line,
			input_hours, stop_hours, defect_count, metric, compliance_code,
			p_score, q_score, c_score, day_score, overflow, violations, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,'pending')
		RETURNING id, status, created_at, updated_at
	`
	return db.QueryRow(query,
		e.EntryDate, e.WorkerID, e.SectionID, e.Category, e.Shift, e.Line,
		e.InputHours, e.StopHours, e.DefectCount, e.Metric, e.ComplianceCode,
		e.PScore, e.QScore, e.CScore, e.DayScore, e.Overflow, e.Violations,
	).Scan(&e.ID, &e.Status, &e.CreatedAt, &e.UpdatedAt)
}

func GetEntryByID(db *sql.DB, id string) (*models.KPIEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM kpi_entries e WHERE e.id = $1`
	return scanEntry(db.QueryRow(query, id))
}

func ListEntries(db *sql.DB, f EntryFilters) ([]*models.KPIEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM kpi_entries e WHERE 1=1`
	var args []interface{}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		query += cond + placeholder(len(args))
	}

	if f.From != "" {
		add(" AND e.entry_date >= $", f.From)
	}
	if f.To != "" {
		add(" AND e.entry_date <= $", f.To)
	}
	if f.SectionID != "" {
		add(" AND e.section_id = $", f.SectionID)
	}
	if f.WorkerID != "" {
		add(" AND e.worker_id = $", f.WorkerID)
	}
	if f.Status != "" {
		add(" AND e.status = $", f.Status)
	}

	query += " ORDER BY e.entry_date DESC, e.created_at DESC"
	if f.Limit > 0 {
		add(" LIMIT $", f.Limit)
		add(" OFFSET $", f.Offset)
	}

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

// GetPendingEntries is the approval queue, oldest first.
func GetPendingEntries(db *sql.DB, sectionID string) ([]*models.KPIEntry, error) {
	f := EntryFilters{Status: string(models.StatusPending), SectionID: sectionID}
	entries, err := ListEntries(db, f)
	if err != nil {
		return nil, err
	}
	// ListEntries orders newest first; the queue wants oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// ApproveEntry flips pending -> approved, records the approver and note,
// and overwrites violations with the recomputed weight. The status guard is
// in the WHERE clause so a raced double-approve loses cleanly.
func ApproveEntry(db *sql.DB, entryID, approverID, note string, violations int) error {
	res, err := db.Exec(`
		UPDATE kpi_entries
		SET status = 'approved', approver_id = $1, note = $2, violations = $3,
		    approved_at = NOW(), updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`, approverID, note, violations, entryID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RejectEntry flips pending -> rejected. Score fields are left untouched.
func RejectEntry(db *sql.DB, entryID, approverID, note string) error {
	res, err := db.Exec(`
		UPDATE kpi_entries
		SET status = 'rejected', approver_id = $1, note = $2,
		    approved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
	`, approverID, note, entryID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// HasEntryForDay reports whether a worker already submitted for a date in a
// section, used to block accidental duplicates.
func HasEntryForDay(db *sql.DB, workerID, sectionID string, date time.Time) (bool, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM kpi_entries
		WHERE worker_id = $1 AND section_id = $2 AND entry_date = $3 AND status != 'rejected'
	`, workerID, sectionID, date).Scan(&n)
	return n > 0, err
}
