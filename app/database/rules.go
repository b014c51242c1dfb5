package database

import (
	"database/sql"

	"factory-kpi/app/models"
)

// GetActiveRules returns the active rule table for a section (and category,
// for sections with per-category tables), sorted descending by threshold,
// the order the scorer scans in.
func GetActiveRules(db *sql.DB, sectionID string, category *string) ([]*models.ScoringRule, error) {
	query := `
		SELECT id, section_id, category, threshold, score, is_active, note, created_at, updated_at
		FROM scoring_rules
		WHERE section_id = $1 AND is_active = true AND deleted_at IS NULL
		AND ($2::text IS NULL AND category IS NULL OR category = $2)
		ORDER BY threshold DESC, created_at ASC
	`
	rows, err := db.Query(query, sectionID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRules(rows)
}

// GetRules lists every non-deleted rule of a section, inactive included,
// for the admin editor.
func GetRules(db *sql.DB, sectionID string, category *string) ([]*models.ScoringRule, error) {
	query := `
		SELECT id, section_id, category, threshold, score, is_active, note, created_at, updated_at
		FROM scoring_rules
		WHERE section_id = $1 AND deleted_at IS NULL
		AND ($2::text IS NULL OR category = $2)
		ORDER BY category NULLS FIRST, threshold DESC
	`
	rows, err := db.Query(query, sectionID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRules(rows)
}

func scanRules(rows *sql.Rows) ([]*models.ScoringRule, error) {
	var rules []*models.ScoringRule
	for rows.Next() {
		r := &models.ScoringRule{}
		if err := rows.Scan(&r.ID, &r.SectionID, &r.Category, &r.Threshold, &r.Score,
			&r.IsActive, &r.Note, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func GetRuleByID(db *sql.DB, id string) (*models.ScoringRule, error) {
	r := &models.ScoringRule{}
	query := `
		SELECT id, section_id, category, threshold, score, is_active, note, created_at, updated_at
		FROM scoring_rules WHERE id = $1 AND deleted_at IS NULL
	`
	err := db.QueryRow(query, id).Scan(&r.ID, &r.SectionID, &r.Category, &r.Threshold,
		&r.Score, &r.IsActive, &r.Note, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func CreateRule(db *sql.DB, rule *models.ScoringRule) error {
	query := `
		INSERT INTO scoring_rules (section_id, category, threshold, score, is_active, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, rule.SectionID, rule.Category, rule.Threshold,
		rule.Score, rule.IsActive, rule.Note).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
}

func UpdateRule(db *sql.DB, rule *models.ScoringRule) error {
	query := `
		UPDATE scoring_rules
		SET threshold = $1, score = $2, is_active = $3, note = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, rule.Threshold, rule.Score, rule.IsActive, rule.Note, rule.ID)
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

// DeactivateRule soft-disables a rule; rule rows are never deleted so old
// entries stay explainable.
func DeactivateRule(db *sql.DB, id string) error {
	res, err := db.Exec(`
		UPDATE scoring_rules SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
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
