package database

import (
	"database/sql"

	"factory-kpi/app/models"
)

func GetAllSections(db *sql.DB) ([]*models.Section, error) {
	query := `
		SELECT id, code, name, kind, fallback, is_active, created_at, updated_at
		FROM sections
		WHERE is_active = true
		ORDER BY name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		s := &models.Section{}
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Kind, &s.Fallback, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	for _, s := range sections {
		cats, err := GetSectionCategories(db, s.ID)
		if err != nil {
			return nil, err
		}
		s.Categories = cats
	}
	return sections, nil
}

func GetSectionByCode(db *sql.DB, code string) (*models.Section, error) {
	s := &models.Section{}
	query := `
		SELECT id, code, name, kind, fallback, is_active, created_at, updated_at
		FROM sections WHERE code = $1 AND is_active = true
	`
	err := db.QueryRow(query, code).Scan(
		&s.ID, &s.Code, &s.Name, &s.Kind, &s.Fallback, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Categories, err = GetSectionCategories(db, s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetSectionByID(db *sql.DB, id string) (*models.Section, error) {
	s := &models.Section{}
	query := `
		SELECT id, code, name, kind, fallback, is_active, created_at, updated_at
		FROM sections WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Kind, &s.Fallback, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetSectionCategories lists the distinct rule-table categories of a section.
// Empty for sections with a single table.
func GetSectionCategories(db *sql.DB, sectionID string) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM scoring_rules
		WHERE section_id = $1 AND category IS NOT NULL AND deleted_at IS NULL
		ORDER BY category
	`
	rows, err := db.Query(query, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}
