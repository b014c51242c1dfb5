package database

import (
	"database/sql"

	"factory-kpi/app/models"
)

func CreateIncident(db *sql.DB, inc *models.IncidentReport) error {
	query := `
		INSERT INTO incident_reports (entry_id, section_id, reporter_id, description, photo_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at
	`
	return db.QueryRow(query, inc.EntryID, inc.SectionID, inc.ReporterID,
		inc.Description, inc.PhotoKey).Scan(&inc.ID, &inc.Status, &inc.CreatedAt)
}

func GetIncidents(db *sql.DB, sectionID string, limit int) ([]*models.IncidentReport, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `
		SELECT i.id, i.entry_id, i.section_id, i.reporter_id, i.description,
			i.photo_key, i.status, i.created_at
		FROM incident_reports i
	`
	var args []interface{}
	if sectionID != "" {
		args = append(args, sectionID)
		query += " WHERE i.section_id = $1"
	}
	args = append(args, limit)
	query += " ORDER BY i.created_at DESC LIMIT $" + placeholder(len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []*models.IncidentReport
	for rows.Next() {
		inc := &models.IncidentReport{}
		if err := rows.Scan(&inc.ID, &inc.EntryID, &inc.SectionID, &inc.ReporterID,
			&inc.Description, &inc.PhotoKey, &inc.Status, &inc.CreatedAt); err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}
