package models

import "time"

// MonthlySummary is a materialized per-worker monthly total, refreshed by
// the scheduler. Reports always re-derive live; this is a dashboard cache.
type MonthlySummary struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkerID       string    `json:"worker_id" gorm:"not null;index;type:uuid"`
	Month          string    `json:"month" gorm:"not null;index;type:varchar(7)"` // YYYY-MM
	TotalScore     int       `json:"total_score" gorm:"not null;default:0"`
	PenalizedScore float64   `json:"penalized_score" gorm:"not null;type:decimal(8,2);default:0"`
	Violations     int       `json:"violations" gorm:"not null;default:0"`
	EntryCount     int       `json:"entry_count" gorm:"not null;default:0"`
	GeneratedAt    time.Time `json:"generated_at" gorm:"autoUpdateTime"`
	Worker         *User     `json:"worker,omitempty" gorm:"foreignKey:WorkerID;references:ID"`
}
