package models

import "time"

// ScoringRule is one row of a per-section productivity threshold table.
// Category is set only for sections with per-product tables (Molding).
type ScoringRule struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SectionID string     `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Category  *string    `json:"category,omitempty" gorm:"type:varchar(50);index"`
	Threshold float64    `json:"threshold" gorm:"not null;type:decimal(8,2)" validate:"gte=0"`
	Score     int        `json:"score" gorm:"not null;default:0" validate:"gte=0"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	Note      string     `json:"note" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Section   *Section   `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}
