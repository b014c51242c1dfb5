package models

import "time"

// IncidentReport is a quality/safety incident with optional photo evidence
// stored in the blob store under PhotoKey.
type IncidentReport struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	EntryID     *string   `json:"entry_id,omitempty" gorm:"index;type:uuid"`
	SectionID   string    `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ReporterID  string    `json:"reporter_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Description string    `json:"description" gorm:"type:text" validate:"required"`
	PhotoKey    *string   `json:"photo_key,omitempty" gorm:"type:varchar(120)"`
	PhotoURL    string    `json:"photo_url,omitempty" gorm:"-"`
	Status      string    `json:"status" gorm:"not null;type:varchar(10);default:'open'"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	Reporter    *User     `json:"reporter,omitempty" gorm:"foreignKey:ReporterID;references:ID"`
	Section     *Section  `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}
