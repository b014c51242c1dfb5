package models

import "time"

// Section is a factory area with its own scoring scheme and rule table.
type Section struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code       string         `json:"code" gorm:"uniqueIndex;not null;type:varchar(30)" validate:"required"`
	Name       string         `json:"name" gorm:"not null" validate:"required"`
	Kind       SectionKind    `json:"kind" gorm:"not null;type:varchar(10)" validate:"required,oneof=standard molding hybrid"`
	Fallback   FallbackPolicy `json:"fallback" gorm:"not null;type:varchar(10);default:'zero'"`
	Categories []string       `json:"categories,omitempty" gorm:"-"`
	IsActive   bool           `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}
