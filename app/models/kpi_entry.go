package models

import "time"

// KPIEntry is one worker-day submission. Raw inputs and derived scores are
// both stored: scores are computed once at submission from the rule tables
// active at that moment, and rule edits never rewrite them.
type KPIEntry struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	EntryDate      time.Time   `json:"entry_date" gorm:"not null;index;type:date" validate:"required"`
	WorkerID       string      `json:"worker_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ApproverID     *string     `json:"approver_id,omitempty" gorm:"index;type:uuid"`
	SectionID      string      `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Category       *string     `json:"category,omitempty" gorm:"type:varchar(50)"`
	Shift          string      `json:"shift" gorm:"type:varchar(20)"`
	Line           string      `json:"line" gorm:"type:varchar(30)"`
	InputHours     float64     `json:"input_hours" gorm:"type:decimal(6,2);default:0"`
	StopHours      float64     `json:"stop_hours" gorm:"type:decimal(6,2);default:0"`
	DefectCount    int         `json:"defect_count" gorm:"not null;default:0" validate:"gte=0"`
	Metric         float64     `json:"metric" gorm:"not null;type:decimal(8,2);default:0" validate:"gte=0"`
	ComplianceCode string      `json:"compliance_code" gorm:"not null;type:varchar(40);default:'NONE'"`
	PScore         int         `json:"p_score" gorm:"not null;default:0"`
	QScore         int         `json:"q_score" gorm:"not null;default:0"`
	CScore         int         `json:"c_score" gorm:"not null;default:0"`
	DayScore       int         `json:"day_score" gorm:"not null;default:0"`
	Overflow       int         `json:"overflow" gorm:"not null;default:0"`
	Violations     int         `json:"violations" gorm:"not null;default:0"`
	Status         EntryStatus `json:"status" gorm:"not null;type:varchar(10);default:'pending'" validate:"required,oneof=pending approved rejected"`
	Note           string      `json:"note" gorm:"type:text"`
	ApprovedAt     *time.Time  `json:"approved_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Worker         *User       `json:"worker,omitempty" gorm:"foreignKey:WorkerID;references:ID"`
	Approver       *User       `json:"approver,omitempty" gorm:"foreignKey:ApproverID;references:ID"`
	Section        *Section    `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}
