package models

import "time"

type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string     `json:"-" gorm:"not null" validate:"required,min=8"`
	FirstName string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string     `json:"last_name" gorm:"not null" validate:"required"`
	Badge     string     `json:"badge,omitempty" gorm:"type:varchar(20);uniqueIndex"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Roles     []*Role    `json:"roles,omitempty" gorm:"many2many:user_roles;"`
}

type Role struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Role names seeded by migrations.
const (
	RoleWorker   = "worker"
	RoleApprover = "approver"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// CanApprove reports whether the user may act on pending entries.
func (u *User) CanApprove() bool {
	return u.HasRole(RoleApprover) || u.HasRole(RoleAdmin)
}

// CanManageRules reports whether the user may edit scoring rule tables.
func (u *User) CanManageRules() bool {
	return u.HasRole(RoleAdmin)
}

// CanViewReports reports whether the user may access aggregated reports.
func (u *User) CanViewReports() bool {
	return u.HasRole(RoleManager) || u.HasRole(RoleApprover) || u.HasRole(RoleAdmin)
}
