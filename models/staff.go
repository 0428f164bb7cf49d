package models

import (
	"strings"
	"time"
)

// Role IDs used by route gates.
const (
	RoleStaff   = 1
	RoleManager = 2
	RoleHR      = 3
)

// PositionAutoApproved marks the top role whose requests skip manager review.
const PositionAutoApproved = "MD"

type Staff struct {
	StaffID    int        `gorm:"primaryKey;column:staff_id" json:"staff_id"`
	StaffFname string     `gorm:"column:staff_fname" json:"staff_fname"`
	StaffLname string     `gorm:"column:staff_lname" json:"staff_lname"`
	Email      string     `gorm:"column:email;unique" json:"email"`
	Password   string     `gorm:"column:password" json:"-"`
	RoleID     int        `gorm:"column:role_id" json:"role_id"`
	ManagerID  *int       `gorm:"column:manager_id" json:"manager_id,omitempty"`
	Position   string     `gorm:"column:position" json:"position"`
	Department string     `gorm:"column:department" json:"department"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

type Role struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (Staff) TableName() string {
	return "staffs"
}

func (Role) TableName() string {
	return "roles"
}

// DisplayName is the name shown in department listings and notifications.
func (s *Staff) DisplayName() string {
	return strings.TrimSpace(s.StaffFname + " " + s.StaffLname)
}

// IsAutoApproved reports whether the staff's position takes the fast-path
// creation flow.
func (s *Staff) IsAutoApproved() bool {
	return strings.EqualFold(strings.TrimSpace(s.Position), PositionAutoApproved)
}
