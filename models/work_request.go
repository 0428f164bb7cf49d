package models

import "time"

// WorkRequest is one remote-work arrangement request for a single date and
// slot. Requests are never physically deleted; terminal statuses are kept
// for reporting and audit.
type WorkRequest struct {
	RequestID       int        `gorm:"primaryKey;column:request_id" json:"request_id"`
	StaffID         int        `gorm:"column:staff_id;index" json:"staff_id"`
	ManagerID       int        `gorm:"column:manager_id;index" json:"manager_id"`
	WorkDate        string     `gorm:"column:work_date;size:10" json:"work_date"` // YYYY-MM-DD
	Slot            string     `gorm:"column:slot;size:10" json:"slot"`
	Status          string     `gorm:"column:status;size:20" json:"status"`
	GroupID         *string    `gorm:"column:group_id;size:36" json:"group_id,omitempty"`
	Reason          string     `gorm:"column:reason;type:text" json:"reason"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	WithdrawReason  *string    `gorm:"column:withdraw_reason;type:text" json:"withdraw_reason,omitempty"`
	ManagerReason   *string    `gorm:"column:manager_reason;type:text" json:"manager_reason,omitempty"`
	CreateAt        time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt        time.Time  `gorm:"column:update_at" json:"update_at"`

	// Relations
	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (WorkRequest) TableName() string {
	return "work_requests"
}
