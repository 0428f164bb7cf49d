package models

import "time"

// RequestStatusHistory is one immutable audit entry per status transition.
// The table is append-only: nothing in the codebase updates or deletes rows,
// and ordering by created_at reconstructs a request's full history. The
// first entry for any request carries OldStatus = StatusNone.
type RequestStatusHistory struct {
	HistoryID int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	RequestID int       `gorm:"column:request_id;index" json:"request_id"`
	OldStatus string    `gorm:"column:old_status;size:20" json:"old_status"`
	NewStatus string    `gorm:"column:new_status;size:20" json:"new_status"`
	ChangedBy int       `gorm:"column:changed_by" json:"changed_by"`
	Reason    *string   `gorm:"column:reason;type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table for RequestStatusHistory.
func (RequestStatusHistory) TableName() string {
	return "request_status_history"
}
