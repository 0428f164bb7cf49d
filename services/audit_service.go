package services

import (
	"gorm.io/gorm"

	"work-arrangement-api/models"
)

// AuditService records and reads the append-only request status history.
// There is deliberately no update or delete path: the append-only invariant
// is enforced structurally by this being the only accessor.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Append writes one audit entry per transition. Entries are never touched
// again after this.
func (s *AuditService) Append(entries []models.RequestStatusHistory) error {
	if len(entries) == 0 {
		return nil
	}
	return s.db.Create(&entries).Error
}

// FindByRequestIDs returns the full history of the given requests, oldest
// first, so ordering reconstructs each request's lifecycle.
func (s *AuditService) FindByRequestIDs(ids []int) ([]models.RequestStatusHistory, error) {
	var entries []models.RequestStatusHistory
	if len(ids) == 0 {
		return entries, nil
	}
	err := s.db.Where("request_id IN ?", ids).
		Order("created_at ASC, history_id ASC").
		Find(&entries).Error
	return entries, err
}

// AuditTrailRow is one history entry joined with its request summary, for
// HR reporting.
type AuditTrailRow struct {
	HistoryID int     `gorm:"column:history_id" json:"history_id"`
	RequestID int     `gorm:"column:request_id" json:"request_id"`
	OldStatus string  `gorm:"column:old_status" json:"old_status"`
	NewStatus string  `gorm:"column:new_status" json:"new_status"`
	ChangedBy int     `gorm:"column:changed_by" json:"changed_by"`
	Reason    *string `gorm:"column:reason" json:"reason,omitempty"`
	CreatedAt string  `gorm:"column:created_at" json:"created_at"`
	StaffID   int     `gorm:"column:staff_id" json:"staff_id"`
	WorkDate  string  `gorm:"column:work_date" json:"work_date"`
	Slot      string  `gorm:"column:slot" json:"slot"`
	Status    string  `gorm:"column:status" json:"status"`
}

// FindByDateRangeAndStaff lists history entries joined with their request
// summary. staffID 0 means all staff; from/to bound the request work date
// and may be empty.
func (s *AuditService) FindByDateRangeAndStaff(staffID int, from, to string) ([]AuditTrailRow, error) {
	q := s.db.Table("request_status_history AS h").
		Select("h.history_id, h.request_id, h.old_status, h.new_status, h.changed_by, h.reason, h.created_at, r.staff_id, r.work_date, r.slot, r.status").
		Joins("JOIN work_requests AS r ON r.request_id = h.request_id")

	if staffID != 0 {
		q = q.Where("r.staff_id = ?", staffID)
	}
	if from != "" {
		q = q.Where("r.work_date >= ?", from)
	}
	if to != "" {
		q = q.Where("r.work_date <= ?", to)
	}

	var rows []AuditTrailRow
	err := q.Order("h.created_at ASC, h.history_id ASC").Scan(&rows).Error
	return rows, err
}
