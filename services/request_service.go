package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"work-arrangement-api/models"
)

// AutoRejectReason is stamped on requests rejected by the expiry sweep.
const AutoRejectReason = "Automatically rejected: the requested date passed without manager action"

// TransitionAction names one edge of the request state machine.
type TransitionAction string

const (
	ActionApprove           TransitionAction = "approve"
	ActionReject            TransitionAction = "reject"
	ActionCancel            TransitionAction = "cancel"
	ActionStaffWithdraw     TransitionAction = "staff_withdraw"
	ActionManagerWithdraw   TransitionAction = "manager_withdraw"
	ActionApproveWithdrawal TransitionAction = "approve_withdrawal"
	ActionRejectWithdrawal  TransitionAction = "reject_withdrawal"
)

type transitionRule struct {
	from         string
	to           string
	needsReason  bool
	reasonColumn string
	notifyStaff  bool // receiver is the submitting staff; otherwise the manager
}

var transitionRules = map[TransitionAction]transitionRule{
	ActionApprove:           {from: models.StatusPending, to: models.StatusApproved, notifyStaff: true},
	ActionReject:            {from: models.StatusPending, to: models.StatusRejected, needsReason: true, reasonColumn: "rejection_reason", notifyStaff: true},
	ActionCancel:            {from: models.StatusPending, to: models.StatusCancelled},
	ActionStaffWithdraw:     {from: models.StatusApproved, to: models.StatusPendingWithdrawal, needsReason: true, reasonColumn: "withdraw_reason"},
	ActionManagerWithdraw:   {from: models.StatusApproved, to: models.StatusWithdrawn, needsReason: true, reasonColumn: "manager_reason", notifyStaff: true},
	ActionApproveWithdrawal: {from: models.StatusPendingWithdrawal, to: models.StatusWithdrawn, notifyStaff: true},
	ActionRejectWithdrawal:  {from: models.StatusPendingWithdrawal, to: models.StatusApproved, notifyStaff: true},
}

// RequestService is the request lifecycle engine: creation (standard and
// fast path) and every status transition, individually or in bulk.
type RequestService struct {
	db       *gorm.DB
	audit    *AuditService
	notifier Notifier
	now      func() time.Time
	quota    int
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{
		db:       db,
		audit:    NewAuditService(db),
		notifier: NewNotificationService(db),
		now:      nowUTC,
		quota:    DefaultWeeklyQuota,
	}
}

// CreateCommand describes one submission: either explicit dates or a
// recurring definition (start date + interval token + event count).
type CreateCommand struct {
	Dates             []string
	StartDate         string
	RecurringInterval string
	NumEvents         int
	Slot              string
	Reason            string
}

// CreateResult carries the persisted requests, the per-date policy checks
// and any advisory quota notices.
type CreateResult struct {
	Requests []models.WorkRequest `json:"requests"`
	Checks   []DateCheck          `json:"checks,omitempty"`
	Notices  []string             `json:"notices,omitempty"`
}

// Create runs the full submission pipeline: recurrence expansion, date
// policy, overlap detection, creation policy, insert, audit append and the
// advisory weekly-quota check. today is the injected current date; pass the
// zero value to use the wall clock.
func (s *RequestService) Create(staff *models.Staff, cmd CreateCommand, today time.Time) (*CreateResult, error) {
	slot, ok := models.CanonicalSlot(cmd.Slot)
	if !ok {
		return nil, newValidationError(fmt.Sprintf("invalid slot %q", cmd.Slot))
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, newValidationError("reason is required")
	}

	var (
		dates   []string
		groupID *string
	)
	if cmd.RecurringInterval != "" {
		weeks, err := ParseRecurringInterval(cmd.RecurringInterval)
		if err != nil {
			return nil, err
		}
		expanded, gid, err := ExpandRecurring(cmd.StartDate, weeks, cmd.NumEvents)
		if err != nil {
			return nil, err
		}
		dates = expanded
		groupID = &gid
	} else {
		if len(cmd.Dates) == 0 {
			return nil, newValidationError("no dates provided")
		}
		dates = cmd.Dates
	}

	if today.IsZero() {
		today = s.now()
	}
	checks, allValid := CheckDates(dates, today)
	if !allValid {
		return &CreateResult{Checks: checks}, newValidationError("one or more dates are not allowed")
	}

	policy := CreationPolicyFor(staff)
	managerID := staff.StaffID
	if staff.ManagerID != nil {
		managerID = *staff.ManagerID
	} else if _, standard := policy.(StandardApproval); standard {
		return nil, newValidationError("staff member has no manager assigned")
	}

	var existing []models.WorkRequest
	if err := s.db.
		Where("staff_id = ? AND work_date IN ? AND status IN ?", staff.StaffID, dates, models.ActiveStatuses()).
		Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load existing requests: %w", err)
	}
	proposed := make([]ProposedSlot, 0, len(dates))
	for _, date := range dates {
		proposed = append(proposed, ProposedSlot{Date: date, Slot: slot})
	}
	if err := CheckOverlap(existing, proposed); err != nil {
		return nil, err
	}

	status := policy.InitialStatus()
	now := s.now()
	requests := make([]models.WorkRequest, 0, len(dates))
	for _, date := range dates {
		requests = append(requests, models.WorkRequest{
			StaffID:   staff.StaffID,
			ManagerID: managerID,
			WorkDate:  date,
			Slot:      slot,
			Status:    status,
			GroupID:   groupID,
			Reason:    reason,
			CreateAt:  now,
			UpdateAt:  now,
		})
	}
	if err := s.db.Create(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to insert requests: %w", err)
	}

	// The first audit entry records the status the request actually entered:
	// N/A -> Pending on the standard path, N/A -> Approved on the fast path.
	entries := make([]models.RequestStatusHistory, 0, len(requests))
	for _, req := range requests {
		entries = append(entries, models.RequestStatusHistory{
			RequestID: req.RequestID,
			OldStatus: models.StatusNone,
			NewStatus: status,
			ChangedBy: staff.StaffID,
			CreatedAt: now,
		})
	}
	if err := s.audit.Append(entries); err != nil {
		log.Printf("audit append failed for created requests %v: %v", requestIDs(requests), err)
	}

	notices, err := s.quotaNotices(staff.StaffID, dates)
	if err != nil {
		// Advisory only; never blocks creation.
		log.Printf("weekly quota check failed for staff %d: %v", staff.StaffID, err)
		notices = nil
	}

	if status == models.StatusPending {
		for _, req := range requests {
			s.notifier.DispatchTransition(TransitionEvent{
				RequestID:  req.RequestID,
				ChangedBy:  staff.StaffID,
				ReceiverID: req.ManagerID,
				OldStatus:  models.StatusNone,
				NewStatus:  models.StatusPending,
				ActionKind: "create",
			})
		}
	}

	return &CreateResult{Requests: requests, Checks: checks, Notices: notices}, nil
}

func (s *RequestService) quotaNotices(staffID int, batchDates []string) ([]string, error) {
	minDate, maxDate := "", ""
	for _, raw := range batchDates {
		d, err := time.ParseInLocation(DateLayout, raw, time.UTC)
		if err != nil {
			continue
		}
		weekFrom := WeekStart(d).Format(DateLayout)
		weekTo := WeekStart(d).AddDate(0, 0, 6).Format(DateLayout)
		if minDate == "" || weekFrom < minDate {
			minDate = weekFrom
		}
		if maxDate == "" || weekTo > maxDate {
			maxDate = weekTo
		}
	}
	if minDate == "" {
		return nil, nil
	}

	var requests []models.WorkRequest
	if err := s.db.
		Where("staff_id = ? AND status IN ? AND work_date >= ? AND work_date <= ?",
			staffID, []string{models.StatusApproved, models.StatusPending}, minDate, maxDate).
		Find(&requests).Error; err != nil {
		return nil, err
	}

	var notices []string
	for _, week := range FlagOverQuotaWeeks(requests, batchDates, s.quota) {
		notices = append(notices, fmt.Sprintf(
			"weekly remote-day quota exceeded for the week starting %s", week))
	}
	return notices, nil
}

// Transition moves every id currently in the action's source state to its
// target state and returns how many rows actually changed. Ids not in the
// source state are skipped silently; zero changed rows is not an error for
// bulk callers. The update is a single conditional write guarded by the
// source status, with the candidate rows locked, so two racing transitions
// cannot both succeed from the same state.
func (s *RequestService) Transition(ids []int, action TransitionAction, actorID int, reason string) (int64, error) {
	changed, _, err := s.transition(ids, action, actorID, reason, false)
	return changed, err
}

// transition is the shared engine behind Transition and TransitionOne. With
// classify set, zero eligible rows triggers a count of the ids inside the
// same transaction, so the not-found/wrong-state verdict is consistent with
// the snapshot the transition saw.
func (s *RequestService) transition(ids []int, action TransitionAction, actorID int, reason string, classify bool) (int64, int64, error) {
	rule, ok := transitionRules[action]
	if !ok {
		return 0, 0, newValidationError(fmt.Sprintf("unknown transition %q", action))
	}
	if len(ids) == 0 {
		return 0, 0, newValidationError("no request ids provided")
	}
	for _, id := range ids {
		if id <= 0 {
			return 0, 0, newValidationError(fmt.Sprintf("invalid request id %d", id))
		}
	}
	reason = strings.TrimSpace(reason)
	if rule.needsReason && reason == "" {
		return 0, 0, newValidationError(fmt.Sprintf("%s requires a reason", action))
	}

	now := s.now()
	var changed []models.WorkRequest
	var existing int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("request_id IN ? AND status = ?", ids, rule.from).
			Find(&changed).Error; err != nil {
			return err
		}
		if len(changed) == 0 {
			if classify {
				return tx.Model(&models.WorkRequest{}).
					Where("request_id IN ?", ids).
					Count(&existing).Error
			}
			return nil
		}

		eligible := requestIDs(changed)
		fields := map[string]interface{}{
			"status":    rule.to,
			"update_at": now,
		}
		if rule.reasonColumn != "" {
			fields[rule.reasonColumn] = reason
		}
		res := tx.Model(&models.WorkRequest{}).
			Where("request_id IN ? AND status = ?", eligible, rule.from).
			Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(eligible)) {
			return fmt.Errorf("conditional update touched %d of %d rows", res.RowsAffected, len(eligible))
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("transition %s failed: %w", action, err)
	}
	if len(changed) == 0 {
		return 0, existing, nil
	}

	// The committed status change is authoritative; the audit append is
	// best-effort and an append failure is logged, never rolled back.
	entries := make([]models.RequestStatusHistory, 0, len(changed))
	for _, req := range changed {
		entry := models.RequestStatusHistory{
			RequestID: req.RequestID,
			OldStatus: rule.from,
			NewStatus: rule.to,
			ChangedBy: actorID,
			CreatedAt: now,
		}
		if reason != "" {
			r := reason
			entry.Reason = &r
		}
		entries = append(entries, entry)
	}
	if err := s.audit.Append(entries); err != nil {
		log.Printf("audit append failed after %s of %v: %v", action, requestIDs(changed), err)
	}

	for _, req := range changed {
		receiver := req.ManagerID
		if rule.notifyStaff {
			receiver = req.StaffID
		}
		s.notifier.DispatchTransition(TransitionEvent{
			RequestID:  req.RequestID,
			ChangedBy:  actorID,
			ReceiverID: receiver,
			OldStatus:  rule.from,
			NewStatus:  rule.to,
			Reason:     reason,
			ActionKind: string(action),
		})
	}

	return int64(len(changed)), existing, nil
}

// TransitionOne applies a transition to a single request and distinguishes
// "unknown id" from "wrong state" for the caller.
func (s *RequestService) TransitionOne(id int, action TransitionAction, actorID int, reason string) error {
	count, existing, err := s.transition([]int{id}, action, actorID, reason, true)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if existing == 0 {
		return ErrRequestNotFound
	}
	return ErrWrongState
}

// AutoRejectExpired bulk-rejects Pending requests whose work date passed
// more than olderThanDays ago. It reuses the standard reject transition,
// acting per manager so each audit entry names the reviewer of record.
func (s *RequestService) AutoRejectExpired(olderThanDays int) (int64, error) {
	if olderThanDays < 0 {
		olderThanDays = 0
	}
	cutoff := truncateToDay(s.now()).AddDate(0, 0, -olderThanDays).Format(DateLayout)

	var stale []models.WorkRequest
	if err := s.db.
		Where("status = ? AND work_date < ?", models.StatusPending, cutoff).
		Find(&stale).Error; err != nil {
		return 0, fmt.Errorf("failed to find stale requests: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	byManager := make(map[int][]int)
	for _, req := range stale {
		byManager[req.ManagerID] = append(byManager[req.ManagerID], req.RequestID)
	}

	var total int64
	for managerID, ids := range byManager {
		count, err := s.Transition(ids, ActionReject, managerID, AutoRejectReason)
		if err != nil {
			return total, err
		}
		total += count
	}
	return total, nil
}

func requestIDs(requests []models.WorkRequest) []int {
	ids := make([]int, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.RequestID)
	}
	return ids
}
