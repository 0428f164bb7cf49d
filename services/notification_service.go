package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"work-arrangement-api/config"
	"work-arrangement-api/models"
)

// TransitionEvent describes one status change for notification fan-out.
type TransitionEvent struct {
	RequestID  int
	ChangedBy  int
	ReceiverID int
	OldStatus  string
	NewStatus  string
	Reason     string
	ActionKind string
}

// Notifier receives transition events fire-and-forget. Failures must never
// affect the transition that produced the event.
type Notifier interface {
	DispatchTransition(event TransitionEvent)
}

// NotificationService stores in-app notifications and sends best-effort
// emails to the receiver of each transition.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// DispatchTransition records a notification for the receiver and emails
// them when SMTP is configured. Runs asynchronously; errors are logged and
// swallowed.
func (s *NotificationService) DispatchTransition(event TransitionEvent) {
	go func() {
		if err := s.deliver(event); err != nil {
			log.Printf("notification delivery failed for request %d: %v", event.RequestID, err)
		}
	}()
}

func (s *NotificationService) deliver(event TransitionEvent) error {
	title, notifType := notificationPresentation(event)
	message := fmt.Sprintf("Request #%d changed from %s to %s", event.RequestID, event.OldStatus, event.NewStatus)
	if event.Reason != "" {
		message += fmt.Sprintf(" (reason: %s)", event.Reason)
	}

	requestID := event.RequestID
	n := models.Notification{
		StaffID:          event.ReceiverID,
		Title:            title,
		Message:          message,
		Type:             notifType,
		RelatedRequestID: &requestID,
		IsRead:           false,
		CreateAt:         nowUTC(),
	}
	if err := s.db.Create(&n).Error; err != nil {
		return err
	}

	var receiver models.Staff
	if err := s.db.Where("staff_id = ? AND delete_at IS NULL", event.ReceiverID).First(&receiver).Error; err != nil {
		return err
	}
	body := fmt.Sprintf("<p>%s</p><p>%s</p>", title, message)
	if err := config.SendMail([]string{receiver.Email}, title, body); err != nil {
		// In-app notification already stored; email is best-effort on top.
		log.Printf("notification email to staff %d failed: %v", event.ReceiverID, err)
	}
	return nil
}

func notificationPresentation(event TransitionEvent) (title, notifType string) {
	switch event.NewStatus {
	case models.StatusApproved:
		if event.OldStatus == models.StatusPendingWithdrawal {
			return "Withdrawal request rejected", "warning"
		}
		return "Work arrangement request approved", "success"
	case models.StatusRejected:
		return "Work arrangement request rejected", "error"
	case models.StatusCancelled:
		return "Work arrangement request cancelled", "info"
	case models.StatusPendingWithdrawal:
		return "Withdrawal requested", "warning"
	case models.StatusWithdrawn:
		return "Work arrangement request withdrawn", "warning"
	case models.StatusPending:
		return "New work arrangement request", "info"
	}
	return "Work arrangement request updated", "info"
}
