package services

import (
	"fmt"

	"work-arrangement-api/models"
)

// ProposedSlot is one date/slot pair a staff member wants to occupy.
type ProposedSlot struct {
	Date string
	Slot string
}

// CheckOverlap rejects proposed slots that conflict with the staff member's
// existing requests on the same date. The caller supplies the snapshot of
// existing requests (normally the non-terminal ones); this function never
// touches storage.
//
// Conflict matrix: Full Day conflicts with anything on the date; AM with an
// existing AM or Full Day; PM with an existing PM or Full Day. Each accepted
// proposed slot occupies its date for the rest of the batch, so a batch
// listing the same date twice conflicts with itself. The first conflict
// fails the whole batch.
func CheckOverlap(existing []models.WorkRequest, proposed []ProposedSlot) error {
	occupied := make(map[string]map[string]bool, len(existing))
	for _, req := range existing {
		slots := occupied[req.WorkDate]
		if slots == nil {
			slots = make(map[string]bool, 3)
			occupied[req.WorkDate] = slots
		}
		slots[req.Slot] = true
	}

	for _, p := range proposed {
		slots := occupied[p.Date]
		if slots == nil {
			slots = make(map[string]bool, 3)
			occupied[p.Date] = slots
		}
		if len(slots) > 0 {
			switch p.Slot {
			case models.SlotFullDay:
				return &ConflictError{Message: fmt.Sprintf(
					"cannot request Full Day on %s: an existing request already occupies that date", p.Date)}
			case models.SlotAM:
				if slots[models.SlotAM] || slots[models.SlotFullDay] {
					return &ConflictError{Message: fmt.Sprintf(
						"cannot request AM on %s: the morning slot is already taken", p.Date)}
				}
			case models.SlotPM:
				if slots[models.SlotPM] || slots[models.SlotFullDay] {
					return &ConflictError{Message: fmt.Sprintf(
						"cannot request PM on %s: the afternoon slot is already taken", p.Date)}
				}
			}
		}
		slots[p.Slot] = true
	}

	return nil
}
