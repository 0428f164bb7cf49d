package models

import "strings"

const (
	// Canonical status literals stored in work_requests.status and exchanged
	// on the wire. Consumers match these exactly.
	StatusPending           = "Pending"
	StatusApproved          = "Approved"
	StatusRejected          = "Rejected"
	StatusCancelled         = "Cancelled"
	StatusPendingWithdrawal = "Pending Withdrawal"
	StatusWithdrawn         = "Withdrawn"

	// StatusNone is the virtual pre-creation status. It is never persisted on
	// a request; it only appears as old_status of the first audit entry.
	StatusNone = "N/A"
)

const (
	SlotAM      = "AM"
	SlotPM      = "PM"
	SlotFullDay = "Full Day"
)

var (
	statusSynonyms = map[string][]string{
		StatusPending: {
			"pending",
		},
		StatusApproved: {
			"approved",
		},
		StatusRejected: {
			"rejected",
		},
		StatusCancelled: {
			"cancelled",
			"canceled",
		},
		StatusPendingWithdrawal: {
			"pending withdrawal",
			"pending_withdrawal",
			"pendingwithdrawal",
		},
		StatusWithdrawn: {
			"withdrawn",
		},
	}

	slotSynonyms = map[string][]string{
		SlotAM: {
			"am",
			"morning",
		},
		SlotPM: {
			"pm",
			"afternoon",
		},
		SlotFullDay: {
			"full day",
			"full_day",
			"fullday",
		},
	}

	statusAliasToCanonical = buildAliasMap(statusSynonyms)
	slotAliasToCanonical   = buildAliasMap(slotSynonyms)
)

func buildAliasMap(synonyms map[string][]string) map[string]string {
	aliasMap := make(map[string]string)
	for canonical, aliases := range synonyms {
		aliasMap[normalizeLiteral(canonical)] = canonical
		for _, alias := range aliases {
			aliasMap[normalizeLiteral(alias)] = canonical
		}
	}
	return aliasMap
}

func normalizeLiteral(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CanonicalStatus resolves a status literal or alias to its canonical form.
// The second result is false for unknown values.
func CanonicalStatus(value string) (string, bool) {
	canonical, ok := statusAliasToCanonical[normalizeLiteral(value)]
	return canonical, ok
}

// CanonicalSlot resolves a slot literal or alias to its canonical form.
func CanonicalSlot(value string) (string, bool) {
	canonical, ok := slotAliasToCanonical[normalizeLiteral(value)]
	return canonical, ok
}

// IsTerminalStatus reports whether a request in the given status can no
// longer transition.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusRejected, StatusCancelled, StatusWithdrawn:
		return true
	}
	return false
}

// ActiveStatuses are the non-terminal statuses that occupy a date slot for
// overlap purposes.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusApproved, StatusPendingWithdrawal}
}
