package models

import "testing"

func TestCanonicalStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{" APPROVED ", StatusApproved, true},
		{"canceled", StatusCancelled, true},
		{"pending_withdrawal", StatusPendingWithdrawal, true},
		{"Pending Withdrawal", StatusPendingWithdrawal, true},
		{"withdrawn", StatusWithdrawn, true},
		{"N/A", "", false}, // never accepted as input
		{"done", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := CanonicalStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CanonicalStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanonicalSlot(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"AM", SlotAM, true},
		{"morning", SlotAM, true},
		{"Afternoon", SlotPM, true},
		{"full day", SlotFullDay, true},
		{"full_day", SlotFullDay, true},
		{"evening", "", false},
	}

	for _, tc := range cases {
		got, ok := CanonicalSlot(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CanonicalSlot(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	for _, status := range []string{StatusRejected, StatusCancelled, StatusWithdrawn} {
		if !IsTerminalStatus(status) {
			t.Fatalf("expected %s terminal", status)
		}
	}
	for _, status := range []string{StatusPending, StatusApproved, StatusPendingWithdrawal} {
		if IsTerminalStatus(status) {
			t.Fatalf("expected %s non-terminal", status)
		}
	}
}

func TestIsAutoApproved(t *testing.T) {
	if !(&Staff{Position: "MD"}).IsAutoApproved() {
		t.Fatalf("expected MD auto-approved")
	}
	if !(&Staff{Position: "md"}).IsAutoApproved() {
		t.Fatalf("expected case-insensitive position match")
	}
	if (&Staff{Position: "Analyst"}).IsAutoApproved() {
		t.Fatalf("expected Analyst not auto-approved")
	}
}
