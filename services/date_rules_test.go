package services

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

func TestCheckDatesWeekendAlwaysInvalid(t *testing.T) {
	today := mustDate(t, "2024-10-03") // Thursday

	// Weekend wins even over "passed" and "tomorrow".
	checks, allValid := CheckDates([]string{"2024-09-28", "2024-10-05", "2024-10-06"}, today)
	if allValid {
		t.Fatalf("expected aggregate invalid")
	}
	for _, check := range checks {
		if check.Valid {
			t.Fatalf("expected %s invalid", check.Date)
		}
		if check.Reason != DateReasonWeekend {
			t.Fatalf("expected weekend reason for %s, got %q", check.Date, check.Reason)
		}
	}
}

func TestCheckDatesSubmissionWindow(t *testing.T) {
	today := mustDate(t, "2024-10-03") // Thursday

	cases := []struct {
		date   string
		valid  bool
		reason string
	}{
		{"2024-10-04", false, DateReasonTomorrow},
		{"2024-10-03", false, DateReasonToday},
		{"2024-09-30", false, DateReasonPassed},
		{"2024-10-08", true, ""},
		{"2024-10-07", true, ""}, // Monday, but today is Thursday
		{"not-a-date", false, DateReasonBadFormat},
	}

	for _, tc := range cases {
		checks, _ := CheckDates([]string{tc.date}, today)
		if len(checks) != 1 {
			t.Fatalf("expected 1 check for %s, got %d", tc.date, len(checks))
		}
		if checks[0].Valid != tc.valid {
			t.Fatalf("date %s: expected valid=%v, got %v (%s)", tc.date, tc.valid, checks[0].Valid, checks[0].Reason)
		}
		if checks[0].Reason != tc.reason {
			t.Fatalf("date %s: expected reason %q, got %q", tc.date, tc.reason, checks[0].Reason)
		}
	}
}

func TestCheckDatesFollowingMonday(t *testing.T) {
	monday := "2024-10-07"

	for _, today := range []string{"2024-10-04", "2024-10-05"} { // Fri, Sat
		checks, allValid := CheckDates([]string{monday}, mustDate(t, today))
		if allValid || checks[0].Valid {
			t.Fatalf("today=%s: expected the following Monday to be rejected", today)
		}
		if checks[0].Reason != DateReasonFollowingMonday {
			t.Fatalf("today=%s: expected following-Monday reason, got %q", today, checks[0].Reason)
		}
	}

	// From Sunday that Monday is one day out, so the tomorrow rule wins:
	// still invalid, different reason.
	checks, allValid := CheckDates([]string{monday}, mustDate(t, "2024-10-06"))
	if allValid || checks[0].Valid {
		t.Fatalf("today=Sunday: expected the following Monday to be rejected")
	}
	if checks[0].Reason != DateReasonTomorrow {
		t.Fatalf("today=Sunday: expected tomorrow reason, got %q", checks[0].Reason)
	}

	// A Monday further out than the upcoming one is fine.
	checks, allValid = CheckDates([]string{"2024-10-14"}, mustDate(t, "2024-10-04"))
	if !allValid || !checks[0].Valid {
		t.Fatalf("expected the Monday after next to be allowed, got %q", checks[0].Reason)
	}
}

func TestCheckDatesAggregate(t *testing.T) {
	today := mustDate(t, "2024-10-03")

	if _, allValid := CheckDates([]string{"2024-10-08", "2024-10-09"}, today); !allValid {
		t.Fatalf("expected aggregate valid")
	}
	if _, allValid := CheckDates([]string{"2024-10-08", "2024-10-05"}, today); allValid {
		t.Fatalf("expected one weekend date to fail the aggregate")
	}
}
