package services

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Reasons returned by CheckDates. Consumers match on these literals.
const (
	DateReasonBadFormat       = "invalid date format (want YYYY-MM-DD)"
	DateReasonWeekend         = "falls on a weekend"
	DateReasonPassed          = "date has passed"
	DateReasonToday           = "cannot apply for today"
	DateReasonTomorrow        = "cannot apply for tomorrow"
	DateReasonFollowingMonday = "cannot apply for the following Monday after Friday or a weekend"
)

// DateCheck is the verdict for one proposed date.
type DateCheck struct {
	Date   string `json:"date"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// CheckDates validates proposed dates against the submission-window policy.
// The current date is injected so the rules stay deterministic. Rules are
// evaluated in a fixed order and the first match wins:
//
//  1. weekend
//  2. strictly before today
//  3. today
//  4. tomorrow
//  5. the following Monday when today is Friday or a weekend day
//
// The aggregate result is true only when every date passes.
func CheckDates(dates []string, today time.Time) ([]DateCheck, bool) {
	current := truncateToDay(today)
	checks := make([]DateCheck, 0, len(dates))
	allValid := true

	for _, raw := range dates {
		check := DateCheck{Date: raw}
		target, err := time.ParseInLocation(DateLayout, raw, time.UTC)
		if err != nil {
			check.Reason = DateReasonBadFormat
			allValid = false
			checks = append(checks, check)
			continue
		}
		target = truncateToDay(target)

		if reason := dateRuleReason(target, current); reason != "" {
			check.Reason = reason
			allValid = false
		} else {
			check.Valid = true
		}
		checks = append(checks, check)
	}

	return checks, allValid
}

func dateRuleReason(target, current time.Time) string {
	switch {
	case target.Weekday() == time.Saturday || target.Weekday() == time.Sunday:
		return DateReasonWeekend
	case target.Before(current):
		return DateReasonPassed
	case target.Equal(current):
		return DateReasonToday
	case target.Equal(current.AddDate(0, 0, 1)):
		return DateReasonTomorrow
	case isFollowingMonday(target, current):
		return DateReasonFollowingMonday
	}
	return ""
}

// isFollowingMonday blocks the Monday immediately after a Friday or weekend
// submission day: the gap is too short for manager review.
func isFollowingMonday(target, current time.Time) bool {
	switch current.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
	default:
		return false
	}
	if target.Weekday() != time.Monday {
		return false
	}
	return !target.After(current.AddDate(0, 0, 3))
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
