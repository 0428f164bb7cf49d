package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var recurringTokenPattern = regexp.MustCompile(`^(\d+)\s*weeks?$`)

// ParseRecurringInterval parses tokens such as "1week" or "2 weeks" into a
// whole number of weeks.
func ParseRecurringInterval(token string) (int, error) {
	m := recurringTokenPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(token)))
	if m == nil {
		return 0, newValidationError(fmt.Sprintf("invalid recurring interval %q (want e.g. \"1week\")", token))
	}
	weeks, err := strconv.Atoi(m[1])
	if err != nil || weeks < 1 {
		return 0, newValidationError(fmt.Sprintf("invalid recurring interval %q", token))
	}
	return weeks, nil
}

// ExpandRecurring turns one recurring definition into numEvents dated slots,
// startDate + i*intervalWeeks*7 days apart, all tagged with one freshly
// generated group id. Expansion does not validate the dates or check
// overlaps; those run afterwards on the full expanded set.
func ExpandRecurring(startDate string, intervalWeeks, numEvents int) ([]string, string, error) {
	if intervalWeeks < 1 {
		return nil, "", newValidationError("recurring interval must be at least one week")
	}
	if numEvents < 1 {
		return nil, "", newValidationError("number of events must be at least 1")
	}

	start, err := time.ParseInLocation(DateLayout, startDate, time.UTC)
	if err != nil {
		return nil, "", newValidationError(fmt.Sprintf("invalid start date %q", startDate))
	}

	groupID := uuid.NewString()
	dates := make([]string, 0, numEvents)
	for i := 0; i < numEvents; i++ {
		dates = append(dates, start.AddDate(0, 0, i*intervalWeeks*7).Format(DateLayout))
	}

	return dates, groupID, nil
}
