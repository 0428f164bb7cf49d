package services

import (
	"sort"
	"time"

	"work-arrangement-api/models"
)

// DefaultWeeklyQuota is the number of remote days per work-week a staff
// member may hold before the week gets flagged.
const DefaultWeeklyQuota = 2

// WeekStart returns the Monday 00:00 UTC anchoring the work-week that
// contains d. Sunday counts as the last day of the previous week.
func WeekStart(d time.Time) time.Time {
	d = truncateToDay(d)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// FlagOverQuotaWeeks returns the Monday dates of work-weeks touched by the
// batch in which the staff member's Approved plus Pending requests exceed
// the quota. The requests slice must already include the newly created
// batch. Each week is flagged at most once, however many batch dates land
// in it. The result is sorted and the check is purely advisory.
func FlagOverQuotaWeeks(requests []models.WorkRequest, batchDates []string, quota int) []string {
	weekCounts := make(map[string]int)
	for _, req := range requests {
		if req.Status != models.StatusApproved && req.Status != models.StatusPending {
			continue
		}
		d, err := time.ParseInLocation(DateLayout, req.WorkDate, time.UTC)
		if err != nil {
			continue
		}
		weekCounts[WeekStart(d).Format(DateLayout)]++
	}

	flagged := make(map[string]bool)
	for _, raw := range batchDates {
		d, err := time.ParseInLocation(DateLayout, raw, time.UTC)
		if err != nil {
			continue
		}
		week := WeekStart(d).Format(DateLayout)
		if weekCounts[week] > quota {
			flagged[week] = true
		}
	}

	weeks := make([]string, 0, len(flagged))
	for week := range flagged {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	return weeks
}
