// Package recurrence computes the next due date of a recurring transaction.
//
// Calendar steps clamp the day of month to the target month's length:
// Jan 31 + 1 month is Feb 28 (29 in leap years), not Mar 2. time.AddDate
// normalizes overflow instead of clamping, so month and year steps go
// through addMonths.
package recurrence

import (
	"time"

	"github.com/walletapp/wallet/internal/models"
)

// Next returns the occurrence that follows ref for the given frequency.
// An unrecognized frequency falls back to DAILY rather than failing, so a
// bad row degrades to daily recurrence instead of stalling the scheduler.
func Next(ref time.Time, freq models.Frequency) time.Time {
	switch freq {
	case models.FrequencyDaily:
		return ref.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return ref.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return addMonths(ref, 1)
	case models.FrequencyQuarterly:
		return addMonths(ref, 3)
	case models.FrequencyYearly:
		return addMonths(ref, 12)
	default:
		return ref.AddDate(0, 0, 1)
	}
}

func addMonths(t time.Time, months int) time.Time {
	// Step from the first of the month so AddDate cannot overflow, then
	// clamp the day to the target month.
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)

	day := t.Day()
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month; day 0 of the next
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
