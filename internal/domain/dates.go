package domain

import "time"

// MinBookableDate returns the earliest date a reservation may target:
// tomorrow relative to now (same-day booking is disallowed).
func MinBookableDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, MinLeadDays)
}

// IsBookableDate reports whether the date satisfies the lead-time rule.
// Сравниваются календарные дни: дата приводится к зоне now, иначе
// дата в UTC и полночь в локальной зоне дают разные сутки.
func IsBookableDate(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return !dateOnly.Before(MinBookableDate(now))
}
