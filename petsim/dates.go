package petsim

import "time"

// DateKey returns the UTC calendar-day key (YYYY-MM-DD) used for all
// once-per-day gating.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// YesterdayKey returns the date key of the calendar day before t (UTC).
func YesterdayKey(t time.Time) string {
	return DateKey(t.UTC().AddDate(0, 0, -1))
}
