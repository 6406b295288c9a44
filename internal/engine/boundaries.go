// Package engine holds the goal-progress and productivity-insight
// computations behind the dashboard. Everything here is a pure function of
// the snapshot passed in: the caller supplies the activity list, the goals
// and the current time, and writes any results back itself.
package engine

import "time"

// StartOfDay returns midnight of now's calendar day, in now's location.
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// StartOfWeek returns the most recent Sunday at midnight. Weeks start on
// Sunday to match the goal rollover rule.
func StartOfWeek(now time.Time) time.Time {
	return StartOfDay(now).AddDate(0, 0, -int(now.Weekday()))
}

// StartOfMonth returns the first calendar day of now's month at midnight.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
