package engine

import (
	"time"

	"github.com/sadopc/pulse/internal/store"
)

// TimeTotals are the headline sums shown on the dashboard.
type TimeTotals struct {
	Today int64
	Week  int64
	Month int64
	Total int64
}

// Bucket is one row of a grouped aggregation.
type Bucket struct {
	Name    string
	Seconds int64
}

// Totals sums activity seconds into today / week / month / all-time buckets.
// Today starts at local midnight, the week at the most recent Sunday
// midnight, the month on its first calendar day. An activity without a date
// contributes to no bucket, Total included; negative durations count as 0.
func Totals(activities []store.Activity, now time.Time) TimeTotals {
	dayStart := StartOfDay(now)
	weekStart := StartOfWeek(now)
	monthStart := StartOfMonth(now)

	var t TimeTotals
	for _, a := range activities {
		if a.Date.IsZero() {
			continue
		}
		secs := a.Seconds
		if secs < 0 {
			secs = 0
		}
		t.Total += secs
		if !a.Date.Before(dayStart) {
			t.Today += secs
		}
		if !a.Date.Before(weekStart) {
			t.Week += secs
		}
		if !a.Date.Before(monthStart) {
			t.Month += secs
		}
	}
	return t
}

// TodayActivities filters a snapshot down to the local-midnight-to-now
// window the scorer operates on.
func TodayActivities(activities []store.Activity, now time.Time) []store.Activity {
	dayStart := StartOfDay(now)
	var today []store.Activity
	for _, a := range activities {
		if a.Date.IsZero() || a.Date.Before(dayStart) {
			continue
		}
		today = append(today, a)
	}
	return today
}

// ByProject groups total seconds by project name, in first-occurrence order.
func ByProject(activities []store.Activity) []Bucket {
	return groupBy(activities, func(a store.Activity) string {
		return a.Project
	})
}

// ByUser groups total seconds by member display name, in first-occurrence
// order. Activities without a member fall under "Unknown".
func ByUser(activities []store.Activity) []Bucket {
	return groupBy(activities, func(a store.Activity) string {
		if a.Member == "" {
			return "Unknown"
		}
		return a.Member
	})
}

// ByClient groups total seconds by client name, in first-occurrence order.
func ByClient(activities []store.Activity) []Bucket {
	return groupBy(activities, func(a store.Activity) string {
		if a.Client == "" {
			return "Unknown"
		}
		return a.Client
	})
}

func groupBy(activities []store.Activity, keyOf func(store.Activity) string) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, a := range activities {
		secs := a.Seconds
		if secs < 0 {
			secs = 0
		}
		key := keyOf(a)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Name: key})
		}
		buckets[i].Seconds += secs
	}
	return buckets
}
