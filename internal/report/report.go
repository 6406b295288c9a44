// Package report implements the client-side filtering and chart groupings
// behind the reports view. Like the engine, everything operates on an
// in-memory activity snapshot and owns no state of its own.
package report

import (
	"sort"
	"time"

	"github.com/sadopc/pulse/internal/engine"
	"github.com/sadopc/pulse/internal/store"
)

// Date ranges for filtering.
const (
	RangeAll       = "all"
	RangeToday     = "today"
	RangeThisWeek  = "thisWeek"
	RangeThisMonth = "thisMonth"
)

// Filter narrows an activity snapshot. Zero values mean "all".
type Filter struct {
	Range        string
	Project      string
	Client       string
	Member       string
	Status       string
	BillableOnly bool
}

// Apply returns the activities matching every set filter field. Date-range
// filtering uses the same local-midnight boundaries as the dashboard totals;
// activities without a date only survive the unbounded range.
func (f Filter) Apply(activities []store.Activity, now time.Time) []store.Activity {
	var cutoff time.Time
	switch f.Range {
	case RangeToday:
		cutoff = engine.StartOfDay(now)
	case RangeThisWeek:
		cutoff = engine.StartOfWeek(now)
	case RangeThisMonth:
		cutoff = engine.StartOfMonth(now)
	}

	var out []store.Activity
	for _, a := range activities {
		if !cutoff.IsZero() && (a.Date.IsZero() || a.Date.Before(cutoff)) {
			continue
		}
		if f.Project != "" && a.Project != f.Project {
			continue
		}
		if f.Client != "" && a.Client != f.Client {
			continue
		}
		if f.Member != "" && a.Member != f.Member {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.BillableOnly && !a.Billable {
			continue
		}
		out = append(out, a)
	}
	return out
}

// DayGroup is one bar of the daily chart, split by billing status.
type DayGroup struct {
	Date        string // yyyy-mm-dd
	Label       string // e.g. "Jan 02"
	Total       float64
	Billable    float64
	NonBillable float64 // hours
}

// GroupByDay buckets activity hours per local calendar day, oldest first.
// Undated activities are skipped. Dates round-trip through the store as UTC
// instants, so each one is converted back to local time before bucketing;
// otherwise evening work lands under the next chart day while the table and
// the dashboard's local-midnight boundaries still show it under today.
func GroupByDay(activities []store.Activity) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, a := range activities {
		if a.Date.IsZero() {
			continue
		}
		day := a.Date.Local()
		key := day.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: key, Label: day.Format("Jan 02")})
		}
		hours := float64(a.Seconds) / 3600
		if hours < 0 {
			hours = 0
		}
		groups[i].Total += hours
		if a.Billable {
			groups[i].Billable += hours
		} else {
			groups[i].NonBillable += hours
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date < groups[j].Date })
	return groups
}

// GroupByProject buckets total seconds per project for the breakdown chart.
func GroupByProject(activities []store.Activity) []engine.Bucket {
	return engine.ByProject(activities)
}

// GroupByMember buckets total seconds per team member.
func GroupByMember(activities []store.Activity) []engine.Bucket {
	return engine.ByUser(activities)
}

// GroupByClient buckets total seconds per client.
func GroupByClient(activities []store.Activity) []engine.Bucket {
	return engine.ByClient(activities)
}

// Summary holds the headline numbers above the report table.
type Summary struct {
	Total    int64
	Billable int64
	Approved int64
	Pending  int64 // all in seconds
}

func Summarize(activities []store.Activity) Summary {
	var s Summary
	for _, a := range activities {
		secs := a.Seconds
		if secs < 0 {
			secs = 0
		}
		s.Total += secs
		if a.Billable {
			s.Billable += secs
		}
		switch a.Status {
		case store.StatusApproved:
			s.Approved += secs
		case store.StatusPending:
			s.Pending += secs
		}
	}
	return s
}

// Projects lists distinct project names in first-occurrence order, for the
// filter dropdown.
func Projects(activities []store.Activity) []string {
	return distinct(activities, func(a store.Activity) string { return a.Project })
}

// Clients lists distinct client names in first-occurrence order.
func Clients(activities []store.Activity) []string {
	return distinct(activities, func(a store.Activity) string { return a.Client })
}

// Members lists distinct member names in first-occurrence order.
func Members(activities []store.Activity) []string {
	return distinct(activities, func(a store.Activity) string { return a.Member })
}

func distinct(activities []store.Activity, keyOf func(store.Activity) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range activities {
		key := keyOf(a)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
