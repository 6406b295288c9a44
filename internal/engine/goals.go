package engine

import (
	"time"

	"github.com/sadopc/pulse/internal/store"
)

// Advance applies a completed activity's duration to a goal in place. If the
// goal's period has rolled over since LastUpdated (new calendar day, week or
// month), Current resets to the activity's duration; otherwise it
// accumulates. LastUpdated always moves to now. Current is never capped: a
// goal can run past 100% of its target.
func Advance(g *store.Goal, activitySeconds int64, now time.Time) {
	if activitySeconds < 0 {
		activitySeconds = 0
	}

	if rolledOver(g, now) {
		g.Current = activitySeconds
	} else {
		g.Current += activitySeconds
	}
	g.LastUpdated = now
}

func rolledOver(g *store.Goal, now time.Time) bool {
	if g.LastUpdated.IsZero() {
		return true
	}
	last := g.LastUpdated.In(now.Location())

	switch g.Period {
	case store.PeriodWeekly:
		return last.Before(StartOfWeek(now))
	case store.PeriodMonthly:
		return last.Before(StartOfMonth(now))
	default: // daily
		y1, m1, d1 := last.Date()
		y2, m2, d2 := now.Date()
		return y1 != y2 || m1 != m2 || d1 != d2
	}
}

// Progress returns a goal's completion as a percentage of its target.
// Uncapped; a finished goal reads >= 100.
func Progress(g store.Goal) float64 {
	if g.Target <= 0 {
		return 0
	}
	return float64(g.Current) / float64(g.Target) * 100
}
