package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/timefmt"
)

// Insight types.
const (
	InsightLongSession      = "long_session"
	InsightFocusSession     = "focus_session"
	InsightReturningProject = "returning_project"
	InsightGoalProgress     = "goal_progress"
	InsightGoalAchieved     = "goal_achieved"
)

// Insight priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Insight is an ephemeral observation about recent tracked behavior. Insights
// live only in the dashboard feed and are never persisted.
type Insight struct {
	ID       string
	Type     string
	Message  string
	Priority string
}

// longSessionThreshold marks a session worth flagging: over two hours.
const longSessionThreshold = 2 * 3600

// maxInsights caps the dashboard feed at the 10 most recent entries.
const maxInsights = 10

// GenerateInsights inspects a just-completed activity against prior history
// and the post-update goals. One activity may yield several insights, always
// in the same order: long session, focus session, returning project, then
// goal progress/achievement per goal. Nothing is deduplicated; the same
// condition fires again on the next qualifying activity.
func GenerateInsights(activity store.Activity, prior []store.Activity, goals []store.Goal, now time.Time) []Insight {
	var insights []Insight

	if activity.Seconds > longSessionThreshold {
		insights = append(insights, Insight{
			ID:       uuid.NewString(),
			Type:     InsightLongSession,
			Message:  fmt.Sprintf("Long session recorded for %s (%s)", activity.Project, timefmt.Long(activity.Seconds)),
			Priority: PriorityMedium,
		})
	}

	if activity.Seconds >= FocusThreshold && activity.Seconds <= 1800 {
		insights = append(insights, Insight{
			ID:       uuid.NewString(),
			Type:     InsightFocusSession,
			Message:  fmt.Sprintf("Great focus session on %s", activity.Project),
			Priority: PriorityHigh,
		})
	}

	if last, ok := lastProjectActivity(prior, activity.Project); ok {
		days := int(now.Sub(last.Date).Hours() / 24)
		if days > 7 {
			insights = append(insights, Insight{
				ID:       uuid.NewString(),
				Type:     InsightReturningProject,
				Message:  fmt.Sprintf("Back to %s after %d days", activity.Project, days),
				Priority: PriorityLow,
			})
		}
	}

	for _, g := range goals {
		progress := Progress(g)
		switch {
		case progress >= 100:
			insights = append(insights, Insight{
				ID:       uuid.NewString(),
				Type:     InsightGoalAchieved,
				Message:  fmt.Sprintf("Congratulations! You achieved your %s", g.Name),
				Priority: PriorityHigh,
			})
		case progress >= 75:
			insights = append(insights, Insight{
				ID:       uuid.NewString(),
				Type:     InsightGoalProgress,
				Message:  fmt.Sprintf("You're %d%% towards your %s", int(math.Round(progress)), g.Name),
				Priority: PriorityMedium,
			})
		}
	}

	return insights
}

// MergeInsights prepends fresh insights to the existing feed and truncates
// to the most recent maxInsights entries.
func MergeInsights(fresh, existing []Insight) []Insight {
	merged := make([]Insight, 0, len(fresh)+len(existing))
	merged = append(merged, fresh...)
	merged = append(merged, existing...)
	if len(merged) > maxInsights {
		merged = merged[:maxInsights]
	}
	return merged
}

// lastProjectActivity finds the most recent dated prior activity on the same
// project.
func lastProjectActivity(prior []store.Activity, project string) (store.Activity, bool) {
	var best store.Activity
	found := false
	for _, a := range prior {
		if a.Project != project || a.Date.IsZero() {
			continue
		}
		if !found || a.Date.After(best.Date) {
			best = a
			found = true
		}
	}
	return best, found
}
