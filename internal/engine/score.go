package engine

import (
	"math"

	"github.com/sadopc/pulse/internal/store"
)

// FocusThreshold is the minimum duration for a session to count as focused
// work: 25 minutes.
const FocusThreshold = 1500

// Score derives a 0-100 productivity score from today's activities: up to 40
// points for tracked time (10 per hour), up to 30 for project variety (5 per
// distinct project) and up to 30 for session count (2 per session).
func Score(today []store.Activity) int {
	if len(today) == 0 {
		return 0
	}

	var totalSeconds int64
	projects := make(map[string]struct{})
	for _, a := range today {
		if a.Seconds > 0 {
			totalSeconds += a.Seconds
		}
		projects[a.Project] = struct{}{}
	}

	timeScore := math.Min(40, float64(totalSeconds)/3600*10)
	projectScore := math.Min(30, float64(len(projects))*5)
	sessionScore := math.Min(30, float64(len(today))*2)

	return int(math.Round(math.Min(100, timeScore+projectScore+sessionScore)))
}

// FocusSeconds sums the time spent in focus-qualifying sessions: the total
// seconds of today's activities at or above FocusThreshold, not a count.
func FocusSeconds(today []store.Activity) int64 {
	var total int64
	for _, a := range today {
		if a.Seconds >= FocusThreshold {
			total += a.Seconds
		}
	}
	return total
}
