package engine

import (
	"testing"

	"github.com/sadopc/pulse/internal/store"
)

func sessions(durations ...int64) []store.Activity {
	out := make([]store.Activity, len(durations))
	for i, d := range durations {
		out[i] = store.Activity{Project: "P", Seconds: d, Date: now}
	}
	return out
}

func TestScoreEmptyDay(t *testing.T) {
	if got := Score(nil); got != 0 {
		t.Fatalf("expected 0 for an empty day, got %d", got)
	}
}

func TestScoreSingleHour(t *testing.T) {
	// 10 time points + 5 for one project + 2 for one session.
	if got := Score(sessions(3600)); got != 17 {
		t.Fatalf("expected 17, got %d", got)
	}
}

func TestScoreRounds(t *testing.T) {
	// 1800s = 5 time points, 5 project, 2 session = 12.
	if got := Score(sessions(1800)); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	// 1950s = 5.416 time points -> round(12.416...) = 12.
	if got := Score(sessions(1950)); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestScoreComponentCaps(t *testing.T) {
	// 5 hours on one project: 50 raw time points cap at 40.
	got := Score(sessions(5 * 3600))
	if got != 47 {
		t.Fatalf("expected 47 (40 time + 5 project + 2 session), got %d", got)
	}
}

func TestScoreOverallCap(t *testing.T) {
	// Lots of long sessions across many projects saturate every component.
	var today []store.Activity
	for i := 0; i < 20; i++ {
		today = append(today, store.Activity{
			Project: string(rune('A' + i)),
			Seconds: 3600,
			Date:    now,
		})
	}
	if got := Score(today); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreIgnoresNegativeDurations(t *testing.T) {
	// A negative duration contributes no time but still counts as a session.
	got := Score(sessions(-3600, 3600))
	// 10 time + 5 project + 4 sessions = 19.
	if got != 19 {
		t.Fatalf("expected 19, got %d", got)
	}
}

func TestFocusSeconds(t *testing.T) {
	// Sums qualifying durations, not a count: 1600 + 2000.
	if got := FocusSeconds(sessions(1400, 1600, 2000)); got != 3600 {
		t.Fatalf("expected 3600, got %d", got)
	}
}

func TestFocusSecondsThresholdInclusive(t *testing.T) {
	if got := FocusSeconds(sessions(FocusThreshold)); got != FocusThreshold {
		t.Fatalf("expected %d, got %d", int64(FocusThreshold), got)
	}
	if got := FocusSeconds(sessions(FocusThreshold - 1)); got != 0 {
		t.Fatalf("expected 0 below threshold, got %d", got)
	}
}
