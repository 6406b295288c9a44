package tui

import (
	"time"

	"github.com/sadopc/pulse/internal/engine"
	"github.com/sadopc/pulse/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewReports
	viewProjects
	viewGoals
	viewSettings
)

var viewNames = []string{"Dashboard", "Reports", "Projects", "Goals", "Settings"}

// --- Messages ---

type timerStartedMsg struct{}

// activityTrackedMsg carries the result of a completed timer run: the saved
// activity and the insights it produced.
type activityTrackedMsg struct {
	activity *store.Activity
	insights []engine.Insight
}

type goalSavedMsg struct{}
type goalDeletedMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

// storeChangedMsg fires whenever the store broadcasts a mutation; the active
// view answers by reloading its snapshot.
type storeChangedMsg struct{}

type exportDoneMsg struct {
	path string
}
