package tui

import (
	"time"

	"github.com/sadopc/pulse/internal/store"
)

// timerState tracks the current state of the timer.
type timerState int

const (
	timerStopped timerState = iota
	timerRunning
	timerPaused
)

// timerModel owns the in-memory elapsed counter. It writes nothing itself:
// the dashboard turns the counter into an Activity when the timer stops.
// The counter advances on the app's one-second tick and can be overwritten
// from the colon-style edit field.
type timerModel struct {
	state   timerState
	elapsed int64 // seconds

	task        string
	projectID   int64
	projectName string
	client      string

	// Idle detection
	lastActivity time.Time
	idleTimeout  time.Duration
	isIdle       bool
}

func newTimerModel(idleTimeout time.Duration) timerModel {
	return timerModel{
		state:        timerStopped,
		lastActivity: time.Now(),
		idleTimeout:  idleTimeout,
	}
}

// start begins tracking against a project. Starting an already-running timer
// is a no-op; the toggle semantics live with the caller.
func (t *timerModel) start(projectID int64, projectName, client, task string) {
	if t.state != timerStopped {
		return
	}
	t.state = timerRunning
	t.elapsed = 0
	t.projectID = projectID
	t.projectName = projectName
	t.client = client
	t.task = task
	t.lastActivity = time.Now()
	t.isIdle = false
}

// stop ends the run and returns a draft activity for the elapsed time.
// Stopping a stopped timer returns ok=false.
func (t *timerModel) stop() (store.Activity, bool) {
	if t.state == timerStopped {
		return store.Activity{}, false
	}
	draft := store.Activity{
		Task:      t.task,
		ProjectID: t.projectID,
		Project:   t.projectName,
		Client:    t.client,
		Seconds:   t.elapsed,
	}
	t.state = timerStopped
	t.elapsed = 0
	t.task = ""
	return draft, true
}

func (t *timerModel) pause() {
	if t.state != timerRunning {
		return
	}
	t.state = timerPaused
}

func (t *timerModel) resume() {
	if t.state != timerPaused {
		return
	}
	t.state = timerRunning
	t.isIdle = false
	t.lastActivity = time.Now()
}

func (t *timerModel) toggle() {
	switch t.state {
	case timerRunning:
		t.pause()
	case timerPaused:
		t.resume()
	}
}

func (t *timerModel) tick() {
	if t.state != timerRunning {
		return
	}
	t.elapsed++

	if t.idleTimeout > 0 && time.Since(t.lastActivity) > t.idleTimeout && !t.isIdle {
		t.isIdle = true
		t.pause()
	}
}

// setElapsed overwrites the counter from the editable time field.
func (t *timerModel) setElapsed(secs int64) {
	if secs < 0 {
		secs = 0
	}
	t.elapsed = secs
}

func (t *timerModel) recordActivity() {
	t.lastActivity = time.Now()
	if t.isIdle && t.state == timerPaused {
		t.resume()
	}
}

func (t timerModel) running() bool {
	return t.state != timerStopped
}

func (t timerModel) paused() bool {
	return t.state == timerPaused
}

func (t timerModel) currentElapsed() int64 {
	if t.state == timerStopped {
		return 0
	}
	return t.elapsed
}
