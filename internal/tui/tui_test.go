package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pulse/internal/clock"
	"github.com/sadopc/pulse/internal/engine"
	"github.com/sadopc/pulse/internal/report"
	"github.com/sadopc/pulse/internal/store"
)

var testNow = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestDashboard(t *testing.T, s *store.Store) dashboardModel {
	t.Helper()
	return newDashboardModel(s, clock.Fixed{T: testNow}, "You", newTimerModel(0))
}

// ============================================================
// Timer model
// ============================================================

func TestTimerStartStop(t *testing.T) {
	tm := newTimerModel(0)
	if tm.running() {
		t.Fatal("timer should start stopped")
	}

	tm.start(1, "Dev", "Acme", "feature")
	if !tm.running() || tm.paused() {
		t.Fatal("timer should be running after start")
	}
	if tm.projectName != "Dev" || tm.client != "Acme" || tm.task != "feature" {
		t.Fatal("run context not set")
	}

	tm.tick()
	tm.tick()
	draft, ok := tm.stop()
	if !ok {
		t.Fatal("stop should return a draft")
	}
	if draft.Seconds != 2 {
		t.Fatalf("expected 2 elapsed seconds, got %d", draft.Seconds)
	}
	if draft.Project != "Dev" || draft.Client != "Acme" || draft.Task != "feature" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	if tm.running() {
		t.Fatal("timer should be stopped")
	}
}

func TestTimerStopWhenStopped(t *testing.T) {
	tm := newTimerModel(0)
	if _, ok := tm.stop(); ok {
		t.Fatal("stop on a stopped timer should return ok=false")
	}
}

func TestTimerStartWhileRunningIsNoop(t *testing.T) {
	tm := newTimerModel(0)
	tm.start(1, "Dev", "", "")
	tm.tick()
	tm.start(2, "Other", "", "")
	if tm.projectID != 1 || tm.elapsed != 1 {
		t.Fatal("starting a running timer should change nothing")
	}
}

func TestTimerPauseResume(t *testing.T) {
	tm := newTimerModel(0)
	tm.start(1, "Dev", "", "")

	tm.pause()
	if !tm.paused() {
		t.Fatal("timer should be paused")
	}
	if !tm.running() {
		t.Fatal("paused timer is still 'running' (not stopped)")
	}

	// Ticks don't advance a paused timer.
	tm.tick()
	if tm.elapsed != 0 {
		t.Fatal("paused timer should not accumulate")
	}

	tm.resume()
	if tm.paused() {
		t.Fatal("timer should not be paused after resume")
	}
	tm.tick()
	if tm.elapsed != 1 {
		t.Fatal("resumed timer should accumulate again")
	}
}

func TestTimerPauseWhenStopped(t *testing.T) {
	tm := newTimerModel(0)
	tm.pause()
	if tm.paused() {
		t.Fatal("pause on a stopped timer should be a no-op")
	}
}

func TestTimerToggle(t *testing.T) {
	tm := newTimerModel(0)
	tm.start(1, "Dev", "", "")

	tm.toggle()
	if !tm.paused() {
		t.Fatal("toggle should pause")
	}
	tm.toggle()
	if tm.paused() {
		t.Fatal("toggle should resume")
	}
}

func TestTimerToggleWhenStopped(t *testing.T) {
	tm := newTimerModel(0)
	tm.toggle()
	if tm.running() {
		t.Fatal("toggle should not start the timer")
	}
}

func TestTimerElapsed(t *testing.T) {
	tm := newTimerModel(0)
	if tm.currentElapsed() != 0 {
		t.Fatal("stopped timer should read 0 elapsed")
	}

	tm.start(1, "Dev", "", "")
	for i := 0; i < 5; i++ {
		tm.tick()
	}
	if tm.currentElapsed() != 5 {
		t.Fatalf("expected 5, got %d", tm.currentElapsed())
	}
}

func TestTimerSetElapsed(t *testing.T) {
	tm := newTimerModel(0)
	tm.start(1, "Dev", "", "")
	tm.tick()

	tm.setElapsed(3600)
	if tm.currentElapsed() != 3600 {
		t.Fatalf("expected 3600 after edit, got %d", tm.currentElapsed())
	}

	tm.setElapsed(-50)
	if tm.currentElapsed() != 0 {
		t.Fatal("negative edits clamp to 0")
	}
}

func TestTimerIdleDetection(t *testing.T) {
	tm := newTimerModel(50 * time.Millisecond)
	tm.start(1, "Dev", "", "")

	tm.lastActivity = time.Now().Add(-time.Second)
	tm.tick()

	if !tm.isIdle {
		t.Fatal("timer should detect idle")
	}
	if !tm.paused() {
		t.Fatal("timer should auto-pause on idle")
	}
}

func TestTimerIdleRecovery(t *testing.T) {
	tm := newTimerModel(50 * time.Millisecond)
	tm.start(1, "Dev", "", "")
	tm.lastActivity = time.Now().Add(-time.Second)
	tm.tick()
	if !tm.isIdle || !tm.paused() {
		t.Fatal("should be idle and paused")
	}

	tm.recordActivity()
	if tm.isIdle {
		t.Fatal("should no longer be idle after activity")
	}
	if tm.paused() {
		t.Fatal("should have resumed after activity")
	}
}

func TestTimerRecordActivityKeepsManualPause(t *testing.T) {
	tm := newTimerModel(0)
	tm.start(1, "Dev", "", "")
	tm.pause()

	// A keypress during a deliberate pause must not resume the timer.
	tm.recordActivity()
	if !tm.paused() {
		t.Fatal("manual pause should survive activity")
	}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 5 {
		t.Fatalf("expected 5 view names, got %d", len(viewNames))
	}
	expected := []string{"Dashboard", "Reports", "Projects", "Goals", "Settings"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewDashboard != 0 || viewReports != 1 || viewProjects != 2 || viewGoals != 3 || viewSettings != 4 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardInit(t *testing.T) {
	s := newTestStore(t)
	d := newTestDashboard(t, s)

	if d.isRunning() || d.isPaused() {
		t.Fatal("dashboard timer should start stopped")
	}
	if d.elapsed() != 0 {
		t.Fatal("dashboard should read 0 elapsed initially")
	}
}

func TestDashboardDataMsgDerivesStats(t *testing.T) {
	s := newTestStore(t)
	d := newTestDashboard(t, s)

	activities := []store.Activity{
		{Project: "Alpha", Seconds: 3600, Date: testNow.Add(-time.Hour)},
	}
	d, _ = d.update(dashboardDataMsg{activities: activities})

	if d.totals.Today != 3600 || d.totals.Total != 3600 {
		t.Fatalf("unexpected totals: %+v", d.totals)
	}
	if d.score != 17 {
		t.Fatalf("expected score 17, got %d", d.score)
	}
	if d.focus != 3600 {
		t.Fatalf("expected 3600 focus seconds, got %d", d.focus)
	}
}

func TestDashboardTrackActivityPersistsAndAdvancesGoals(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.CreateProject("Dev", "#000", nil)
	g, _ := s.CreateGoal("Daily Target", 9000, store.PeriodDaily)

	d := newTestDashboard(t, s)
	d.goals = []store.Goal{*g}

	draft := store.Activity{
		ProjectID: p.ID,
		Project:   p.Name,
		Member:    "You",
		Seconds:   9000,
		Date:      testNow,
	}
	msg := d.trackActivity(draft)()

	tracked, ok := msg.(activityTrackedMsg)
	if !ok {
		t.Fatalf("expected activityTrackedMsg, got %T", msg)
	}
	if tracked.activity.ID == 0 || tracked.activity.Seconds != 9000 {
		t.Fatalf("activity not persisted: %+v", tracked.activity)
	}

	// The goal was advanced in the store and hit its target exactly.
	updated, _ := s.GetGoal(g.ID)
	if updated.Current != 9000 {
		t.Fatalf("expected goal at 9000, got %d", updated.Current)
	}
	if !updated.LastUpdated.Equal(testNow) {
		t.Fatalf("expected LastUpdated %v, got %v", testNow, updated.LastUpdated)
	}

	// Long session plus the goal achievement, in that order.
	if len(tracked.insights) != 2 {
		t.Fatalf("expected 2 insights, got %+v", tracked.insights)
	}
	if tracked.insights[0].Type != engine.InsightLongSession || tracked.insights[1].Type != engine.InsightGoalAchieved {
		t.Fatalf("unexpected insight order: %+v", tracked.insights)
	}
}

func TestDashboardActivityTrackedMergesInsights(t *testing.T) {
	s := newTestStore(t)
	d := newTestDashboard(t, s)
	d.insights = []engine.Insight{{ID: "old"}}

	a := &store.Activity{Project: "Dev", Seconds: 600}
	d, _ = d.update(activityTrackedMsg{
		activity: a,
		insights: []engine.Insight{{ID: "new"}},
	})
	if len(d.insights) != 2 || d.insights[0].ID != "new" {
		t.Fatalf("fresh insights should lead the feed: %+v", d.insights)
	}
}

func TestDashboardStartWithNoProjects(t *testing.T) {
	s := newTestStore(t)
	d := newTestDashboard(t, s)

	d, cmd := d.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if d.picking || d.formActive {
		t.Fatal("start without projects should not open the picker or form")
	}
	if cmd == nil {
		t.Fatal("expected an error status cmd")
	}
	status, ok := cmd().(statusMsg)
	if !ok || !status.isError {
		t.Fatalf("expected an error status, got %+v", status)
	}
}

func TestDashboardStartOpensPicker(t *testing.T) {
	s := newTestStore(t)
	d := newTestDashboard(t, s)
	d.projects = []store.Project{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if !d.picking {
		t.Fatal("start with several projects should open the picker")
	}
}

func TestDashboardStopWhenStoppedIsNoop(t *testing.T) {
	s := newTestStore(t)
	d := newTestDashboard(t, s)
	d, cmd := d.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Fatal("stop without a running timer should do nothing")
	}
	_ = d
}

// ============================================================
// Reports model
// ============================================================

func TestReportsApplyFilter(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)

	activities := []store.Activity{
		{Project: "Alpha", Seconds: 3600, Billable: true, Status: store.StatusPending, Date: testNow.Add(-time.Hour)},
		{Project: "Beta", Seconds: 1800, Status: store.StatusApproved, Date: testNow.AddDate(0, -1, 0)},
	}
	r, _ = r.update(reportsDataMsg{activities: activities})

	// Default range is this week: the month-old activity drops out.
	if len(r.filtered) != 1 || r.filtered[0].Project != "Alpha" {
		t.Fatalf("unexpected filtered set: %+v", r.filtered)
	}
	if r.summary.Total != 3600 || r.summary.Billable != 3600 {
		t.Fatalf("unexpected summary: %+v", r.summary)
	}
	if len(r.projectNames) != 2 {
		t.Fatalf("project cycle should cover the full snapshot: %v", r.projectNames)
	}
}

func TestReportsRangeCycle(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)
	r, _ = r.update(reportsDataMsg{activities: nil})

	if r.filter.Range != report.RangeThisWeek {
		t.Fatalf("expected default thisWeek, got %q", r.filter.Range)
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyRight})
	if r.filter.Range != report.RangeThisMonth {
		t.Fatalf("expected thisMonth after right, got %q", r.filter.Range)
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyLeft})
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.filter.Range != report.RangeToday {
		t.Fatalf("expected today after two lefts, got %q", r.filter.Range)
	}
}

func TestReportsGroupModeCycle(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)
	r, _ = r.update(reportsDataMsg{activities: nil})

	if r.mode != groupByDay {
		t.Fatal("expected daily grouping by default")
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyTab})
	if r.mode != groupByProject {
		t.Fatal("tab should move to project grouping")
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyTab})
	if r.mode != groupByMember {
		t.Fatal("tab should move to member grouping")
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyTab})
	if r.mode != groupByClient {
		t.Fatal("tab should move to client grouping")
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyTab})
	if r.mode != groupByDay {
		t.Fatal("grouping should wrap around")
	}
}

func TestReportsFilterCycling(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)

	activities := []store.Activity{
		{Project: "Alpha", Client: "Acme", Member: "Ada", Seconds: 3600, Status: store.StatusPending, Date: testNow.Add(-time.Hour)},
		{Project: "Beta", Client: "Globex", Member: "Grace", Seconds: 1800, Status: store.StatusApproved, Date: testNow.Add(-2 * time.Hour)},
	}
	r, _ = r.update(reportsDataMsg{activities: activities})

	keyRune := func(c rune) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c}}
	}

	// Client: all -> Acme.
	r, _ = r.update(keyRune('c'))
	if r.filter.Client != "Acme" || len(r.filtered) != 1 || r.filtered[0].Project != "Alpha" {
		t.Fatalf("client cycle: filter %q, filtered %+v", r.filter.Client, r.filtered)
	}
	// Acme -> Globex -> all.
	r, _ = r.update(keyRune('c'))
	if r.filter.Client != "Globex" {
		t.Fatalf("expected Globex, got %q", r.filter.Client)
	}
	r, _ = r.update(keyRune('c'))
	if r.filter.Client != "" || len(r.filtered) != 2 {
		t.Fatalf("client cycle should wrap to all, got %q", r.filter.Client)
	}

	// Member: all -> Ada.
	r, _ = r.update(keyRune('m'))
	if r.filter.Member != "Ada" || len(r.filtered) != 1 {
		t.Fatalf("member cycle: filter %q, %d rows", r.filter.Member, len(r.filtered))
	}
	r, _ = r.update(keyRune('m'))
	r, _ = r.update(keyRune('m'))
	if r.filter.Member != "" {
		t.Fatalf("member cycle should wrap to all, got %q", r.filter.Member)
	}

	// Status: all -> pending -> approved -> all.
	r, _ = r.update(keyRune('s'))
	if r.filter.Status != store.StatusPending || len(r.filtered) != 1 || r.summary.Pending != 3600 {
		t.Fatalf("status cycle: filter %q, summary %+v", r.filter.Status, r.summary)
	}
	r, _ = r.update(keyRune('s'))
	if r.filter.Status != store.StatusApproved || r.summary.Approved != 1800 {
		t.Fatalf("status cycle: filter %q, summary %+v", r.filter.Status, r.summary)
	}
	r, _ = r.update(keyRune('s'))
	if r.filter.Status != "" {
		t.Fatalf("status cycle should wrap to all, got %q", r.filter.Status)
	}
}

func TestReportsCursorClamped(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)

	activities := []store.Activity{
		{Project: "Alpha", Seconds: 3600, Status: store.StatusPending, Date: testNow.Add(-time.Hour)},
		{Project: "Beta", Seconds: 1800, Status: store.StatusPending, Date: testNow.Add(-2 * time.Hour)},
	}
	r, _ = r.update(reportsDataMsg{activities: activities})

	r, _ = r.update(tea.KeyMsg{Type: tea.KeyDown})
	if r.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", r.cursor)
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyDown})
	if r.cursor != 1 {
		t.Fatalf("cursor should stop at the last row, got %d", r.cursor)
	}

	// Narrowing the filter pulls the cursor back into range.
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if r.cursor != 0 {
		t.Fatalf("cursor should clamp after filtering, got %d", r.cursor)
	}

	r, _ = r.update(tea.KeyMsg{Type: tea.KeyUp})
	if r.cursor != 0 {
		t.Fatalf("cursor should not go above the first row, got %d", r.cursor)
	}
}

func TestReportsApproveActivity(t *testing.T) {
	s := newTestStore(t)
	saved, err := s.AddActivity(store.Activity{
		Project: "Alpha", Member: "Ada", Seconds: 3600, Date: testNow.Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("add activity: %v", err)
	}
	if saved.Status != store.StatusPending {
		t.Fatalf("expected pending activity, got %q", saved.Status)
	}

	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)
	activities, err := s.ListActivities(store.ActivityFilter{})
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	r, _ = r.update(reportsDataMsg{activities: activities})

	r, cmd := r.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd == nil {
		t.Fatal("approve should produce a command")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || msg.isError {
		t.Fatalf("expected success status, got %+v", msg)
	}

	got, err := s.GetActivity(saved.ID)
	if err != nil {
		t.Fatalf("get activity: %v", err)
	}
	if got.Status != store.StatusApproved {
		t.Fatalf("expected approved, got %q", got.Status)
	}

	// Reload and approve again: the record stays approved, no error.
	activities, _ = s.ListActivities(store.ActivityFilter{})
	r, _ = r.update(reportsDataMsg{activities: activities})
	r, cmd = r.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd == nil {
		t.Fatal("repeat approve should still report status")
	}
	if msg, ok := cmd().(statusMsg); !ok || msg.isError {
		t.Fatalf("expected benign status, got %+v", msg)
	}
}

func TestReportsApproveEmptyTable(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, clock.Fixed{T: testNow})
	r.setSize(100, 40)
	r, _ = r.update(reportsDataMsg{activities: nil})

	_, cmd := r.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd != nil {
		t.Fatal("approve with no rows should be a no-op")
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsShowsTotalTracked(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.AddActivity(store.Activity{Project: "Alpha", Seconds: 5400, Date: testNow}); err != nil {
		t.Fatalf("add activity: %v", err)
	}

	sm := newSettingsModel(s)
	sm.setSize(100, 40)

	msg := sm.refresh()()
	data, ok := msg.(settingsDataMsg)
	if !ok {
		t.Fatalf("expected settingsDataMsg, got %T", msg)
	}
	if data.totalTracked != 5400 {
		t.Fatalf("expected 5400 tracked seconds, got %d", data.totalTracked)
	}

	sm, _ = sm.update(data)
	if !strings.Contains(sm.view(), "total tracked") {
		t.Fatal("settings view should show the lifetime total")
	}
	if !strings.Contains(sm.view(), "1h 30m") {
		t.Fatal("lifetime total should be formatted as hours and minutes")
	}
}

// ============================================================
// Settings helpers
// ============================================================

func TestSecsToMin(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1500", "25"},
		{"300", "5"},
		{"0", "0"},
		{"invalid", "invalid"},
	}
	for _, tt := range tests {
		if got := secsToMin(tt.in); got != tt.want {
			t.Errorf("secsToMin(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHoursToSecsRoundTrip(t *testing.T) {
	if got := hoursToSecs("8.0"); got != "28800" {
		t.Fatalf("hoursToSecs(8.0) = %q", got)
	}
	if got := secsToHours("28800"); got != "8.0" {
		t.Fatalf("secsToHours(28800) = %q", got)
	}
	if got := hoursToSecs("bad"); got != "bad" {
		t.Fatalf("invalid input should pass through, got %q", got)
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, val, want string
	}{
		{"idle_timeout", "300", "5 min"},
		{"default_daily_target", "28800", "8.0 hours"},
		{"default_weekly_target", "144000", "40.0 hours"},
		{"idle_action", "pause", "pause"},
		{"display_name", "You", "You"},
		{"idle_timeout", "invalid", "invalid"},
	}
	for _, tt := range tests {
		if got := formatSettingValue(tt.key, tt.val); got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.val, got, tt.want)
		}
	}
}

// ============================================================
// App model
// ============================================================

func newTestApp(t *testing.T) App {
	t.Helper()
	s := newTestStore(t)
	return NewApp(s, clock.Fixed{T: testNow}, "You", 0)
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)
	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp || app.exportPicking {
		t.Fatal("overlays should be hidden by default")
	}
	if app.changes == nil || app.unsubscribe == nil {
		t.Fatal("app should be subscribed to store changes")
	}
}

func TestAppIsFormActiveDefault(t *testing.T) {
	app := newTestApp(t)
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := newTestApp(t)
	if got := app.View(); got != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", got)
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.dashboard.setSize(120, 36)
	app.reports.setSize(120, 36)
	app.projects.setSize(120, 36)
	app.goals.setSize(120, 36)
	app.settings.setSize(120, 36)

	for _, v := range []viewState{viewDashboard, viewReports, viewProjects, viewGoals, viewSettings} {
		app.activeView = v
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.status = "test status"

	if footer := app.renderFooter(); !strings.Contains(footer, "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppStoreChangeNotification(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, clock.Fixed{T: testNow}, "You", 0)

	// A mutation surfaces through waitForChange as storeChangedMsg.
	s.CreateProject("Dev", "#000", nil)
	msg := app.waitForChange()()
	if _, ok := msg.(storeChangedMsg); !ok {
		t.Fatalf("expected storeChangedMsg, got %T", msg)
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles
// ============================================================

func TestPriorityStyle(t *testing.T) {
	if priorityStyle("high").GetForeground() != errorStyle.GetForeground() {
		t.Fatal("high priority should use the error color")
	}
	if priorityStyle("medium").GetForeground() != warningStyle.GetForeground() {
		t.Fatal("medium priority should use the warning color")
	}
	if priorityStyle("low").GetForeground() != mutedStyle.GetForeground() {
		t.Fatal("low priority should fall back to muted")
	}
}
