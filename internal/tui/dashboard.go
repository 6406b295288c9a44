package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pulse/internal/clock"
	"github.com/sadopc/pulse/internal/engine"
	"github.com/sadopc/pulse/internal/logger"
	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/timefmt"
)

type dashboardModel struct {
	store       *store.Store
	clock       clock.Clock
	timer       timerModel
	displayName string
	width       int
	height      int

	activities []store.Activity
	goals      []store.Goal
	insights   []engine.Insight
	projects   []store.Project

	// Derived from the activity snapshot on every reload.
	totals engine.TimeTotals
	score  int
	focus  int64

	// Project picker state
	picking      bool
	pickerCursor int

	// One-field forms: task description before starting, colon-style elapsed
	// time while running.
	formActive     bool
	form           *huh.Form
	formKind       string // "task" or "time"
	formInput      *string
	pendingProject store.Project
}

func newDashboardModel(s *store.Store, clk clock.Clock, displayName string, timer timerModel) dashboardModel {
	input := ""
	return dashboardModel{
		store:       s,
		clock:       clk,
		timer:       timer,
		displayName: displayName,
		formInput:   &input,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) isRunning() bool { return d.timer.running() }
func (d dashboardModel) isPaused() bool  { return d.timer.paused() }
func (d dashboardModel) elapsed() int64  { return d.timer.currentElapsed() }

type dashboardDataMsg struct {
	activities []store.Activity
	goals      []store.Goal
	projects   []store.Project
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		activities, err := d.store.ListActivities(store.ActivityFilter{})
		if err != nil {
			logger.Error("load activities", logger.F("err", err))
		}
		goals, err := d.store.ListGoals()
		if err != nil {
			logger.Error("load goals", logger.F("err", err))
		}
		projects, err := d.store.ListProjects(false)
		if err != nil {
			logger.Error("load projects", logger.F("err", err))
		}
		return dashboardDataMsg{activities: activities, goals: goals, projects: projects}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.activities = msg.activities
		d.goals = msg.goals
		d.projects = msg.projects

		now := d.clock.Now()
		d.totals = engine.Totals(d.activities, now)
		today := engine.TodayActivities(d.activities, now)
		d.score = engine.Score(today)
		d.focus = engine.FocusSeconds(today)
		return d, nil

	case activityTrackedMsg:
		d.insights = engine.MergeInsights(msg.insights, d.insights)
		return d, tea.Batch(
			d.loadData(),
			func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Tracked %s for %s", timefmt.Long(msg.activity.Seconds), msg.activity.Project)}
			},
		)

	case tickMsg:
		d.timer.tick()
		return d, nil

	case tea.KeyMsg:
		d.timer.recordActivity()

		if d.picking {
			return d.updatePicker(msg)
		}

		switch {
		case key.Matches(msg, keys.Start):
			if d.timer.running() {
				return d, nil
			}
			if len(d.projects) == 0 {
				return d, func() tea.Msg {
					return statusMsg{text: "No projects yet. Press 3 to go to Projects and create one.", isError: true}
				}
			}
			if len(d.projects) == 1 {
				d.pendingProject = d.projects[0]
				return d.showTaskForm()
			}
			d.picking = true
			d.pickerCursor = 0
			return d, nil

		case key.Matches(msg, keys.Stop):
			return d.stopTimer()

		case key.Matches(msg, keys.Pause):
			d.timer.toggle()
			return d, nil

		case key.Matches(msg, keys.EditTime):
			if d.timer.running() {
				return d.showTimeForm()
			}
		}
	}
	return d, nil
}

func (d dashboardModel) updatePicker(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.pickerCursor > 0 {
				d.pickerCursor--
			}
		case key.Matches(msg, keys.Down):
			if d.pickerCursor < len(d.projects)-1 {
				d.pickerCursor++
			}
		case key.Matches(msg, keys.Enter):
			d.pendingProject = d.projects[d.pickerCursor]
			d.picking = false
			return d.showTaskForm()
		case key.Matches(msg, keys.Back):
			d.picking = false
		}
	}
	return d, nil
}

func (d dashboardModel) showTaskForm() (dashboardModel, tea.Cmd) {
	*d.formInput = ""
	d.formKind = "task"
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("What are you working on?").Value(d.formInput),
		),
	).WithShowHelp(false)
	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) showTimeForm() (dashboardModel, tea.Cmd) {
	*d.formInput = timefmt.Colon(d.timer.currentElapsed())
	d.formKind = "time"
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Elapsed time (HH:MM:SS)").Value(d.formInput),
		),
	).WithShowHelp(false)
	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		switch d.formKind {
		case "task":
			p := d.pendingProject
			d.timer.start(p.ID, p.Name, p.Client, *d.formInput)
			return d, func() tea.Msg { return timerStartedMsg{} }
		case "time":
			d.timer.setElapsed(timefmt.ParseColon(*d.formInput))
			return d, nil
		}
	}

	return d, cmd
}

func (d dashboardModel) stopTimer() (dashboardModel, tea.Cmd) {
	draft, ok := d.timer.stop()
	if !ok {
		return d, nil
	}
	draft.Member = d.displayName
	draft.Date = d.clock.Now()
	return d, d.trackActivity(draft)
}

// trackActivity persists the finished activity, advances every goal with its
// duration and generates insights from the post-update state. Goal writes are
// best-effort: a failed write is logged and the stored goal stays stale until
// the next successful read.
func (d dashboardModel) trackActivity(draft store.Activity) tea.Cmd {
	prior := d.activities
	goals := d.goals
	now := draft.Date

	return func() tea.Msg {
		saved, err := d.store.AddActivity(draft)
		if err != nil {
			logger.Error("save activity", logger.F("err", err), logger.F("project", draft.Project))
			return statusMsg{text: fmt.Sprintf("Error saving activity: %v", err), isError: true}
		}

		updated := make([]store.Goal, 0, len(goals))
		for _, g := range goals {
			engine.Advance(&g, saved.Seconds, now)
			if err := d.store.SetGoalProgress(g.ID, g.Current, g.LastUpdated); err != nil {
				logger.Error("update goal", logger.F("err", err), logger.F("goal", g.Name))
			}
			updated = append(updated, g)
		}

		fresh := engine.GenerateInsights(*saved, prior, updated, now)
		return activityTrackedMsg{activity: saved, insights: fresh}
	}
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	banner := d.renderBanner(contentWidth)
	timerPanel := d.renderTimerPanel(contentWidth)

	var middlePanel string
	switch {
	case d.formActive && d.form != nil:
		middlePanel = activePanelStyle.Width(contentWidth).Render(d.form.View())
	case d.picking:
		middlePanel = d.renderProjectPicker(contentWidth)
	default:
		middlePanel = d.renderGoalsPanel(contentWidth)
	}

	bottomPanel := d.renderInsightsPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, banner, timerPanel, middlePanel, bottomPanel)
}

func (d dashboardModel) renderBanner(w int) string {
	sessions := len(engine.TodayActivities(d.activities, d.clock.Now()))

	scoreLine := fmt.Sprintf("%s %s", titleStyle.Render("Today's Productivity"), scoreStyle.Render(fmt.Sprintf("%d/100", d.score)))
	detail := mutedStyle.Render(fmt.Sprintf("Focus: %s   Sessions: %d", timefmt.Short(d.focus), sessions))
	totalsRow := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		mutedStyle.Render("today"), highlightStyle.Render(timefmt.Short(d.totals.Today)),
		mutedStyle.Render("week"), highlightStyle.Render(timefmt.Short(d.totals.Week)),
		mutedStyle.Render("month"), highlightStyle.Render(timefmt.Short(d.totals.Month)),
		mutedStyle.Render("total"), highlightStyle.Render(timefmt.Short(d.totals.Total)),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, scoreLine, detail, totalsRow),
	)
}

func (d dashboardModel) renderTimerPanel(w int) string {
	var timeDisplay string
	var indicator string

	if d.timer.running() {
		timeStr := timefmt.Colon(d.timer.currentElapsed())

		if d.timer.paused() {
			timeDisplay = timerPausedStyle.Width(w - 6).Render(timeStr)
			if d.timer.isIdle {
				indicator = warningStyle.Render("⏸  IDLE")
			} else {
				indicator = warningStyle.Render("⏸  PAUSED")
			}
		} else {
			timeDisplay = timerRunningStyle.Width(w - 6).Render(timeStr)
			indicator = successStyle.Render("●  RUNNING")
		}

		projectLine := highlightStyle.Render(d.timer.projectName)
		if d.timer.task != "" {
			projectLine += mutedStyle.Render(" / " + d.timer.task)
		}

		content := lipgloss.JoinVertical(lipgloss.Center,
			timeDisplay,
			indicator,
			projectLine,
		)
		return activePanelStyle.Width(w).Render(content)
	}

	timeDisplay = timerStyle.Width(w - 6).Render("00:00:00")
	indicator = mutedStyle.Render("■  STOPPED")
	hint := mutedStyle.Render("Press s to start tracking")

	content := lipgloss.JoinVertical(lipgloss.Center,
		timeDisplay,
		indicator,
		hint,
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderGoalsPanel(w int) string {
	title := titleStyle.Render("Goals")

	if len(d.goals) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No goals yet. Press 4 to set one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	barWidth := min(30, w-40)
	if barWidth < 10 {
		barWidth = 10
	}
	for _, g := range d.goals {
		rows = append(rows, "  "+renderGoalRow(g, barWidth))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderGoalRow shows progress capped at 100% visually; the stored value can
// run past the target.
func renderGoalRow(g store.Goal, barWidth int) string {
	progress := engine.Progress(g)
	shown := progress
	if shown > 100 {
		shown = 100
	}
	filled := int(shown / 100 * float64(barWidth))

	barStyle := successStyle
	if progress < 100 {
		barStyle = highlightStyle
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%-18s %s %3.0f%%  %s / %s (%s)",
		g.Name, bar, shown, timefmt.Short(g.Current), timefmt.Short(g.Target), g.Period)
}

func (d dashboardModel) renderInsightsPanel(w int) string {
	title := titleStyle.Render("Insights")
	if len(d.insights) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Track some time to see insights"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	for _, in := range d.insights {
		dot := priorityStyle(in.Priority).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %s", dot, in.Message))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderProjectPicker(w int) string {
	title := titleStyle.Render("Select Project")

	var rows []string
	rows = append(rows, title)
	for i, p := range d.projects {
		colorDot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == d.pickerCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		label := p.Name
		if p.Client != "" {
			label += mutedStyle.Render(" · " + p.Client)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s ", cursor, colorDot))+label)
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: select  esc: cancel"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
