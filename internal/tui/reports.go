package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pulse/internal/clock"
	"github.com/sadopc/pulse/internal/logger"
	"github.com/sadopc/pulse/internal/report"
	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/timefmt"
)

type groupMode int

const (
	groupByDay groupMode = iota
	groupByProject
	groupByMember
	groupByClient
)

var groupNames = []string{"Daily", "By Project", "By Member", "By Client"}

// Status filter cycling: all, then pending, then approved.
var statusOrder = []string{"", store.StatusPending, store.StatusApproved}

var rangeOrder = []string{report.RangeToday, report.RangeThisWeek, report.RangeThisMonth, report.RangeAll}

var rangeLabels = map[string]string{
	report.RangeToday:     "Today",
	report.RangeThisWeek:  "This Week",
	report.RangeThisMonth: "This Month",
	report.RangeAll:       "All Time",
}

type reportsModel struct {
	store  *store.Store
	clock  clock.Clock
	width  int
	height int

	mode     groupMode
	rangeIdx int
	filter   report.Filter

	activities []store.Activity
	filtered   []store.Activity
	summary    report.Summary

	// Filter cycling: index 0 = all, then names[idx-1].
	projectNames []string
	projectIdx   int
	memberNames  []string
	memberIdx    int
	clientNames  []string
	clientIdx    int
	statusIdx    int

	// Selected row in the activity table, for approval.
	cursor int

	chart barchart.Model
}

func newReportsModel(s *store.Store, clk clock.Clock) reportsModel {
	return reportsModel{
		store:    s,
		clock:    clk,
		rangeIdx: 1, // this week
		filter:   report.Filter{Range: report.RangeThisWeek},
		chart:    barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	activities []store.Activity
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		activities, err := r.store.ListActivities(store.ActivityFilter{})
		if err != nil {
			logger.Error("load report activities", logger.F("err", err))
		}
		return reportsDataMsg{activities: activities}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.activities = msg.activities
		r.projectNames = report.Projects(r.activities)
		if r.projectIdx > len(r.projectNames) {
			r.projectIdx = 0
			r.filter.Project = ""
		}
		r.memberNames = report.Members(r.activities)
		if r.memberIdx > len(r.memberNames) {
			r.memberIdx = 0
			r.filter.Member = ""
		}
		r.clientNames = report.Clients(r.activities)
		if r.clientIdx > len(r.clientNames) {
			r.clientIdx = 0
			r.filter.Client = ""
		}
		r.apply()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.rangeIdx = (r.rangeIdx + len(rangeOrder) - 1) % len(rangeOrder)
			r.filter.Range = rangeOrder[r.rangeIdx]
			r.apply()
			return r, nil
		case key.Matches(msg, keys.Right):
			r.rangeIdx = (r.rangeIdx + 1) % len(rangeOrder)
			r.filter.Range = rangeOrder[r.rangeIdx]
			r.apply()
			return r, nil
		case key.Matches(msg, keys.Tab):
			r.mode = (r.mode + 1) % groupMode(len(groupNames))
			r.apply()
			return r, nil
		case key.Matches(msg, keys.Up):
			if r.cursor > 0 {
				r.cursor--
			}
			return r, nil
		case key.Matches(msg, keys.Down):
			if r.cursor < r.tableLimit()-1 {
				r.cursor++
			}
			return r, nil
		case msg.String() == "b":
			r.filter.BillableOnly = !r.filter.BillableOnly
			r.apply()
			return r, nil
		case msg.String() == "p":
			r.projectIdx = (r.projectIdx + 1) % (len(r.projectNames) + 1)
			if r.projectIdx == 0 {
				r.filter.Project = ""
			} else {
				r.filter.Project = r.projectNames[r.projectIdx-1]
			}
			r.apply()
			return r, nil
		case msg.String() == "m":
			r.memberIdx = (r.memberIdx + 1) % (len(r.memberNames) + 1)
			if r.memberIdx == 0 {
				r.filter.Member = ""
			} else {
				r.filter.Member = r.memberNames[r.memberIdx-1]
			}
			r.apply()
			return r, nil
		case msg.String() == "c":
			r.clientIdx = (r.clientIdx + 1) % (len(r.clientNames) + 1)
			if r.clientIdx == 0 {
				r.filter.Client = ""
			} else {
				r.filter.Client = r.clientNames[r.clientIdx-1]
			}
			r.apply()
			return r, nil
		case msg.String() == "s":
			r.statusIdx = (r.statusIdx + 1) % len(statusOrder)
			r.filter.Status = statusOrder[r.statusIdx]
			r.apply()
			return r, nil
		case msg.String() == "a":
			return r, r.approveSelected()
		}
	}
	return r, nil
}

// approveSelected marks the highlighted activity approved. The store
// broadcast triggers the snapshot reload.
func (r reportsModel) approveSelected() tea.Cmd {
	if r.cursor >= len(r.filtered) {
		return nil
	}
	selected := r.filtered[r.cursor]
	if selected.Status == store.StatusApproved {
		return func() tea.Msg {
			return statusMsg{text: "Already approved"}
		}
	}
	id := selected.ID
	return func() tea.Msg {
		if err := r.store.ApproveActivity(id); err != nil {
			logger.Error("approve activity", logger.F("err", err))
			return statusMsg{text: fmt.Sprintf("Approve error: %v", err), isError: true}
		}
		return statusMsg{text: "Activity approved"}
	}
}

// tableLimit is the number of rows the activity table shows.
func (r reportsModel) tableLimit() int {
	return min(len(r.filtered), 8)
}

// apply re-runs the filter and rebuilds the chart from the snapshot.
func (r *reportsModel) apply() {
	r.filtered = r.filter.Apply(r.activities, r.clock.Now())
	r.summary = report.Summarize(r.filtered)
	if limit := r.tableLimit(); r.cursor >= limit {
		r.cursor = max(limit-1, 0)
	}
	r.buildChart()
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	switch r.mode {
	case groupByDay:
		for _, g := range report.GroupByDay(r.filtered) {
			bars = append(bars, barchart.BarData{
				Label: g.Label,
				Values: []barchart.BarValue{
					{Name: "billable", Value: g.Billable, Style: lipgloss.NewStyle().Foreground(colorSecondary)},
					{Name: "non-billable", Value: g.NonBillable, Style: lipgloss.NewStyle().Foreground(colorSubtle)},
				},
			})
		}
	case groupByProject:
		for _, b := range report.GroupByProject(r.filtered) {
			bars = append(bars, bucketBar(b.Name, b.Seconds, colorPrimary))
		}
	case groupByMember:
		for _, b := range report.GroupByMember(r.filtered) {
			bars = append(bars, bucketBar(b.Name, b.Seconds, colorHighlight))
		}
	case groupByClient:
		for _, b := range report.GroupByClient(r.filtered) {
			bars = append(bars, bucketBar(b.Name, b.Seconds, colorAccent))
		}
	}

	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "-",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func bucketBar(name string, seconds int64, color lipgloss.Color) barchart.BarData {
	label := name
	if len(label) > 10 {
		label = label[:10]
	}
	return barchart.BarData{
		Label: label,
		Values: []barchart.BarValue{{
			Name:  name,
			Value: float64(seconds) / 3600,
			Style: lipgloss.NewStyle().Foreground(color),
		}},
	}
}

func (r reportsModel) view() string {
	w := r.width - 4

	// Mode tabs
	var modeTabs []string
	for i, name := range groupNames {
		if groupMode(i) == r.mode {
			modeTabs = append(modeTabs, activeTabStyle.Render(name))
		} else {
			modeTabs = append(modeTabs, inactiveTabStyle.Render(name))
		}
	}

	filterLabel := rangeLabels[r.filter.Range]
	if r.filter.Project != "" {
		filterLabel += " · " + r.filter.Project
	}
	if r.filter.Client != "" {
		filterLabel += " · " + r.filter.Client
	}
	if r.filter.Member != "" {
		filterLabel += " · " + r.filter.Member
	}
	if r.filter.Status != "" {
		filterLabel += " · " + r.filter.Status
	}
	if r.filter.BillableOnly {
		filterLabel += " · billable"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ",
		lipgloss.JoinHorizontal(lipgloss.Bottom, modeTabs...), "  ",
		mutedStyle.Render(filterLabel),
	)

	summaryRow := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		mutedStyle.Render("total"), highlightStyle.Render(timefmt.Short(r.summary.Total)),
		mutedStyle.Render("billable"), successStyle.Render(timefmt.Short(r.summary.Billable)),
		mutedStyle.Render("approved"), highlightStyle.Render(timefmt.Short(r.summary.Approved)),
		mutedStyle.Render("pending"), warningStyle.Render(timefmt.Short(r.summary.Pending)),
	)

	chartView := r.chart.View()
	tableView := r.renderActivityTable(w)
	nav := mutedStyle.Render("  ←/→: date range  tab: grouping  p/c/m: project/client/member  s: status  b: billable  a: approve")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", summaryRow, "", chartView, "", tableView, "", nav,
		),
	)
}

func (r reportsModel) renderActivityTable(w int) string {
	if len(r.filtered) == 0 {
		return mutedStyle.Render("  No activities for this filter")
	}

	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-12s %-16s %-14s %-10s %10s", "Date", "Project", "Member", "Status", "Duration"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 66))))

	limit := r.tableLimit()
	for i, a := range r.filtered[:limit] {
		dateStr := "—"
		if !a.Date.IsZero() {
			dateStr = a.Date.Local().Format("2006-01-02")
		}
		row := fmt.Sprintf("%-12s %-16s %-14s %-10s %10s",
			dateStr, a.Project, a.Member, a.Status, timefmt.Colon(a.Seconds),
		)
		if i == r.cursor {
			rows = append(rows, selectedItemStyle.Render("> "+row))
		} else {
			rows = append(rows, "  "+row)
		}
	}

	return strings.Join(rows, "\n")
}
