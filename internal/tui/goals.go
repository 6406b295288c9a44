package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pulse/internal/logger"
	"github.com/sadopc/pulse/internal/store"
)

type goalsModel struct {
	store  *store.Store
	width  int
	height int

	goals  []store.Goal
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName   *string
	formTarget *string // hours
	formPeriod *string

	editingID int64 // 0 = creating
}

func newGoalsModel(s *store.Store) goalsModel {
	name, target, period := "", "", store.PeriodDaily
	return goalsModel{
		store:      s,
		formName:   &name,
		formTarget: &target,
		formPeriod: &period,
	}
}

func (g *goalsModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

type goalsDataMsg struct {
	goals []store.Goal
}

func (g goalsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		goals, err := g.store.ListGoals()
		if err != nil {
			logger.Error("load goals", logger.F("err", err))
		}
		return goalsDataMsg{goals: goals}
	}
}

func (g goalsModel) update(msg tea.Msg) (goalsModel, tea.Cmd) {
	if g.formActive && g.form != nil {
		return g.updateForm(msg)
	}

	switch msg := msg.(type) {
	case goalsDataMsg:
		g.goals = msg.goals
		if g.cursor >= len(g.goals) {
			g.cursor = max(0, len(g.goals)-1)
		}
		return g, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if g.cursor > 0 {
				g.cursor--
			}
		case key.Matches(msg, keys.Down):
			if g.cursor < len(g.goals)-1 {
				g.cursor++
			}
		case key.Matches(msg, keys.New):
			return g.showForm(nil)
		case key.Matches(msg, keys.Enter):
			if len(g.goals) > 0 {
				goal := g.goals[g.cursor]
				return g.showForm(&goal)
			}
		case key.Matches(msg, keys.Delete):
			if len(g.goals) > 0 {
				goal := g.goals[g.cursor]
				return g, g.deleteGoal(goal.ID)
			}
		}
	}
	return g, nil
}

// showForm opens the create form, or the edit form when goal is non-nil.
// Editing changes name, target and period only; accumulated progress is never
// recomputed.
func (g goalsModel) showForm(goal *store.Goal) (goalsModel, tea.Cmd) {
	if goal != nil {
		*g.formName = goal.Name
		*g.formTarget = strconv.FormatFloat(float64(goal.Target)/3600, 'f', -1, 64)
		*g.formPeriod = goal.Period
		g.editingID = goal.ID
	} else {
		*g.formName = ""
		*g.formTarget = ""
		*g.formPeriod = store.PeriodDaily
		g.editingID = 0
	}

	g.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal name").Value(g.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Target (hours)").Value(g.formTarget).
				Validate(func(s string) error {
					hours, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || hours <= 0 {
						return fmt.Errorf("enter a positive number of hours")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Period").
				Options(
					huh.NewOption("Daily", store.PeriodDaily),
					huh.NewOption("Weekly", store.PeriodWeekly),
					huh.NewOption("Monthly", store.PeriodMonthly),
				).Value(g.formPeriod),
		),
	).WithShowHelp(true).WithShowErrors(true)

	g.formActive = true
	return g, g.form.Init()
}

func (g goalsModel) updateForm(msg tea.Msg) (goalsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			g.formActive = false
			g.form = nil
			return g, nil
		}
	}

	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		g.formActive = false
		return g, g.saveGoal()
	}

	return g, cmd
}

func (g goalsModel) saveGoal() tea.Cmd {
	name := strings.TrimSpace(*g.formName)
	hours, _ := strconv.ParseFloat(strings.TrimSpace(*g.formTarget), 64)
	target := int64(hours * 3600)
	period := *g.formPeriod
	editingID := g.editingID

	return func() tea.Msg {
		var err error
		if editingID != 0 {
			err = g.store.UpdateGoal(editingID, name, target, period)
		} else {
			_, err = g.store.CreateGoal(name, target, period)
		}
		if err != nil {
			logger.Error("save goal", logger.F("err", err), logger.F("name", name))
			return statusMsg{text: fmt.Sprintf("Error saving goal: %v", err), isError: true}
		}
		return goalSavedMsg{}
	}
}

func (g goalsModel) deleteGoal(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := g.store.DeleteGoal(id); err != nil {
			logger.Error("delete goal", logger.F("err", err), logger.F("id", id))
			return statusMsg{text: fmt.Sprintf("Error deleting goal: %v", err), isError: true}
		}
		return goalDeletedMsg{}
	}
}

func (g goalsModel) view() string {
	w := g.width - 4

	if g.formActive && g.form != nil {
		title := titleStyle.Render("Goal")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", g.form.View()),
		)
	}

	title := titleStyle.Render("Goals")

	if len(g.goals) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No goals yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	barWidth := min(30, w-44)
	if barWidth < 10 {
		barWidth = 10
	}

	var rows []string
	rows = append(rows, title)
	for i, goal := range g.goals {
		cursor := "  "
		style := normalItemStyle
		if i == g.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor)+renderGoalRow(goal, barWidth))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
