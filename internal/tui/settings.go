package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/timefmt"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings     []store.Setting
	totalTracked int64
	formActive   bool
	form         *huh.Form

	// Form values as pointers (survive value copies)
	displayName  *string
	dailyTarget  *string
	weeklyTarget *string
	idleTimeout  *string
	idleAction   *string
}

func newSettingsModel(s *store.Store) settingsModel {
	dn, dt, wt, it, ia := "", "", "", "", ""
	return settingsModel{
		store:        s,
		displayName:  &dn,
		dailyTarget:  &dt,
		weeklyTarget: &wt,
		idleTimeout:  &it,
		idleAction:   &ia,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings     []store.Setting
	totalTracked int64
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		total, _ := s.store.TotalTracked()
		return settingsDataMsg{settings: settings, totalTracked: total}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		s.totalTracked = msg.totalTracked
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	// Load current values
	*s.displayName = s.getVal("display_name", "You")
	*s.dailyTarget = secsToHours(s.getVal("default_daily_target", "28800"))
	*s.weeklyTarget = secsToHours(s.getVal("default_weekly_target", "144000"))
	*s.idleTimeout = secsToMin(s.getVal("idle_timeout", "300"))
	*s.idleAction = s.getVal("idle_action", "pause")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Display name").Value(s.displayName),
			huh.NewInput().Title("Default daily target (hours)").Value(s.dailyTarget),
			huh.NewInput().Title("Default weekly target (hours)").Value(s.weeklyTarget),
		).Title("Profile"),
		huh.NewGroup(
			huh.NewInput().Title("Idle timeout (min)").Value(s.idleTimeout),
			huh.NewSelect[string]().Title("Idle action").
				Options(
					huh.NewOption("Pause", "pause"),
					huh.NewOption("Stop", "stop"),
				).Value(s.idleAction),
		).Title("Timer"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSettings()
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	s.store.SetSetting("display_name", *s.displayName)
	s.store.SetSetting("default_daily_target", hoursToSecs(*s.dailyTarget))
	s.store.SetSetting("default_weekly_target", hoursToSecs(*s.weeklyTarget))
	s.store.SetSetting("idle_timeout", minToSecs(*s.idleTimeout))
	s.store.SetSetting("idle_action", *s.idleAction)
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s %s",
		lipgloss.NewStyle().Width(24).Render(mutedStyle.Render("total tracked")),
		successStyle.Render(timefmt.Short(s.totalTracked)),
	))

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "idle_timeout":
		if secs, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%d min", secs/60)
		}
	case "default_daily_target", "default_weekly_target":
		if secs, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%.1f hours", float64(secs)/3600)
		}
	}
	return v
}

func secsToMin(s string) string {
	if secs, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(secs / 60)
	}
	return s
}

func minToSecs(s string) string {
	if mins, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(mins * 60)
	}
	return s
}

func secsToHours(s string) string {
	if secs, err := strconv.Atoi(s); err == nil {
		return fmt.Sprintf("%.1f", float64(secs)/3600)
	}
	return s
}

func hoursToSecs(s string) string {
	if hours, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.Itoa(int(hours * 3600))
	}
	return s
}
