package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pulse/internal/store"
)

var projectColors = []string{"#6C63FF", "#2EC4B6", "#FF6B6B", "#F39C12", "#2ECC71", "#E74C3C", "#9B59B6", "#3498DB"}

type projectsModel struct {
	store  *store.Store
	width  int
	height int

	projects       []store.Project
	clients        []store.Client
	cursor         int
	clientCursor   int
	viewingClients bool // true = viewing the client roster

	formActive bool
	form       *huh.Form
	formType   string // "project", "edit_project", "client", "edit_client"

	// Form field pointers (survive value copies)
	formName    *string
	formColor   *string
	formClient  *int64
	formContact *string

	editingID int64
}

func newProjectsModel(s *store.Store) projectsModel {
	name, color, contact := "", projectColors[0], ""
	var client int64
	return projectsModel{
		store:       s,
		formName:    &name,
		formColor:   &color,
		formClient:  &client,
		formContact: &contact,
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type projectsDataMsg struct {
	projects []store.Project
	clients  []store.Client
}

func (p projectsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		projects, _ := p.store.ListProjects(false)
		clients, _ := p.store.ListClients(false)
		return projectsDataMsg{projects: projects, clients: clients}
	}
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		p.projects = msg.projects
		p.clients = msg.clients
		if p.cursor >= len(p.projects) {
			p.cursor = max(0, len(p.projects)-1)
		}
		if p.clientCursor >= len(p.clients) {
			p.clientCursor = max(0, len(p.clients)-1)
		}
		return p, nil

	case tea.KeyMsg:
		if p.viewingClients {
			return p.updateClientList(msg)
		}
		return p.updateProjectList(msg)
	}
	return p, nil
}

func (p projectsModel) updateProjectList(msg tea.KeyMsg) (projectsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.projects)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Clients):
		p.viewingClients = true
		return p, nil
	case key.Matches(msg, keys.New):
		return p.showProjectForm(nil)
	case key.Matches(msg, keys.Enter):
		if len(p.projects) > 0 {
			proj := p.projects[p.cursor]
			return p.showProjectForm(&proj)
		}
	case key.Matches(msg, keys.Delete):
		if len(p.projects) > 0 {
			proj := p.projects[p.cursor]
			p.store.ArchiveProject(proj.ID)
			return p, p.refresh()
		}
	}
	return p, nil
}

func (p projectsModel) updateClientList(msg tea.KeyMsg) (projectsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Clients):
		p.viewingClients = false
		return p, nil
	case key.Matches(msg, keys.Up):
		if p.clientCursor > 0 {
			p.clientCursor--
		}
	case key.Matches(msg, keys.Down):
		if p.clientCursor < len(p.clients)-1 {
			p.clientCursor++
		}
	case key.Matches(msg, keys.New):
		return p.showClientForm(nil)
	case key.Matches(msg, keys.Enter):
		if len(p.clients) > 0 {
			c := p.clients[p.clientCursor]
			return p.showClientForm(&c)
		}
	case key.Matches(msg, keys.Delete):
		if len(p.clients) > 0 {
			c := p.clients[p.clientCursor]
			p.store.ArchiveClient(c.ID)
			return p, p.refresh()
		}
	}
	return p, nil
}

// showProjectForm opens the create form when proj is nil, the edit form otherwise.
func (p projectsModel) showProjectForm(proj *store.Project) (projectsModel, tea.Cmd) {
	if proj == nil {
		*p.formName = ""
		*p.formColor = projectColors[0]
		*p.formClient = 0
		p.formType = "project"
		p.editingID = 0
	} else {
		*p.formName = proj.Name
		*p.formColor = proj.Color
		*p.formClient = 0
		if proj.ClientID != nil {
			*p.formClient = *proj.ClientID
		}
		p.formType = "edit_project"
		p.editingID = proj.ID
	}

	colorOptions := make([]huh.Option[string], len(projectColors))
	for i, c := range projectColors {
		colorOptions[i] = huh.NewOption(fmt.Sprintf("● %s", c), c)
	}
	clientOptions := []huh.Option[int64]{huh.NewOption("(none)", int64(0))}
	for _, c := range p.clients {
		clientOptions = append(clientOptions, huh.NewOption(c.Name, c.ID))
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project Name").Value(p.formName),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(p.formColor),
			huh.NewSelect[int64]().Title("Client").Options(clientOptions...).Value(p.formClient),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p projectsModel) showClientForm(c *store.Client) (projectsModel, tea.Cmd) {
	if c == nil {
		*p.formName = ""
		*p.formContact = ""
		p.formType = "client"
		p.editingID = 0
	} else {
		*p.formName = c.Name
		*p.formContact = c.Contact
		p.formType = "edit_client"
		p.editingID = c.ID
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client Name").Value(p.formName),
			huh.NewInput().Title("Contact (email)").Value(p.formContact),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p projectsModel) updateForm(msg tea.Msg) (projectsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		var clientID *int64
		if *p.formClient != 0 {
			id := *p.formClient
			clientID = &id
		}
		switch p.formType {
		case "project":
			if *p.formName != "" {
				p.store.CreateProject(*p.formName, *p.formColor, clientID)
			}
		case "edit_project":
			if *p.formName != "" {
				p.store.UpdateProject(p.editingID, *p.formName, *p.formColor, clientID)
			}
		case "client":
			if *p.formName != "" {
				p.store.CreateClient(*p.formName, *p.formContact)
			}
		case "edit_client":
			if *p.formName != "" {
				p.store.UpdateClient(p.editingID, *p.formName, *p.formContact)
			}
		}
		return p, p.refresh()
	}

	return p, cmd
}

func (p projectsModel) view() string {
	if p.formActive && p.form != nil {
		var title string
		switch p.formType {
		case "project":
			title = titleStyle.Render("New Project")
		case "edit_project":
			title = titleStyle.Render("Edit Project")
		case "client":
			title = titleStyle.Render("New Client")
		case "edit_client":
			title = titleStyle.Render("Edit Client")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
		return panelStyle.Width(p.width - 4).Render(content)
	}

	if p.viewingClients {
		return p.renderClientList()
	}
	return p.renderProjectList()
}

func (p projectsModel) renderProjectList() string {
	w := p.width - 4
	title := titleStyle.Render("Projects")

	if len(p.projects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No projects yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %-20s", "", "Name", "Client"))
	rows = append(rows, header)

	for i, proj := range p.projects {
		colorDot := lipgloss.NewStyle().Foreground(lipgloss.Color(proj.Color)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		client := proj.Client
		if client == "" {
			client = "—"
		}
		row := style.Render(fmt.Sprintf("%s%s %-24s %-20s", cursor, colorDot, proj.Name, client))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: edit  d: archive  c: clients"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (p projectsModel) renderClientList() string {
	w := p.width - 4
	title := titleStyle.Render("Clients")

	if len(p.clients) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No clients yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, c := range p.clients {
		cursor := "  "
		style := normalItemStyle
		if i == p.clientCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		contact := ""
		if c.Contact != "" {
			contact = mutedStyle.Render(" <" + c.Contact + ">")
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s", cursor, c.Name))+contact)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new client  enter: edit  d: archive  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
