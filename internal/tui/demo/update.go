package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.op == OpNone {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RowAddedMsg:
		rows := append(append([]Person(nil), m.grid.Rows()...), msg.Row)
		m.grid.SetRows(rows)
		m.op = OpNone
		m.status = fmt.Sprintf("Added %s.", msg.Row.Name)
		m.log.WithFields(map[string]any{"email": msg.Row.Email}).Info("row added")
		for _, input := range m.inputs {
			input.Clear()
		}
		return m, nil

	case RefreshedMsg:
		m.grid.SetRows(msg.Rows)
		m.grid.SetLoading(false)
		m.grid.ClearSelection()
		m.op = OpNone
		m.status = fmt.Sprintf("Refreshed %d rows.", len(msg.Rows))
		m.log.WithFields(map[string]any{"rows": len(msg.Rows)}).Info("dataset refreshed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.cycleFocus(1), nil
	case "shift+tab":
		return m.cycleFocus(-1), nil
	}

	if m.zone == ZoneForm {
		return m.handleFormKey(msg)
	}
	return m.handleGridKey(msg)
}

// cycleFocus moves focus forward or backward through the form fields
// and then the grid.
func (m Model) cycleFocus(step int) Model {
	if m.zone == ZoneGrid {
		m.setZone(ZoneForm)
		if step > 0 {
			m.focusInput(0)
		} else {
			m.focusInput(len(m.inputs) - 1)
		}
		return m
	}

	next := m.focusIdx + step
	if next < 0 || next >= len(m.inputs) {
		m.setZone(ZoneGrid)
		return m
	}
	m.focusInput(next)
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.submit()
	}

	cmd := m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "d":
		m.toggleTheme()
		return m, nil
	case "r":
		return m.refresh()
	case "x":
		return m.deleteSelected(), nil
	case "enter":
		rows := m.grid.VisibleRows()
		if c := m.grid.Cursor(); c < len(rows) {
			m.status = fmt.Sprintf("Opened %s <%s>.", rows[c].Name, rows[c].Email)
		}
		return m, nil
	}

	cmd := m.grid.Update(msg)
	return m, cmd
}

// submit validates the form and schedules the add behind the simulated
// latency. While the add is in flight the form ignores further submits.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.op != OpNone {
		return m, nil
	}

	valid := true
	for _, input := range m.inputs {
		if err := input.Validate(); err != nil {
			valid = false
		}
	}
	if !valid {
		m.status = "Fix the highlighted fields."
		return m, nil
	}

	email := strings.TrimSpace(m.inputs[1].Value())
	if taken(email, m.grid.Rows()) {
		m.status = fmt.Sprintf("%s is already in the dataset.", email)
		return m, nil
	}

	age := 0
	if v := strings.TrimSpace(m.inputs[2].Value()); v != "" {
		age, _ = strconv.Atoi(v)
	}

	row := Person{
		Name:   strings.TrimSpace(m.inputs[0].Value()),
		Email:  email,
		Age:    age,
		Status: "pending",
	}

	m.op = OpAddRow
	m.status = "Adding row..."
	return m, tea.Batch(m.spinner.Tick, addRowCmd(row))
}

// refresh reloads the seed dataset behind the simulated latency, showing
// the grid's loading state while in flight.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.op != OpNone {
		return m, nil
	}

	m.op = OpRefresh
	m.grid.SetLoading(true)
	m.status = "Refreshing..."
	return m, tea.Batch(m.spinner.Tick, refreshCmd(PeopleFromSeeds(m.cfg.People)))
}

// deleteSelected drops the selected rows from the dataset.
func (m Model) deleteSelected() Model {
	selected := m.grid.SelectedRows()
	if len(selected) == 0 {
		m.status = "Nothing selected."
		return m
	}

	drop := make(map[string]struct{}, len(selected))
	for _, p := range selected {
		drop[p.Email] = struct{}{}
	}

	var kept []Person
	for _, p := range m.grid.Rows() {
		if _, gone := drop[p.Email]; !gone {
			kept = append(kept, p)
		}
	}

	m.grid.SetRows(kept)
	m.grid.ClearSelection()
	m.status = fmt.Sprintf("Deleted %d rows.", len(selected))
	return m
}
