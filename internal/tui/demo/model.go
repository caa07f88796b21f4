package demo

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbickler/termgrid/internal/config"
	"github.com/jbickler/termgrid/internal/grid"
	"github.com/jbickler/termgrid/internal/logger"
	"github.com/jbickler/termgrid/internal/ui/components"
)

// Model drives the interactive widget demo: a validated form feeding a
// sortable, selectable, paginated grid, with simulated latency on the
// mutating actions.
type Model struct {
	cfg *config.Config
	log *logger.Logger

	theme components.Theme
	dark  bool

	inputs   []*components.TextInput
	focusIdx int
	zone     FocusZone

	grid *grid.Model[Person]

	spinner spinner.Model
	op      Operation

	status string

	width  int
	height int
}

// NewModel builds the demo model from configuration.
func NewModel(cfg *config.Config, log *logger.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	dark := cfg.Theme != "light"
	theme := themeFor(dark)

	name := components.NewTextInput("Name").
		WithPlaceholder("Ada Lovelace").
		WithRequired(true).
		WithWidth(30)
	email := components.NewTextInput("Email").
		WithPlaceholder("ada@example.com").
		WithRequired(true).
		WithRule("email").
		WithWidth(30)
	age := components.NewTextInput("Age").
		WithPlaceholder("30").
		WithRule("numeric").
		WithHelp("Leave empty for unknown").
		WithWidth(30)

	g := NewGrid(cfg)
	g.OnSelect(func(rows []Person) {
		log.WithFields(map[string]any{"selected": len(rows)}).Debug("selection changed")
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		cfg:     cfg,
		log:     log,
		theme:   theme,
		dark:    dark,
		inputs:  []*components.TextInput{name, email, age},
		grid:    g,
		spinner: sp,
		status:  "Fill the form and press enter to add a row.",
	}
	m.focusInput(0)
	return m
}

func themeFor(dark bool) components.Theme {
	if dark {
		return components.DarkTheme()
	}
	return components.LightTheme()
}

// Init starts the bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.inputs[0].Focus())
}

// Grid exposes the underlying grid model.
func (m Model) Grid() *grid.Model[Person] {
	return m.grid
}

// Busy reports whether an async operation is in flight.
func (m Model) Busy() bool {
	return m.op != OpNone
}

// Zone returns the focused input zone.
func (m Model) Zone() FocusZone {
	return m.zone
}

// Dark reports whether the dark theme is active.
func (m Model) Dark() bool {
	return m.dark
}

// Status returns the current status-bar text.
func (m Model) Status() string {
	return m.status
}

func (m *Model) focusInput(index int) {
	m.focusIdx = index
	for i, input := range m.inputs {
		if i == index && m.zone == ZoneForm {
			input.Focus()
			continue
		}
		input.Blur()
	}
}

func (m *Model) setZone(zone FocusZone) {
	m.zone = zone
	if zone == ZoneForm {
		m.focusInput(m.focusIdx)
		return
	}
	for _, input := range m.inputs {
		input.Blur()
	}
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	m.theme = themeFor(m.dark)
}
