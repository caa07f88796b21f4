package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbickler/termgrid/internal/ui/components"
)

// View renders the demo page.
func (m Model) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme)
	if m.width > 0 {
		ctx = ctx.WithMaxWidth(m.width)
	}

	sections := []string{
		titleStyle(m.theme).Render("termgrid demo"),
		m.renderForm(ctx),
		m.renderGrid(ctx),
		m.renderStats(ctx),
		m.renderStatus(),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderForm(ctx components.RenderContext) string {
	children := make([]string, 0, len(m.inputs))
	for _, input := range m.inputs {
		children = append(children, input.ViewWithContext(ctx))
	}

	panel := components.NewPanel().
		WithTitle(focusMarker(m.zone == ZoneForm) + "Add person")
	for _, child := range children {
		panel.Add(components.NewText(child))
	}
	return panel.ViewWithContext(ctx)
}

func (m Model) renderGrid(ctx components.RenderContext) string {
	panel := components.NewPanel(components.NewText(m.grid.ViewWithContext(ctx))).
		WithTitle(focusMarker(m.zone == ZoneGrid) + "People")
	return panel.ViewWithContext(ctx)
}

func (m Model) renderStats(ctx components.RenderContext) string {
	stats := components.HStack(
		components.PrimaryBadge(fmt.Sprintf("%d rows", len(m.grid.Rows()))),
		components.InfoBadge(fmt.Sprintf("%d selected", m.grid.SelectionCount())),
		components.MutedText(m.grid.PageLine()),
	).WithGap(2).WithAlign(lipgloss.Center)

	return stats.ViewWithContext(ctx)
}

func (m Model) renderStatus() string {
	status := m.status
	if m.op != OpNone {
		status = m.spinner.View() + " " + status
	}
	return statusStyle(m.theme).Render(status)
}

func (m Model) renderHelp() string {
	var keys []string
	if m.zone == ZoneForm {
		keys = []string{
			"tab/shift+tab move",
			"enter add row",
		}
	} else {
		keys = []string{
			"↑/↓ row",
			"←/→ column",
			"s sort",
			"space select",
			"a select page",
			"[/] page",
			"x delete",
			"r refresh",
			"d theme",
			"q quit",
		}
	}
	keys = append(keys, "ctrl+c quit")
	return helpStyle(m.theme).Render(strings.Join(keys, helpSeparator))
}
