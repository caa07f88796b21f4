package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbickler/termgrid/internal/ui/components"
)

const checkboxWidth = 3

// View renders the grid with the default theme.
func (m *Model[T]) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the grid against the supplied render context.
// Column headers render in every display mode; the body is gated by
// Mode, and the pagination footer only appears for populated paginated
// grids.
func (m *Model[T]) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	widths := m.columnWidths()

	var b strings.Builder
	b.WriteString(m.renderHeader(theme, widths))
	b.WriteString("\n")

	switch m.Mode() {
	case ModeLoading:
		b.WriteString(m.renderNotice(theme, "Loading..."))
	case ModeEmpty:
		b.WriteString(m.renderNotice(theme, m.emptyMessage))
	default:
		b.WriteString(m.renderBody(theme, widths))
		if m.paginated {
			b.WriteString("\n")
			b.WriteString(m.renderFooter(theme))
		}
	}

	return b.String()
}

// columnWidths resolves each column's display width. A fixed Width
// wins; otherwise the widest visible cell or the header, whichever is
// larger.
func (m *Model[T]) columnWidths() []int {
	widths := make([]int, len(m.columns))
	entries := m.visibleEntries()
	for i, col := range m.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := lipgloss.Width(col.Title)
		if col.Sortable {
			w += 2
		}
		for offset, e := range entries {
			if cw := lipgloss.Width(col.CellText(e.row, offset)); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}
	return widths
}

func (m *Model[T]) renderHeader(theme components.Theme, widths []int) string {
	label := theme.Typography.ForVariant(components.TypographyVariantLabel)
	active := label.Foreground(theme.Palette.Primary.Base)

	cells := make([]string, 0, len(m.columns)+1)
	if m.selectable {
		cells = append(cells, label.Width(checkboxWidth).Render(m.headerCheckbox()))
	}
	for i, col := range m.columns {
		title := col.Title
		if col.Sortable {
			indicator := SortNone.Indicator()
			if m.sort.Column == col.Key {
				indicator = m.sort.Direction.Indicator()
			}
			title += " " + indicator
		}
		style := label
		if i == m.activeColumn {
			style = active
		}
		cells = append(cells, m.cell(style, title, widths[i], col.Alignment))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinCells(cells)...)
}

// headerCheckbox mirrors the page selection state: checked when every
// visible row is selected, dashed when only some are.
func (m *Model[T]) headerCheckbox() string {
	switch {
	case m.AllSelectedOnPage():
		return "[x]"
	case m.IndeterminateOnPage():
		return "[-]"
	default:
		return "[ ]"
	}
}

func (m *Model[T]) renderBody(theme components.Theme, widths []int) string {
	body := theme.Typography.ForVariant(components.TypographyVariantBody)
	highlighted := body.
		Background(theme.Palette.Surface.Muted).
		Bold(true)
	selected := body.Foreground(theme.Palette.Primary.Base)

	entries := m.visibleEntries()
	lines := make([]string, 0, len(entries))
	for offset, e := range entries {
		id := m.rowID(e.row, e.index)
		rowStyle := body
		if m.selectable && m.selection.Has(id) {
			rowStyle = selected
		}
		if offset == m.cursor {
			rowStyle = highlighted
		}

		cells := make([]string, 0, len(m.columns)+1)
		if m.selectable {
			box := "[ ]"
			if m.selection.Has(id) {
				box = "[x]"
			}
			cells = append(cells, rowStyle.Width(checkboxWidth).Render(box))
		}
		for i, col := range m.columns {
			cells = append(cells, m.cell(rowStyle, col.CellText(e.row, offset), widths[i], col.Alignment))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, joinCells(cells)...))
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) renderNotice(theme components.Theme, text string) string {
	return theme.Typography.
		ForVariant(components.TypographyVariantMuted).
		Padding(1, 2).
		Render(text)
}

func (m *Model[T]) renderFooter(theme components.Theme) string {
	muted := theme.Typography.ForVariant(components.TypographyVariantMuted)
	control := theme.Typography.
		ForVariant(components.TypographyVariantLabel).
		Foreground(theme.Palette.Primary.Base)
	disabled := muted.Faint(true)

	prev := control
	if m.page.AtFirst() {
		prev = disabled
	}
	next := control
	if m.page.AtLast(len(m.rows)) {
		next = disabled
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		prev.Render("← Prev"),
		muted.Render("  "+m.StatusLine()+"  ·  "+m.PageLine()+"  "),
		next.Render("Next →"),
	)
}

func (m *Model[T]) cell(style lipgloss.Style, text string, width int, align Align) string {
	pos := lipgloss.Left
	switch align {
	case AlignCenter:
		pos = lipgloss.Center
	case AlignRight:
		pos = lipgloss.Right
	}
	return style.Width(width).Align(pos).Render(text)
}

// joinCells interleaves a two-cell gutter between columns.
func joinCells(cells []string) []string {
	if len(cells) <= 1 {
		return cells
	}
	out := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}
	return out
}
