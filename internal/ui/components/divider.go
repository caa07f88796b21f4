package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider using the default line character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// ThickDivider creates a heavy-line divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.MaxWidth > 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = 40
	}

	style := d.ComputeStyle(ctx.Theme)
	if len(d.appliers) == 0 {
		style = ApplyStyles(style, ctx.Theme, MutedForeground(PaletteNeutral))
	}
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}
