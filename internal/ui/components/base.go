package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbickler/termgrid/internal/ui"
)

// StyleFunc applies a theme-aware transformation to a lipgloss.Style.
// It is the core abstraction for themeable styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// ApplyStyles runs the appliers over base in order.
func ApplyStyles(base lipgloss.Style, theme Theme, appliers ...StyleFunc) lipgloss.Style {
	for _, fn := range appliers {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// RenderContext carries the theme and layout information components need
// while rendering. Themes flow explicitly through the context; there is no
// global theme state.
type RenderContext struct {
	Theme    Theme
	MaxWidth int
}

// DefaultContext returns a render context with the default theme and no
// width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using the supplied theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme.Normalize()
	return r
}

// WithMaxWidth returns a copy of the context constrained to width cells.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// ContextualRenderable is a component that can receive a render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders a child with the context when it supports one.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// BaseComponent provides shared styling plumbing for components.
// Embed it to get WithAppliers-style behaviour.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates an unstyled base component.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the final style for the given theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return ApplyStyles(b.style, theme, b.appliers...)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the theme-aware style appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends style appliers, preserving existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	next = append(next, b.appliers...)
	next = append(next, appliers...)
	b.appliers = next
}

// Fluent modifier functions.

// Background applies a semantic background colour with matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// MutedForeground applies a slot's muted foreground colour.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Border applies a border variant from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.ForVariant(variant))
	}
}

// BorderForeground colours the border with a slot's base colour.
func BorderForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Padding applies uniform padding from the spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(theme.Spacing.Value(size))
	}
}

// PaddingX applies horizontal padding from the spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// MarginX applies horizontal margin from the spacing scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// MarginY applies vertical margin from the spacing scale.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography inherits a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.ForVariant(variant))
	}
}
