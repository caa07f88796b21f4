package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text string
	slot PaletteSlot
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		slot:          PaletteNeutral,
	}
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := ApplyStyles(
		b.ComputeStyle(ctx.Theme),
		ctx.Theme,
		Background(b.slot),
		PaddingX(SpacingSizeExtraSmall),
	)
	return style.Bold(true).Render(b.text)
}

// WithSlot sets the badge's semantic colour slot.
func (b *Badge) WithSlot(slot PaletteSlot) *Badge {
	b.slot = slot
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SetText updates the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// Convenience constructors.

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PalettePrimary)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteWarning)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteDanger)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteInfo)
}
