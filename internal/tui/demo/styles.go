package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbickler/termgrid/internal/ui/components"
)

const helpSeparator = "  ·  "

func titleStyle(theme components.Theme) lipgloss.Style {
	return theme.Typography.Title.MarginBottom(1)
}

func helpStyle(theme components.Theme) lipgloss.Style {
	return theme.Typography.Muted.MarginTop(1)
}

func statusStyle(theme components.Theme) lipgloss.Style {
	return theme.Typography.Body.
		Foreground(theme.Palette.Info.Base).
		MarginTop(1)
}

// focusMarker prefixes the focused section's title.
func focusMarker(focused bool) string {
	if focused {
		return "▸ "
	}
	return "  "
}
