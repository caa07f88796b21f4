package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic colour slot with base, on-base, muted,
// and contrast colours.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// PaletteSlot selects one semantic colour slot from a palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant is a strongly-typed border token.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// ForVariant resolves a border token against the set.
func (b BorderSet) ForVariant(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return b.Normal
	case BorderVariantRounded:
		return b.Rounded
	case BorderVariantThick:
		return b.Thick
	case BorderVariantDouble:
		return b.Double
	default:
		return b.None
	}
}

// SpacingSize enumerates supported spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

// SpacingScale maps spacing tokens to cell counts.
type SpacingScale [spacingSizeCount]int

// Value looks up a spacing token, falling back to the medium value for
// out-of-range tokens.
func (s SpacingScale) Value(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(s) {
		index = int(SpacingSizeMedium)
	}
	return s[index]
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantLabel
	TypographyVariantEmphasis
	TypographyVariantMuted
	TypographyVariantCode
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
	Code     lipgloss.Style
}

// ForVariant resolves a typography token against the scale.
func (t TypographyScale) ForVariant(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return t.Title
	case TypographyVariantSubtitle:
		return t.Subtitle
	case TypographyVariantLabel:
		return t.Label
	case TypographyVariantEmphasis:
		return t.Emphasis
	case TypographyVariantMuted:
		return t.Muted
	case TypographyVariantCode:
		return t.Code
	default:
		return t.Body
	}
}

// InputState describes the visual state of an input control.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
)

// InputStyles describes default/focus/invalid styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// ForState resolves the style for an input state.
func (s InputStyles) ForState(state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return s.Focus
	case InputStateInvalid:
		return s.Invalid
	default:
		return s.Default
	}
}

// Theme represents the complete styling theme for components.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingScale
	Typography TypographyScale
	Input      InputStyles
}

// Normalize fills zero-valued sections with sensible defaults.
func (t Theme) Normalize() Theme {
	if spacingScaleIsZero(t.Spacing) {
		t.Spacing = defaultSpacingScale()
	}
	return t
}

func spacingScaleIsZero(scale SpacingScale) bool {
	for _, value := range scale {
		if value != 0 {
			return false
		}
	}
	return true
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light-leaning default theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#2563eb", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#1d4ed8", "#1e40af"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#16a34a", "#4ade80"),
			OnBase:   ac("#f0fdf4", "#052e16"),
			Muted:    ac("#15803d", "#166534"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#ca8a04", "#facc15"),
			OnBase:   ac("#fefce8", "#422006"),
			Muted:    ac("#a16207", "#854d0e"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#dc2626", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#b91c1c", "#991b1b"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#0891b2", "#22d3ee"),
			OnBase:   ac("#ecfeff", "#083344"),
			Muted:    ac("#0e7490", "#155e75"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Spacing:    defaultSpacingScale(),
		Typography: defaultTypography(palette),
		Input:      defaultInputStyles(palette, borders),
	}

	return theme.Normalize()
}

// DarkTheme returns a dark variant with inverted surface slots.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#60a5fa", "#60a5fa"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}

	theme.Typography = defaultTypography(theme.Palette)
	theme.Input = defaultInputStyles(theme.Palette, theme.Borders)
	return theme.Normalize()
}

// LightTheme is an alias for the default theme.
func LightTheme() Theme {
	return DefaultTheme()
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Faint(true).Foreground(p.Neutral.Base),
		Label:    body.Bold(true),
		Emphasis: body.Bold(true),
		Muted:    body.Faint(true),
		Code: body.
			Foreground(p.Info.Base).
			Background(p.Surface.Muted).
			Padding(0, 1),
	}
}

func defaultInputStyles(p Palette, b BorderSet) InputStyles {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.Surface.OnBase)

	return InputStyles{
		Default: base.
			BorderStyle(b.Rounded).
			BorderForeground(p.Neutral.Muted),
		Focus: base.
			BorderStyle(b.Thick).
			BorderForeground(p.Primary.Base),
		Invalid: base.
			BorderStyle(b.Thick).
			BorderForeground(p.Danger.Base),
	}
}
