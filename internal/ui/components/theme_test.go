package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultThemeSpacing(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, 0, theme.Spacing.Value(SpacingSizeNone))
	assert.Equal(t, 1, theme.Spacing.Value(SpacingSizeExtraSmall))
	assert.Equal(t, 4, theme.Spacing.Value(SpacingSizeLarge))

	// Out-of-range tokens fall back to medium.
	assert.Equal(t, theme.Spacing.Value(SpacingSizeMedium), theme.Spacing.Value(SpacingSize(99)))
}

func TestNormalizeFillsSpacing(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()
	assert.Equal(t, defaultSpacingScale(), theme.Spacing)
}

func TestDarkThemeDiffersFromLight(t *testing.T) {
	t.Parallel()

	light := LightTheme()
	dark := DarkTheme()
	assert.NotEqual(t, light.Palette.Surface, dark.Palette.Surface)
}

func TestBorderSetForVariant(t *testing.T) {
	t.Parallel()

	borders := DefaultTheme().Borders
	assert.Equal(t, borders.Rounded, borders.ForVariant(BorderVariantRounded))
	assert.Equal(t, borders.Thick, borders.ForVariant(BorderVariantThick))
	assert.Equal(t, borders.None, borders.ForVariant(BorderVariant(99)))
}

func TestInputStylesForState(t *testing.T) {
	t.Parallel()

	styles := DefaultTheme().Input
	assert.Equal(t, styles.Focus, styles.ForState(InputStateFocus))
	assert.Equal(t, styles.Invalid, styles.ForState(InputStateInvalid))
	assert.Equal(t, styles.Default, styles.ForState(InputStateDefault))
}

func TestRenderContextWithTheme(t *testing.T) {
	t.Parallel()

	ctx := RenderContext{}.WithTheme(Theme{})
	assert.Equal(t, defaultSpacingScale(), ctx.Theme.Spacing, "WithTheme normalizes")

	ctx = ctx.WithMaxWidth(80)
	assert.Equal(t, 80, ctx.MaxWidth)
}
