// Package components provides a declarative, theme-aware UI component library
// for terminal applications.
//
// # Theme System
//
// Themes are immutable value types passed explicitly through RenderContext,
// eliminating global state:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically.
//
// # Components
//
// Primitives:
//   - Text: styled text content
//   - Divider: visual separators
//   - Badge: status indicators
//
// Layout:
//   - Stack: vertical/horizontal arrangement with gaps and alignment
//   - Panel: bordered, titled container for sections
//
// Widgets:
//   - TextInput: labelled text entry with required/format validation,
//     inline error text, and change callbacks
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	badge := NewBadge("beta").WithAppliers(
//		Background(PaletteInfo),
//		PaddingX(SpacingSizeSmall),
//	)
//
// Modifiers resolve against the theme at render time, so a component renders
// correctly under any theme it is given. Typed enums (PaletteSlot,
// BorderVariant, SpacingSize, TypographyVariant, InputState) replace magic
// strings throughout.
package components
