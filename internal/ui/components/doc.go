// Package components provides the theme-aware rendering primitives the widget
// toolkit draws with.
//
// # Overview
//
// Components render to strings through lipgloss. Themes are immutable and
// passed explicitly through RenderContext, so the same component renders the
// same output for the same context:
//
//	ctx := components.DefaultContext()
//	out := components.NewContainer(child).WithBorder(components.BorderVariantRounded).ViewWithContext(ctx)
//
// For simple cases View() uses the default theme.
//
// # Primitives
//
//   - Text: styled, optionally aligned text
//   - Divider: a horizontal rule that stretches to its allocated width
//   - Container: border, border title, padding and margin around one child
//
// # Style Modifiers
//
// Components accept StyleFunc appliers that read colours from the theme:
//
//	NewText("failed").WithAppliers(Foreground(PaletteDanger), Bold())
package components
