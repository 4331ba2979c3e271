package components

import "github.com/charmbracelet/lipgloss"

// ColourSet groups the colours used for one semantic role.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette maps semantic roles to colour sets.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Debug   ColourSet
	Accent  ColourSet
	Neutral ColourSet
}

// BorderVariant names a border shape from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// Theme is an immutable bundle of palette and border choices passed through
// RenderContext.
type Theme struct {
	Palette Palette
	Borders map[BorderVariant]lipgloss.Border
	Focus   lipgloss.Style
	Muted   lipgloss.Style
	Title   lipgloss.Style
}

// DefaultTheme returns the theme used when none is supplied.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Surface: ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#e5e7eb"), Muted: ac("#e5e7eb", "#1f2937")},
		Success: ColourSet{Base: ac("#16a34a", "#4ade80"), OnBase: ac("#f0fdf4", "#052e16"), Muted: ac("#bbf7d0", "#14532d")},
		Warning: ColourSet{Base: ac("#d97706", "#fbbf24"), OnBase: ac("#fffbeb", "#451a03"), Muted: ac("#fde68a", "#78350f")},
		Danger:  ColourSet{Base: ac("#dc2626", "#f87171"), OnBase: ac("#fef2f2", "#450a0a"), Muted: ac("#fecaca", "#7f1d1d")},
		Info:    ac3("#0891b2", "#22d3ee"),
		Debug:   ac3("#2563eb", "#93c5fd"),
		Accent:  ac3("#a21caf", "#e879f9"),
		Neutral: ColourSet{Base: ac("#6b7280", "#9ca3af"), OnBase: ac("#f9fafb", "#111827"), Muted: ac("#d1d5db", "#374151")},
	}

	return Theme{
		Palette: palette,
		Borders: map[BorderVariant]lipgloss.Border{
			BorderVariantNone:    lipgloss.HiddenBorder(),
			BorderVariantNormal:  lipgloss.NormalBorder(),
			BorderVariantRounded: lipgloss.RoundedBorder(),
			BorderVariantThick:   lipgloss.ThickBorder(),
			BorderVariantDouble:  lipgloss.DoubleBorder(),
		},
		Focus: lipgloss.NewStyle().Foreground(palette.Primary.Base).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(palette.Neutral.Base),
		Title: lipgloss.NewStyle().Bold(true),
	}
}

func ac3(light, dark string) ColourSet {
	base := lipgloss.AdaptiveColor{Light: light, Dark: dark}
	return ColourSet{Base: base, OnBase: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}, Muted: base}
}

// BorderForVariant returns the border for variant, falling back to a normal border.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	if border, ok := theme.Borders[variant]; ok {
		return border
	}
	return lipgloss.NormalBorder()
}

// PaletteSlot selects a colour set from a palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteDebug   PaletteSlot = func(p Palette) ColourSet { return p.Debug }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour with its matching foreground.
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

// Border applies a border shape from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// BorderVariantNames maps markup names to border variants.
var BorderVariantNames = map[string]BorderVariant{
	"none":    BorderVariantNone,
	"normal":  BorderVariantNormal,
	"rounded": BorderVariantRounded,
	"thick":   BorderVariantThick,
	"double":  BorderVariantDouble,
}
