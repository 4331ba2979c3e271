package components

import "strings"

// Button is a dialog button. It draws its label in brackets and fills with
// the primary colour when active.
type Button struct {
	BaseComponent
	label    string
	slot     PaletteSlot
	active   bool
	disabled bool
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{BaseComponent: NewBaseComponent(), label: label, slot: PalettePrimary}
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	switch {
	case b.disabled:
		style = style.Inherit(ctx.Theme.Muted).Faint(true)
	case b.active:
		cs := b.slot(ctx.Theme.Palette)
		style = style.Background(cs.Base).Foreground(cs.OnBase).Bold(true)
	}
	return style.Render("[ " + b.label + " ]")
}

// WithSlot sets the palette slot used when active.
func (b *Button) WithSlot(slot PaletteSlot) *Button {
	b.slot = slot
	return b
}

// WithActive marks the button as the selected one.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithDisabled greys the button out.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the label.
func (b *Button) Label() string { return b.label }

// IsActive reports whether the button is selected.
func (b *Button) IsActive() bool { return b.active }

// IsDisabled reports whether the button is greyed out.
func (b *Button) IsDisabled() bool { return b.disabled }

// ButtonRow renders buttons side by side, the one at active highlighted.
func ButtonRow(ctx RenderContext, active int, labels ...string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = NewButton(label).WithActive(i == active).ViewWithContext(ctx)
	}
	return strings.Join(parts, "  ")
}
