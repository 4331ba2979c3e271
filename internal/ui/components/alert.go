package components

import "github.com/charmbracelet/lipgloss"

// AlertVariant selects the icon and border colour of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
	AlertVariantQuestion
)

var alertIcons = map[AlertVariant]string{
	AlertVariantInfo:     "ℹ",
	AlertVariantSuccess:  "✓",
	AlertVariantWarning:  "⚠",
	AlertVariantError:    "✖",
	AlertVariantQuestion: "?",
}

var alertSlots = map[AlertVariant]PaletteSlot{
	AlertVariantInfo:     PaletteInfo,
	AlertVariantSuccess:  PaletteSuccess,
	AlertVariantWarning:  PaletteWarning,
	AlertVariantError:    PaletteDanger,
	AlertVariantQuestion: PalettePrimary,
}

// Alert is a bordered message box. Dialogs draw their body with it.
type Alert struct {
	BaseComponent
	title   string
	message string
	icon    string
	variant AlertVariant
	footer  string
	width   int
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{BaseComponent: NewBaseComponent(), message: message, icon: alertIcons[AlertVariantInfo]}
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon and message with the footer below them.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	body := a.message
	if a.icon != "" {
		icon := lipgloss.NewStyle().Foreground(alertSlots[a.variant](ctx.Theme.Palette).Base).Render(a.icon)
		body = icon + " " + body
	}
	if a.footer != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", a.footer)
	}

	text := NewText(body).WithStyle(a.ComputeStyle(ctx.Theme))
	box := NewContainer(text).
		WithBorder(BorderVariantRounded).
		WithBorderColor(alertSlots[a.variant](ctx.Theme.Palette).Base).
		WithPadding(CustomSpacing(2, 1, 2, 1)).
		WithTitle(a.title)
	if a.width > 0 {
		box.SetSize(a.width, 0)
	}
	return box.ViewWithContext(ctx)
}

// WithVariant sets the variant and its icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	a.icon = alertIcons[variant]
	return a
}

// Variant returns the variant.
func (a *Alert) Variant() AlertVariant { return a.variant }

// WithIcon replaces the icon. An empty icon hides it.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle sets the title drawn into the border.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithFooter sets a line drawn under the message, usually buttons.
func (a *Alert) WithFooter(footer string) *Alert {
	a.footer = footer
	return a
}

// WithWidth fixes the outer width.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// Message returns the message.
func (a *Alert) Message() string { return a.message }

// SetMessage replaces the message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// Title returns the border title.
func (a *Alert) Title() string { return a.title }
