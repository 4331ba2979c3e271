package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a push button.
type Button struct {
	Base
	focusState
	text string

	Clicked Notify
}

// NewButton creates a button without text.
func NewButton() *Button {
	return &Button{Base: newBase()}
}

// SetText sets the caption.
func (b *Button) SetText(text string) { b.text = text }

// Text returns the caption.
func (b *Button) Text() string { return b.text }

// Click emits Clicked.
func (b *Button) Click() { b.Clicked.Emit() }

// Update clicks on enter or space while focused, or on the shortcut.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if (b.focused && isActivate(key)) || b.MatchesShortcut(key) {
			b.Click()
		}
	}
	return nil
}

func (b *Button) content() string {
	label := b.text
	if g := b.glyph(); g != "" {
		if label == "" {
			label = g
		} else {
			label = g + " " + label
		}
	}
	return focusMark(b.focused, "[ "+label+" ]")
}

// View renders the button.
func (b *Button) View() string { return b.frame(b.content()) }

// SizeHint returns the natural size.
func (b *Button) SizeHint() (int, int) { return b.hint(b.content()) }

// ToolButtonStyle selects how a tool button lays out icon and text.
type ToolButtonStyle int

const (
	ToolButtonIconOnly ToolButtonStyle = iota
	ToolButtonTextOnly
	ToolButtonTextBesideIcon
	ToolButtonTextUnderIcon
)

// ToolButtonStyleNames maps markup names to styles.
var ToolButtonStyleNames = map[string]ToolButtonStyle{
	"icon_only":        ToolButtonIconOnly,
	"text_only":        ToolButtonTextOnly,
	"text_beside_icon": ToolButtonTextBesideIcon,
	"text_under_icon":  ToolButtonTextUnderIcon,
}

// ToolButton is a compact button for toolbars.
type ToolButton struct {
	Button
	buttonStyle ToolButtonStyle
}

// NewToolButton creates a tool button with text under its icon.
func NewToolButton() *ToolButton {
	return &ToolButton{Button: Button{Base: newBase()}, buttonStyle: ToolButtonTextUnderIcon}
}

// SetToolButtonStyle sets the icon and text arrangement.
func (t *ToolButton) SetToolButtonStyle(style ToolButtonStyle) { t.buttonStyle = style }

// ToolButtonStyle returns the icon and text arrangement.
func (t *ToolButton) ToolButtonStyle() ToolButtonStyle { return t.buttonStyle }

func (t *ToolButton) content() string {
	glyph := t.glyph()
	var body string
	switch {
	case t.buttonStyle == ToolButtonIconOnly && glyph != "":
		body = glyph
	case t.buttonStyle == ToolButtonTextBesideIcon && glyph != "":
		body = glyph + " " + t.text
	case t.buttonStyle == ToolButtonTextUnderIcon && glyph != "":
		body = lipgloss.JoinVertical(lipgloss.Center, glyph, t.text)
	default:
		body = t.text
	}
	return focusMark(t.focused, body)
}

// View renders the tool button.
func (t *ToolButton) View() string { return t.frame(t.content()) }

// SizeHint returns the natural size.
func (t *ToolButton) SizeHint() (int, int) { return t.hint(t.content()) }
