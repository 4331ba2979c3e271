package dialogs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Button labels.
const (
	Ok     = "Ok"
	Yes    = "Yes"
	Cancel = "Cancel"
)

// AnsweredMsg reports a closed message box. Accepted is true when the first
// button was chosen.
type AnsweredMsg struct {
	ID       int
	Accepted bool
}

var messageKeys = struct {
	Left, Right, Choose, Cancel, Yes, No key.Binding
}{
	Left:   key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	Right:  key.NewBinding(key.WithKeys("right", "l", "tab")),
	Choose: key.NewBinding(key.WithKeys("enter", " ")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	Yes:    key.NewBinding(key.WithKeys("y")),
	No:     key.NewBinding(key.WithKeys("n")),
}

// Message is a modal message box with one or two buttons.
type Message struct {
	id       int
	alert    *components.Alert
	buttons  []string
	active   int
	done     bool
	accepted bool
	width    int
}

func newMessage(title, text string, variant components.AlertVariant, buttons ...string) *Message {
	return &Message{
		id:      nextID(),
		alert:   components.NewAlert(text).WithVariant(variant).WithTitle(title),
		buttons: buttons,
	}
}

// NewAlert creates a warning box with an Ok button.
func NewAlert(title, text string) *Message {
	return newMessage(title, text, components.AlertVariantWarning, Ok)
}

// NewConfirm creates a question with Yes and Cancel buttons. Only Yes
// accepts.
func NewConfirm(title, text string) *Message {
	return newMessage(title, text, components.AlertVariantQuestion, Yes, Cancel)
}

var errorTypes = map[string]components.AlertVariant{
	"error":   components.AlertVariantError,
	"warning": components.AlertVariantWarning,
	"info":    components.AlertVariantInfo,
}

// NewError creates an error box. kind is "Error", "Warning" or "Info" in
// any case; empty means "Error".
func NewError(title, text, kind string) (*Message, error) {
	if kind == "" {
		kind = "error"
	}
	variant, ok := errorTypes[strings.ToLower(kind)]
	if !ok {
		return nil, uierrors.NewValueError("msg_type", "unknown message type %q", kind)
	}
	return newMessage(title, text, variant, Ok), nil
}

// ID identifies the dialog in its messages.
func (m *Message) ID() int { return m.id }

// Title returns the title.
func (m *Message) Title() string { return m.alert.Title() }

// Text returns the message text.
func (m *Message) Text() string { return m.alert.Message() }

// Variant returns the icon and colour variant.
func (m *Message) Variant() components.AlertVariant { return m.alert.Variant() }

// Buttons returns the button labels.
func (m *Message) Buttons() []string { return m.buttons }

// Active returns the index of the highlighted button.
func (m *Message) Active() int { return m.active }

// Done reports whether the box has closed.
func (m *Message) Done() bool { return m.done }

// Accepted reports whether the first button closed the box.
func (m *Message) Accepted() bool { return m.accepted }

// Init does nothing.
func (m *Message) Init() tea.Cmd { return nil }

func (m *Message) finish(accepted bool) tea.Cmd {
	m.done = true
	m.accepted = accepted
	msg := AnsweredMsg{ID: m.id, Accepted: accepted}
	return func() tea.Msg { return msg }
}

// Update moves between buttons and closes on a choice. Esc closes without
// accepting.
func (m *Message) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	n := len(m.buttons)
	switch {
	case key.Matches(k, messageKeys.Cancel):
		return m.finish(false)
	case key.Matches(k, messageKeys.Choose):
		return m.finish(m.active == 0)
	case key.Matches(k, messageKeys.Left):
		m.active = (m.active + n - 1) % n
	case key.Matches(k, messageKeys.Right):
		m.active = (m.active + 1) % n
	case n > 1 && key.Matches(k, messageKeys.Yes):
		return m.finish(true)
	case n > 1 && key.Matches(k, messageKeys.No):
		return m.finish(false)
	}
	return nil
}

// SetSize sets the outer width.
func (m *Message) SetSize(width, _ int) { m.width = width }

// View renders the box with its buttons.
func (m *Message) View() string {
	ctx := components.DefaultContext()
	return m.alert.
		WithFooter(components.ButtonRow(ctx, m.active, m.buttons...)).
		WithWidth(m.width).
		ViewWithContext(ctx)
}
