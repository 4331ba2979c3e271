package widget

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LineEdit is a single line text entry backed by bubbles/textinput.
type LineEdit struct {
	Base
	input    textinput.Model
	mask     []maskSlot
	readOnly bool

	ReturnPressed Notify
	TextChanged   Signal[string]
}

// NewLineEdit creates an empty line edit.
func NewLineEdit() *LineEdit {
	input := textinput.New()
	input.Prompt = ""
	return &LineEdit{Base: newBase(), input: input}
}

// SetText replaces the text and emits TextChanged when it differs.
// Text that does not fit the input mask is ignored.
func (l *LineEdit) SetText(text string) {
	if text == l.input.Value() || !fitsMask(l.mask, text) {
		return
	}
	l.input.SetValue(text)
	l.input.CursorEnd()
	l.TextChanged.Emit(l.input.Value())
}

// Text returns the text.
func (l *LineEdit) Text() string { return l.input.Value() }

// SetPlaceholderText sets the text shown while empty.
func (l *LineEdit) SetPlaceholderText(text string) { l.input.Placeholder = text }

// PlaceholderText returns the placeholder.
func (l *LineEdit) PlaceholderText() string { return l.input.Placeholder }

// SetMaxLength limits the number of characters.
func (l *LineEdit) SetMaxLength(n int) { l.input.CharLimit = n }

// MaxLength returns the character limit; 0 means unlimited.
func (l *LineEdit) MaxLength() int { return l.input.CharLimit }

// SetReadOnly disables editing.
func (l *LineEdit) SetReadOnly(readOnly bool) { l.readOnly = readOnly }

// IsReadOnly reports whether editing is disabled.
func (l *LineEdit) IsReadOnly() bool { return l.readOnly }

// SetInputMask restricts input. Mask characters: 9/0 digit, A/a letter,
// N/n letter or digit, H/h hex digit, X/x any character; a backslash
// escapes the next character, anything else is a literal.
func (l *LineEdit) SetInputMask(mask string) { l.mask = parseMask(mask) }

// Focus gives the edit keyboard focus.
func (l *LineEdit) Focus() { l.input.Focus() }

// Blur removes keyboard focus.
func (l *LineEdit) Blur() { l.input.Blur() }

// Focused reports whether the edit has keyboard focus.
func (l *LineEdit) Focused() bool { return l.input.Focused() }

// SetSize sets the allocated size; the visible text width follows it.
func (l *LineEdit) SetSize(width, height int) {
	l.Base.SetSize(width, height)
	if width > 0 {
		l.input.Width = max(width-l.style.GetHorizontalFrameSize()-1, 1)
	}
}

// Update edits the text while focused.
func (l *LineEdit) Update(msg tea.Msg) tea.Cmd {
	if !l.input.Focused() {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type == tea.KeyEnter {
			l.ReturnPressed.Emit()
			return nil
		}
		if l.readOnly {
			return nil
		}
	}
	before := l.input.Value()
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	after := l.input.Value()
	if !fitsMask(l.mask, after) {
		l.input.SetValue(before)
		return cmd
	}
	if after != before {
		l.TextChanged.Emit(after)
	}
	return cmd
}

// View renders the edit.
func (l *LineEdit) View() string { return l.frame(l.input.View()) }

// SizeHint returns the natural size.
func (l *LineEdit) SizeHint() (int, int) {
	w := max(len([]rune(l.input.Value())), len([]rune(l.input.Placeholder)), 10) + 1
	return l.limits.ClampWidth(w + l.style.GetHorizontalFrameSize()), l.limits.ClampHeight(1 + l.style.GetVerticalFrameSize())
}

type maskSlot struct {
	class   rune
	literal bool
}

func parseMask(mask string) []maskSlot {
	if mask == "" {
		return nil
	}
	var slots []maskSlot
	escaped := false
	for _, r := range mask {
		switch {
		case escaped:
			slots = append(slots, maskSlot{class: r, literal: true})
			escaped = false
		case r == '\\':
			escaped = true
		default:
			slots = append(slots, maskSlot{class: r, literal: !isMaskClass(r)})
		}
	}
	return slots
}

func isMaskClass(r rune) bool {
	switch r {
	case '9', '0', 'A', 'a', 'N', 'n', 'H', 'h', 'X', 'x':
		return true
	}
	return false
}

// fitsMask reports whether text is a valid prefix of the mask.
func fitsMask(mask []maskSlot, text string) bool {
	if mask == nil {
		return true
	}
	runes := []rune(text)
	if len(runes) > len(mask) {
		return false
	}
	for i, r := range runes {
		slot := mask[i]
		if slot.literal {
			if r != slot.class {
				return false
			}
			continue
		}
		var ok bool
		switch slot.class {
		case '9', '0':
			ok = unicode.IsDigit(r)
		case 'A', 'a':
			ok = unicode.IsLetter(r)
		case 'N', 'n':
			ok = unicode.IsLetter(r) || unicode.IsDigit(r)
		case 'H', 'h':
			ok = unicode.Is(unicode.ASCII_Hex_Digit, r)
		default:
			ok = !unicode.IsSpace(r) || slot.class == 'x'
		}
		if !ok {
			return false
		}
	}
	return true
}

// TextEdit is a multi line text entry backed by bubbles/textarea.
type TextEdit struct {
	Base
	area textarea.Model

	TextChanged Notify
}

// NewTextEdit creates an empty text edit.
func NewTextEdit() *TextEdit {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.Prompt = ""
	return &TextEdit{Base: newBase(), area: area}
}

// SetText replaces the text and emits TextChanged when it differs.
func (t *TextEdit) SetText(text string) {
	if text == t.area.Value() {
		return
	}
	t.area.SetValue(text)
	t.TextChanged.Emit()
}

// Text returns the text.
func (t *TextEdit) Text() string { return t.area.Value() }

// SetPlaceholderText sets the text shown while empty.
func (t *TextEdit) SetPlaceholderText(text string) { t.area.Placeholder = text }

// PlaceholderText returns the placeholder.
func (t *TextEdit) PlaceholderText() string { return t.area.Placeholder }

// Focus gives the edit keyboard focus.
func (t *TextEdit) Focus() { t.area.Focus() }

// Blur removes keyboard focus.
func (t *TextEdit) Blur() { t.area.Blur() }

// Focused reports whether the edit has keyboard focus.
func (t *TextEdit) Focused() bool { return t.area.Focused() }

// SetSize sets the allocated size of the text area.
func (t *TextEdit) SetSize(width, height int) {
	t.Base.SetSize(width, height)
	if width > 0 {
		t.area.SetWidth(max(width-t.style.GetHorizontalFrameSize(), 1))
	}
	if height > 0 {
		t.area.SetHeight(max(height-t.style.GetVerticalFrameSize(), 1))
	}
}

// Update edits the text while focused.
func (t *TextEdit) Update(msg tea.Msg) tea.Cmd {
	if !t.area.Focused() {
		return nil
	}
	before := t.area.Value()
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	if t.area.Value() != before {
		t.TextChanged.Emit()
	}
	return cmd
}

// View renders the edit.
func (t *TextEdit) View() string { return t.frame(t.area.View()) }

// SizeHint returns the natural size.
func (t *TextEdit) SizeHint() (int, int) {
	return t.limits.ClampWidth(t.area.Width() + t.style.GetHorizontalFrameSize()),
		t.limits.ClampHeight(t.area.Height() + t.style.GetVerticalFrameSize())
}
