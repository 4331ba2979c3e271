package widget

import tea "github.com/charmbracelet/bubbletea"

// Check states reported by CheckBox.StateChanged.
const (
	Unchecked = 0
	Checked   = 2
)

// CheckBox is a two state toggle with a caption.
type CheckBox struct {
	Base
	focusState
	text    string
	checked bool

	StateChanged Signal[int]
	Released     Notify
}

// NewCheckBox creates an unchecked check box.
func NewCheckBox() *CheckBox {
	return &CheckBox{Base: newBase()}
}

// SetText sets the caption.
func (c *CheckBox) SetText(text string) { c.text = text }

// Text returns the caption.
func (c *CheckBox) Text() string { return c.text }

// SetChecked sets the state and emits StateChanged when it changes.
func (c *CheckBox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	state := Unchecked
	if checked {
		state = Checked
	}
	c.StateChanged.Emit(state)
}

// IsChecked returns the state.
func (c *CheckBox) IsChecked() bool { return c.checked }

// Click toggles the state as a user click would.
func (c *CheckBox) Click() {
	c.SetChecked(!c.checked)
	c.Released.Emit()
}

// Update toggles on enter or space while focused.
func (c *CheckBox) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && c.focused && isActivate(key) {
		c.Click()
	}
	return nil
}

func (c *CheckBox) content() string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	label := c.text
	if g := c.glyph(); g != "" {
		label = g + " " + label
	}
	return focusMark(c.focused, box) + " " + label
}

// View renders the check box.
func (c *CheckBox) View() string { return c.frame(c.content()) }

// SizeHint returns the natural size.
func (c *CheckBox) SizeHint() (int, int) { return c.hint(c.content()) }

// RadioButton is an exclusive option inside a RadioGroup.
type RadioButton struct {
	Base
	focusState
	text    string
	checked bool
	group   *RadioGroup

	Toggled  Signal[bool]
	Released Notify
}

// NewRadioButton creates an unchecked radio button.
func NewRadioButton() *RadioButton {
	return &RadioButton{Base: newBase()}
}

// SetText sets the caption.
func (r *RadioButton) SetText(text string) { r.text = text }

// Text returns the caption.
func (r *RadioButton) Text() string { return r.text }

// SetChecked sets the state and emits Toggled when it changes. Checking a
// grouped button unchecks the others.
func (r *RadioButton) SetChecked(checked bool) {
	if r.checked == checked {
		return
	}
	r.checked = checked
	r.Toggled.Emit(checked)
	if checked && r.group != nil {
		r.group.uncheckOthers(r)
	}
}

// IsChecked returns the state.
func (r *RadioButton) IsChecked() bool { return r.checked }

// Click checks the button as a user click would.
func (r *RadioButton) Click() {
	r.SetChecked(true)
	r.Released.Emit()
}

// Update checks on enter or space while focused.
func (r *RadioButton) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && r.focused && isActivate(key) {
		r.Click()
	}
	return nil
}

func (r *RadioButton) content() string {
	mark := "( )"
	if r.checked {
		mark = "(•)"
	}
	label := r.text
	if g := r.glyph(); g != "" {
		label = g + " " + label
	}
	return focusMark(r.focused, mark) + " " + label
}

// View renders the radio button.
func (r *RadioButton) View() string { return r.frame(r.content()) }

// SizeHint returns the natural size.
func (r *RadioButton) SizeHint() (int, int) { return r.hint(r.content()) }

// RadioGroup keeps at most one of its buttons checked.
type RadioGroup struct {
	buttons []*RadioButton
}

// NewRadioGroup groups buttons. If several are checked only the last stays
// checked.
func NewRadioGroup(buttons ...*RadioButton) *RadioGroup {
	g := &RadioGroup{}
	for _, b := range buttons {
		g.Add(b)
	}
	return g
}

// Add puts b into the group.
func (g *RadioGroup) Add(b *RadioButton) {
	b.group = g
	g.buttons = append(g.buttons, b)
	if b.checked {
		g.uncheckOthers(b)
	}
}

// Checked returns the checked button or nil.
func (g *RadioGroup) Checked() *RadioButton {
	for _, b := range g.buttons {
		if b.checked {
			return b
		}
	}
	return nil
}

func (g *RadioGroup) uncheckOthers(keep *RadioButton) {
	for _, b := range g.buttons {
		if b != keep {
			b.SetChecked(false)
		}
	}
}
