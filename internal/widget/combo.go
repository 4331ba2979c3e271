package widget

import tea "github.com/charmbracelet/bubbletea"

// ComboBox picks one string from a list.
type ComboBox struct {
	Base
	focusState
	items []string
	index int

	CurrentIndexChanged Signal[int]
}

// NewComboBox creates an empty combo box.
func NewComboBox() *ComboBox {
	return &ComboBox{Base: newBase(), index: -1}
}

// AddItem appends text. The first item becomes current.
func (c *ComboBox) AddItem(text string) {
	c.items = append(c.items, text)
	if c.index < 0 {
		c.SetCurrentIndex(0)
	}
}

// AddItems appends every text.
func (c *ComboBox) AddItems(texts ...string) {
	for _, t := range texts {
		c.AddItem(t)
	}
}

// Clear removes every item.
func (c *ComboBox) Clear() {
	c.items = nil
	c.SetCurrentIndex(-1)
}

// Count returns the number of items.
func (c *ComboBox) Count() int { return len(c.items) }

// Items returns a copy of the items.
func (c *ComboBox) Items() []string {
	return append([]string(nil), c.items...)
}

// FindText returns the index of text or -1.
func (c *ComboBox) FindText(text string) int {
	for i, item := range c.items {
		if item == text {
			return i
		}
	}
	return -1
}

// SetCurrentIndex selects an item and emits CurrentIndexChanged when the
// selection changes. Out of range indexes are ignored.
func (c *ComboBox) SetCurrentIndex(i int) {
	if i < -1 || i >= len(c.items) || i == c.index {
		return
	}
	c.index = i
	c.CurrentIndexChanged.Emit(i)
}

// CurrentIndex returns the selected index or -1.
func (c *ComboBox) CurrentIndex() int { return c.index }

// CurrentText returns the selected item or "".
func (c *ComboBox) CurrentText() string {
	if c.index < 0 {
		return ""
	}
	return c.items[c.index]
}

// Update cycles the selection with the arrow keys while focused.
func (c *ComboBox) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused || len(c.items) == 0 {
		return nil
	}
	if step := stepKey(key); step != 0 {
		c.SetCurrentIndex((c.index + step + len(c.items)) % len(c.items))
	}
	return nil
}

func (c *ComboBox) content() string {
	text := c.CurrentText()
	if g := c.glyph(); g != "" {
		text = g + " " + text
	}
	return focusMark(c.focused, text+" ▾")
}

// View renders the combo box.
func (c *ComboBox) View() string { return c.frame(c.content()) }

// SizeHint returns the natural size. The widest item decides the width.
func (c *ComboBox) SizeHint() (int, int) {
	w, h := c.hint(c.content())
	for _, item := range c.items {
		iw, _ := c.hint(item + " ▾")
		w = max(w, iw)
	}
	return c.limits.ClampWidth(w), h
}
