package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
)

// Action is a command that menus, tool bars and shortcuts can trigger.
type Action struct {
	text       string
	shortcut   string
	icon       string
	iconWidth  int
	iconHeight int
	checkable  bool
	checked    bool
	enabled    bool

	Triggered Notify
	Toggled   Signal[bool]
}

// NewAction creates an enabled action.
func NewAction() *Action {
	return &Action{enabled: true}
}

// SetText sets the menu text.
func (a *Action) SetText(text string) { a.text = text }

// Text returns the menu text.
func (a *Action) Text() string { return a.text }

// SetShortcut sets the key binding.
func (a *Action) SetShortcut(shortcut string) { a.shortcut = normalizeKey(shortcut) }

// Shortcut returns the key binding.
func (a *Action) Shortcut() string { return a.shortcut }

// SetIcon sets the icon name.
func (a *Action) SetIcon(name string) { a.icon = name }

// Icon returns the icon name.
func (a *Action) Icon() string { return a.icon }

// SetIconSize sets the icon size in pixels.
func (a *Action) SetIconSize(width, height int) {
	a.iconWidth = width
	a.iconHeight = height
}

// SetCheckable makes the action a toggle.
func (a *Action) SetCheckable(checkable bool) { a.checkable = checkable }

// IsCheckable reports whether the action is a toggle.
func (a *Action) IsCheckable() bool { return a.checkable }

// SetChecked sets the toggle state and emits Toggled when it changes.
func (a *Action) SetChecked(checked bool) {
	if !a.checkable || a.checked == checked {
		return
	}
	a.checked = checked
	a.Toggled.Emit(checked)
}

// IsChecked returns the toggle state.
func (a *Action) IsChecked() bool { return a.checked }

// SetEnabled enables or disables the action.
func (a *Action) SetEnabled(enabled bool) { a.enabled = enabled }

// IsEnabled reports whether the action can trigger.
func (a *Action) IsEnabled() bool { return a.enabled }

// Trigger flips a checkable action and emits Triggered.
func (a *Action) Trigger() {
	if !a.enabled {
		return
	}
	if a.checkable {
		a.SetChecked(!a.checked)
	}
	a.Triggered.Emit()
}

// MatchesShortcut reports whether key is the action's shortcut.
func (a *Action) MatchesShortcut(key tea.KeyMsg) bool {
	return a.shortcut != "" && normalizeKey(key.String()) == a.shortcut
}

func (a *Action) label() string {
	label := a.text
	if g := icons.Glyph(a.icon); g != "" {
		label = g + " " + label
	}
	return label
}

type menuEntry struct {
	action    *Action
	menu      *Menu
	separator bool
}

// Menu is a popup list of actions, sub menus and separators.
type Menu struct {
	Base
	title   string
	entries []menuEntry
	cursor  int
	open    bool
	sub     *Menu
}

// NewMenu creates an empty closed menu.
func NewMenu(title string) *Menu {
	return &Menu{Base: newBase(), title: title}
}

// SetTitle sets the title shown in menu bars.
func (m *Menu) SetTitle(title string) { m.title = title }

// Title returns the title.
func (m *Menu) Title() string { return m.title }

// AddAction appends an action.
func (m *Menu) AddAction(a *Action) { m.entries = append(m.entries, menuEntry{action: a}) }

// AddMenu appends a sub menu.
func (m *Menu) AddMenu(sub *Menu) { m.entries = append(m.entries, menuEntry{menu: sub}) }

// AddSeparator appends a separator line.
func (m *Menu) AddSeparator() { m.entries = append(m.entries, menuEntry{separator: true}) }

// Actions returns the actions in order, excluding sub menus.
func (m *Menu) Actions() []*Action {
	var out []*Action
	for _, e := range m.entries {
		if e.action != nil {
			out = append(out, e.action)
		}
	}
	return out
}

// Len returns the number of entries, separators included.
func (m *Menu) Len() int { return len(m.entries) }

// Popup opens the menu with the first entry selected.
func (m *Menu) Popup() {
	m.open = true
	m.sub = nil
	m.cursor = -1
	m.move(1)
}

// Close closes the menu and any open sub menu.
func (m *Menu) Close() {
	if m.sub != nil {
		m.sub.Close()
	}
	m.open = false
	m.sub = nil
}

// IsOpen reports whether the menu is showing.
func (m *Menu) IsOpen() bool { return m.open }

// Select moves the selection to the entry holding a.
func (m *Menu) Select(a *Action) {
	for i, e := range m.entries {
		if e.action == a {
			m.cursor = i
		}
	}
}

// Selected returns the selected action or nil.
func (m *Menu) Selected() *Action {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor].action
}

// EntryAt returns the entry drawn on line y of the menu view, or -1 for the
// border, separators and lines below the last entry.
func (m *Menu) EntryAt(y int) int {
	i := y - 1
	if i < 0 || i >= len(m.entries) || m.entries[i].separator {
		return -1
	}
	return i
}

// Activate selects entry i and triggers it like enter would.
func (m *Menu) Activate(i int) tea.Cmd {
	if !m.open || i < 0 || i >= len(m.entries) || m.entries[i].separator {
		return nil
	}
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
	m.cursor = i
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func (m *Menu) move(step int) {
	n := len(m.entries)
	if n == 0 {
		return
	}
	i := m.cursor
	for range n {
		i = (i + step + n) % n
		if !m.entries[i].separator {
			m.cursor = i
			return
		}
	}
}

// Update navigates the open menu: arrows move, enter triggers, esc closes.
// Shortcuts trigger their action even while the menu is closed.
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !m.open {
		for _, e := range m.entries {
			switch {
			case e.action != nil && e.action.MatchesShortcut(key):
				e.action.Trigger()
				return nil
			case e.menu != nil:
				e.menu.Update(msg)
			}
		}
		return nil
	}
	if m.sub != nil && m.sub.open {
		if key.Type == tea.KeyLeft {
			m.sub.Close()
			return nil
		}
		return m.sub.Update(msg)
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "esc":
		m.Close()
	case "enter", " ", "right":
		if m.cursor < 0 || m.cursor >= len(m.entries) {
			return nil
		}
		e := m.entries[m.cursor]
		if e.menu != nil {
			m.sub = e.menu
			e.menu.Popup()
			return nil
		}
		if e.action != nil && key.String() != "right" {
			m.Close()
			e.action.Trigger()
		}
	}
	return nil
}

// View renders the open menu, or nothing when closed.
func (m *Menu) View() string {
	if !m.open {
		return ""
	}
	textW, keyW := 0, 0
	for _, e := range m.entries {
		switch {
		case e.action != nil:
			textW = max(textW, lipgloss.Width(e.action.label()))
			keyW = max(keyW, lipgloss.Width(e.action.shortcut))
		case e.menu != nil:
			textW = max(textW, lipgloss.Width(e.menu.title)+2)
		}
	}
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		var line string
		switch {
		case e.separator:
			line = strings.Repeat("─", textW+keyW+6)
		case e.menu != nil:
			line = "  " + padRight(e.menu.title, textW+keyW+2) + " ▸"
		default:
			mark := "  "
			if e.action.checkable && e.action.checked {
				mark = "✔ "
			}
			line = mark + padRight(e.action.label(), textW) + "  " + padLeft(e.action.shortcut, keyW) + "  "
			if !e.action.enabled {
				line = lipgloss.NewStyle().Faint(true).Render(line)
			}
		}
		lines[i] = focusMark(i == m.cursor && !e.separator, line)
	}
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Inherit(m.style).Render(strings.Join(lines, "\n"))
	if m.sub != nil && m.sub.open {
		return lipgloss.JoinHorizontal(lipgloss.Top, box, m.sub.View())
	}
	return box
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(w-lipgloss.Width(s), 0)) + s
}

// MenuBar lists menu titles; f10 opens the first menu, left and right move
// between menus while one is open.
type MenuBar struct {
	Base
	menus  []*Menu
	active int
}

// NewMenuBar creates an empty menu bar.
func NewMenuBar() *MenuBar {
	return &MenuBar{Base: newBase(), active: -1}
}

// AddMenu appends a menu.
func (b *MenuBar) AddMenu(m *Menu) { b.menus = append(b.menus, m) }

// Menus returns the menus.
func (b *MenuBar) Menus() []*Menu { return append([]*Menu(nil), b.menus...) }

// Update opens, switches and forwards to menus.
func (b *MenuBar) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(b.menus) == 0 {
		return nil
	}
	if b.active >= 0 && !b.menus[b.active].IsOpen() {
		b.active = -1
	}
	if b.active < 0 {
		if key.String() == "f10" {
			b.open(0)
			return nil
		}
		for _, m := range b.menus {
			m.Update(msg)
		}
		return nil
	}
	current := b.menus[b.active]
	switch key.String() {
	case "left":
		if current.sub == nil || !current.sub.open {
			b.open((b.active - 1 + len(b.menus)) % len(b.menus))
			return nil
		}
	case "right":
		if current.cursor < 0 || current.entries[current.cursor].menu == nil {
			b.open((b.active + 1) % len(b.menus))
			return nil
		}
	}
	return current.Update(msg)
}

func (b *MenuBar) open(i int) {
	for _, m := range b.menus {
		m.Close()
	}
	b.active = i
	b.menus[i].Popup()
}

// ActiveMenu returns the open menu or nil.
func (b *MenuBar) ActiveMenu() *Menu {
	if b.active < 0 || !b.menus[b.active].IsOpen() {
		return nil
	}
	return b.menus[b.active]
}

func (b *MenuBar) content() string {
	titles := make([]string, len(b.menus))
	for i, m := range b.menus {
		titles[i] = focusMark(i == b.active && m.IsOpen(), " "+m.title+" ")
	}
	line := strings.Join(titles, " ")
	if active := b.ActiveMenu(); active != nil {
		offset := 0
		for _, m := range b.menus[:b.active] {
			offset += lipgloss.Width(m.title) + 3
		}
		popup := lipgloss.NewStyle().MarginLeft(offset).Render(active.View())
		return lipgloss.JoinVertical(lipgloss.Left, line, popup)
	}
	return line
}

// View renders the bar and the open menu under it.
func (b *MenuBar) View() string { return b.frame(b.content()) }

// SizeHint returns the natural size of the bar line.
func (b *MenuBar) SizeHint() (int, int) {
	w, _ := b.hint(b.content())
	return w, 1
}

// StatusBar shows a transient message on the left and permanent widgets on
// the right.
type StatusBar struct {
	Base
	message string
	tip     string
	widgets []ui.Renderable
	actions []*Action
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{Base: newBase()}
}

// ShowMessage shows text until cleared or replaced.
func (s *StatusBar) ShowMessage(text string) { s.message = text }

// ClearMessage removes the message.
func (s *StatusBar) ClearMessage() { s.message = "" }

// CurrentMessage returns the message.
func (s *StatusBar) CurrentMessage() string { return s.message }

// AddWidget appends a permanent widget.
func (s *StatusBar) AddWidget(w ui.Renderable) { s.widgets = append(s.widgets, w) }

// AddAction registers an action whose shortcut works from the status bar.
func (s *StatusBar) AddAction(a *Action) { s.actions = append(s.actions, a) }

// Children returns the permanent widgets.
func (s *StatusBar) Children() []ui.Renderable { return append([]ui.Renderable(nil), s.widgets...) }

// Update triggers actions by shortcut.
func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		for _, a := range s.actions {
			if a.MatchesShortcut(key) {
				a.Trigger()
			}
		}
	}
	return nil
}

func (s *StatusBar) content() string {
	left := s.message
	if left == "" {
		left = lipgloss.NewStyle().Faint(true).Render(s.tip)
	}
	parts := make([]string, 0, len(s.widgets))
	for _, w := range s.widgets {
		if ui.Visible(w) {
			parts = append(parts, w.View())
		}
	}
	right := strings.Join(parts, " │ ")
	width, _ := s.Size()
	gap := 1
	if width > 0 {
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return left + strings.Repeat(" ", gap) + right
}

// View renders the status bar.
func (s *StatusBar) View() string { return s.frame(s.content()) }

// SizeHint returns the natural size.
func (s *StatusBar) SizeHint() (int, int) {
	w, _ := s.hint(s.content())
	return w, 1
}
