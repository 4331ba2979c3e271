package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
)

// Window is a top level widget: a titled frame with an optional menu bar,
// tool bars, docks and a status bar around a layout. It routes bubbletea
// messages to its descendants and moves focus with tab and shift+tab.
type Window struct {
	panel
	title     string
	shown     bool
	fixedSize bool
	menuBar   *MenuBar
	statusBar *StatusBar
	toolBars  [][]*ToolBar
	docks     map[DockArea][]*DockWidget
	timers    []*Timer
}

// NewWindow creates a hidden window.
func NewWindow() *Window {
	return &Window{panel: panel{Base: newBase()}}
}

// SetWindowTitle sets the title.
func (w *Window) SetWindowTitle(title string) { w.title = title }

// WindowTitle returns the title.
func (w *Window) WindowTitle() string { return w.title }

// Resize fixes the window size; terminal resizes no longer change it.
func (w *Window) Resize(width, height int) {
	w.fixedSize = true
	w.SetSize(width, height)
}

// Show marks the window shown.
func (w *Window) Show() { w.shown = true }

// Hide marks the window hidden.
func (w *Window) Hide() { w.shown = false }

// IsVisible reports whether the window was shown.
func (w *Window) IsVisible() bool { return w.shown }

// SetMenuBar installs a menu bar above the layout.
func (w *Window) SetMenuBar(bar *MenuBar) { w.menuBar = bar }

// MenuBar returns the menu bar.
func (w *Window) MenuBar() *MenuBar { return w.menuBar }

// SetStatusBar installs a status bar below the layout.
func (w *Window) SetStatusBar(bar *StatusBar) { w.statusBar = bar }

// StatusBar returns the status bar.
func (w *Window) StatusBar() *StatusBar { return w.statusBar }

// AddToolBar appends a tool bar to the current tool bar line.
func (w *Window) AddToolBar(bar *ToolBar) {
	if len(w.toolBars) == 0 {
		w.toolBars = append(w.toolBars, nil)
	}
	last := len(w.toolBars) - 1
	w.toolBars[last] = append(w.toolBars[last], bar)
}

// AddToolBarBreak starts a new tool bar line.
func (w *Window) AddToolBarBreak() {
	if len(w.toolBars) > 0 && len(w.toolBars[len(w.toolBars)-1]) > 0 {
		w.toolBars = append(w.toolBars, nil)
	}
}

// ToolBars returns the tool bars line by line.
func (w *Window) ToolBars() [][]*ToolBar {
	out := make([][]*ToolBar, 0, len(w.toolBars))
	for _, line := range w.toolBars {
		if len(line) > 0 {
			out = append(out, append([]*ToolBar(nil), line...))
		}
	}
	return out
}

// AddDockWidget attaches dock to a side of the central widget.
func (w *Window) AddDockWidget(area DockArea, dock *DockWidget) {
	if w.docks == nil {
		w.docks = make(map[DockArea][]*DockWidget)
	}
	w.docks[area] = append(w.docks[area], dock)
}

// DockWidgets returns the docks attached to area.
func (w *Window) DockWidgets(area DockArea) []*DockWidget {
	return append([]*DockWidget(nil), w.docks[area]...)
}

// AddTimer makes the window own t. Init starts it and Update routes its
// timeouts.
func (w *Window) AddTimer(t *Timer) {
	if t != nil {
		w.timers = append(w.timers, t)
	}
}

// Timers returns the owned timers.
func (w *Window) Timers() []*Timer { return w.timers }

// Init starts the armed timers.
func (w *Window) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(w.timers))
	for _, t := range w.timers {
		cmds = append(cmds, t.Init())
	}
	return tea.Batch(cmds...)
}

// Children returns the menu bar, the tool bars, the layout, the docks and
// the status bar.
func (w *Window) Children() []ui.Renderable {
	var out []ui.Renderable
	if w.menuBar != nil {
		out = append(out, w.menuBar)
	}
	for _, line := range w.toolBars {
		for _, bar := range line {
			out = append(out, bar)
		}
	}
	out = append(out, w.panel.Children()...)
	for _, area := range []DockArea{LeftDockArea, RightDockArea, TopDockArea, BottomDockArea} {
		for _, dock := range w.docks[area] {
			out = append(out, dock)
		}
	}
	if w.statusBar != nil {
		out = append(out, w.statusBar)
	}
	return out
}

// FocusNext moves focus to the next focusable descendant, wrapping around.
func (w *Window) FocusNext() { w.moveFocus(1) }

// FocusPrevious moves focus to the previous focusable descendant.
func (w *Window) FocusPrevious() { w.moveFocus(-1) }

// FocusedWidget returns the focused descendant or nil.
func (w *Window) FocusedWidget() ui.Focusable {
	for _, f := range w.focusables() {
		if f.Focused() {
			return f
		}
	}
	return nil
}

func (w *Window) focusables() []ui.Focusable {
	var out []ui.Focusable
	for _, child := range w.Children() {
		out = append(out, ui.Focusables(child)...)
	}
	return out
}

func (w *Window) moveFocus(step int) {
	list := w.focusables()
	if len(list) == 0 {
		return
	}
	current := -1
	for i, f := range list {
		if f.Focused() {
			current = i
			f.Blur()
		}
	}
	next := current + step
	if current < 0 && step < 0 {
		next = len(list) - 1
	}
	next = (next + len(list)) % len(list)
	list[next].Focus()
}

// Update handles focus keys, terminal resizes and timeouts of owned
// timers, then hands msg to every interactive descendant. Each widget
// decides whether it reacts.
func (w *Window) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TimeoutMsg:
		for _, t := range w.timers {
			cmds = append(cmds, t.Update(msg))
		}
	case tea.WindowSizeMsg:
		if !w.fixedSize {
			w.SetSize(msg.Width, msg.Height)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			w.FocusNext()
			return nil
		case "shift+tab":
			w.FocusPrevious()
			return nil
		}
	}

	for _, child := range w.Children() {
		ui.Walk(child, func(node ui.Renderable) bool {
			if !ui.Visible(node) {
				return false
			}
			if interactive, ok := node.(ui.Interactive); ok {
				cmds = append(cmds, interactive.Update(msg))
			}
			return true
		})
	}
	return tea.Batch(cmds...)
}

// View renders the window.
func (w *Window) View() string {
	width, height := w.Size()
	var parts []string
	innerW := 0
	if width > 0 {
		innerW = max(w.limits.ClampWidth(width)-2, 0)
	}
	chrome := 0
	if w.menuBar != nil {
		w.menuBar.SetSize(innerW, 0)
		bar := w.menuBar.View()
		parts = append(parts, bar)
		chrome += lipgloss.Height(bar)
	}
	for _, line := range w.ToolBars() {
		views := make([]string, 0, 2*len(line))
		for i, bar := range line {
			if i > 0 {
				views = append(views, " │ ")
			}
			views = append(views, bar.View())
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, views...)
		parts = append(parts, row)
		chrome += lipgloss.Height(row)
	}
	inner := -1
	if width > 0 && height > 0 {
		inner = max(w.limits.ClampHeight(height)-2-chrome, 0)
		if w.statusBar != nil {
			inner = max(inner-1, 0)
		}
	}
	parts = append(parts, w.central(innerW, inner))
	if w.statusBar != nil {
		w.statusBar.tip = w.focusedToolTip()
		w.statusBar.SetSize(innerW, 1)
		parts = append(parts, w.statusBar.View())
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	c := components.NewContainer(components.NewText(content)).WithBorder(components.BorderVariantRounded).WithTitle(w.title)
	if width > 0 {
		width = w.limits.ClampWidth(width)
	}
	if height > 0 {
		height = w.limits.ClampHeight(height)
	}
	c.SetSize(width, height)
	c.SetStyle(w.style)
	return c.View()
}

// central renders the layout surrounded by the docks in width by height
// cells; a negative height renders everything at its natural size.
func (w *Window) central(width, height int) string {
	sized := height >= 0
	stack := func(docks []*DockWidget, across int) (string, int) {
		if len(docks) == 0 {
			return "", 0
		}
		views := make([]string, len(docks))
		for i, d := range docks {
			if sized {
				_, h := d.SizeHint()
				d.SetSize(across, h)
			}
			views[i] = d.View()
		}
		view := lipgloss.JoinVertical(lipgloss.Left, views...)
		return view, lipgloss.Height(view)
	}
	top, topH := stack(w.docks[TopDockArea], width)
	bottom, bottomH := stack(w.docks[BottomDockArea], width)
	middle := max(height-topH-bottomH, 0)

	side := func(docks []*DockWidget) (string, int) {
		if len(docks) == 0 {
			return "", 0
		}
		views := make([]string, len(docks))
		for i, d := range docks {
			dw, _ := d.SizeHint()
			if sized {
				d.SetSize(dw, middle/len(docks))
			}
			views[i] = d.View()
		}
		view := lipgloss.JoinVertical(lipgloss.Left, views...)
		return view, lipgloss.Width(view)
	}
	left, leftW := side(w.docks[LeftDockArea])
	right, rightW := side(w.docks[RightDockArea])

	body := w.body()
	if r, ok := body.(ui.Resizable); ok && sized {
		r.SetSize(max(width-leftW-rightW, 0), middle)
	}
	row := make([]string, 0, 3)
	for _, v := range []string{left, body.View(), right} {
		if v != "" {
			row = append(row, v)
		}
	}
	rows := make([]string, 0, 3)
	for _, v := range []string{top, lipgloss.JoinHorizontal(lipgloss.Top, row...), bottom} {
		if v != "" {
			rows = append(rows, v)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (w *Window) focusedToolTip() string {
	if f, ok := w.FocusedWidget().(interface{ ToolTip() string }); ok {
		return f.ToolTip()
	}
	return ""
}

// SizeHint returns the natural size.
func (w *Window) SizeHint() (int, int) {
	bw, bh := w.hintWith(2, w.title)
	if w.menuBar != nil {
		bh++
	}
	for _, line := range w.ToolBars() {
		lineH := 0
		for _, bar := range line {
			_, h := bar.SizeHint()
			lineH = max(lineH, h)
		}
		bh += lineH
	}
	for _, area := range []DockArea{LeftDockArea, RightDockArea, TopDockArea, BottomDockArea} {
		for _, d := range w.docks[area] {
			dw, dh := d.SizeHint()
			if area == LeftDockArea || area == RightDockArea {
				bw += dw
			} else {
				bh += dh
			}
		}
	}
	if w.statusBar != nil {
		bh++
	}
	return bw, w.limits.ClampHeight(bh)
}
