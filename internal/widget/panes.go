package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
)

// ToolBar is a titled row of actions and widgets. Actions show as
// bracketed captions and fire on their shortcut.
type ToolBar struct {
	Base
	title   string
	actions []*Action
	widgets []ui.Renderable
	order   []any
}

// NewToolBar creates an empty tool bar.
func NewToolBar() *ToolBar { return &ToolBar{Base: newBase()} }

// SetTitle sets the title.
func (t *ToolBar) SetTitle(title string) { t.title = title }

// Title returns the title.
func (t *ToolBar) Title() string { return t.title }

// AddAction appends an action.
func (t *ToolBar) AddAction(a *Action) {
	t.actions = append(t.actions, a)
	t.order = append(t.order, a)
}

// AddWidget appends a widget.
func (t *ToolBar) AddWidget(w ui.Renderable) {
	t.widgets = append(t.widgets, w)
	t.order = append(t.order, w)
}

// Actions returns the actions in order.
func (t *ToolBar) Actions() []*Action { return append([]*Action(nil), t.actions...) }

// Children returns the widgets.
func (t *ToolBar) Children() []ui.Renderable { return append([]ui.Renderable(nil), t.widgets...) }

// Update triggers actions by shortcut.
func (t *ToolBar) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		for _, a := range t.actions {
			if a.MatchesShortcut(key) {
				a.Trigger()
			}
		}
	}
	return nil
}

func (t *ToolBar) content() string {
	parts := make([]string, 0, 2*len(t.order))
	add := func(view string) {
		if len(parts) > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, view)
	}
	for _, item := range t.order {
		switch v := item.(type) {
		case *Action:
			caption := "[" + v.label() + "]"
			if !v.enabled {
				caption = lipgloss.NewStyle().Faint(true).Render(caption)
			}
			add(caption)
		case ui.Renderable:
			if ui.Visible(v) {
				add(v.View())
			}
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// View renders the tool bar.
func (t *ToolBar) View() string { return t.frame(t.content()) }

// SizeHint returns the natural size.
func (t *ToolBar) SizeHint() (int, int) { return t.hint(t.content()) }

// DockArea is the window side a dock widget is attached to.
type DockArea int

// Dock areas.
const (
	LeftDockArea DockArea = iota
	RightDockArea
	TopDockArea
	BottomDockArea
)

// DockAreaNames maps option names to dock areas.
var DockAreaNames = map[string]DockArea{
	"left":   LeftDockArea,
	"right":  RightDockArea,
	"top":    TopDockArea,
	"bottom": BottomDockArea,
}

// DockWidget is a titled pane a main window places beside its central
// widget. A size hint overrides the content's natural size.
type DockWidget struct {
	Base
	title   string
	content ui.Renderable
	hintW   int
	hintH   int
}

// NewDockWidget creates an empty dock.
func NewDockWidget() *DockWidget { return &DockWidget{Base: newBase()} }

// SetTitle sets the title drawn into the border.
func (d *DockWidget) SetTitle(title string) { d.title = title }

// Title returns the title.
func (d *DockWidget) Title() string { return d.title }

// SetWidget sets the content.
func (d *DockWidget) SetWidget(w ui.Renderable) { d.content = w }

// Widget returns the content.
func (d *DockWidget) Widget() ui.Renderable { return d.content }

// SetHintSize fixes the natural size; zero values fall back to the
// content.
func (d *DockWidget) SetHintSize(width, height int) { d.hintW, d.hintH = width, height }

// Children returns the content.
func (d *DockWidget) Children() []ui.Renderable {
	if d.content == nil {
		return nil
	}
	return []ui.Renderable{d.content}
}

// View renders the dock.
func (d *DockWidget) View() string {
	var body ui.Renderable = components.NewText("")
	if d.content != nil {
		body = d.content
	}
	c := components.NewContainer(body).WithBorder(components.BorderVariantRounded).WithTitle(d.title)
	w, h := d.Size()
	if w > 0 {
		w = d.limits.ClampWidth(w)
	} else {
		w, _ = d.SizeHint()
	}
	if h > 0 {
		h = d.limits.ClampHeight(h)
	}
	c.SetSize(w, h)
	c.SetStyle(d.style)
	return c.View()
}

// SizeHint returns the hint size, or the content's size plus the border.
func (d *DockWidget) SizeHint() (int, int) {
	w, h := 0, 0
	if d.content != nil {
		w, h = ui.Size(d.content)
	}
	w = max(w+2, lipgloss.Width(d.title)+5)
	h += 2
	if d.hintW > 0 {
		w = d.hintW
	}
	if d.hintH > 0 {
		h = d.hintH
	}
	return d.limits.ClampWidth(w), d.limits.ClampHeight(h)
}

// Splitter shows widgets side by side or stacked, separated by a one cell
// handle. Sizes weight how the space is shared; without them every pane
// gets an equal part.
type Splitter struct {
	Base
	orientation Orientation
	widgets     []ui.Renderable
	sizes       []int
	margin      int
}

// NewSplitter creates an empty horizontal splitter.
func NewSplitter() *Splitter { return &Splitter{Base: newBase()} }

// SetOrientation sets the split direction.
func (s *Splitter) SetOrientation(o Orientation) { s.orientation = o }

// Orientation returns the split direction.
func (s *Splitter) Orientation() Orientation { return s.orientation }

// AddWidget appends a pane.
func (s *Splitter) AddWidget(w ui.Renderable) { s.widgets = append(s.widgets, w) }

// Count returns the number of panes.
func (s *Splitter) Count() int { return len(s.widgets) }

// SetSizes sets the pane weights. Missing or non-positive weights count
// as one.
func (s *Splitter) SetSizes(sizes []int) { s.sizes = append([]int(nil), sizes...) }

// Sizes returns the pane weights.
func (s *Splitter) Sizes() []int { return append([]int(nil), s.sizes...) }

// SetMargin sets the blank border around the panes.
func (s *Splitter) SetMargin(n int) { s.margin = max(n, 0) }

// Children returns the panes.
func (s *Splitter) Children() []ui.Renderable { return append([]ui.Renderable(nil), s.widgets...) }

func (s *Splitter) weight(i int) int {
	if i < len(s.sizes) && s.sizes[i] > 0 {
		return s.sizes[i]
	}
	return 1
}

// spans shares total cells between the panes by weight.
func (s *Splitter) spans(total int) []int {
	out := make([]int, len(s.widgets))
	sum := 0
	for i := range out {
		sum += s.weight(i)
	}
	used := 0
	for i := range out {
		out[i] = total * s.weight(i) / sum
		used += out[i]
	}
	if len(out) > 0 {
		out[len(out)-1] += total - used
	}
	return out
}

// View renders the panes.
func (s *Splitter) View() string {
	if len(s.widgets) == 0 {
		return s.frame("")
	}
	w, h := s.Size()
	innerW := max(w-2*s.margin-s.style.GetHorizontalFrameSize(), 0)
	innerH := max(h-2*s.margin-s.style.GetVerticalFrameSize(), 0)
	handles := len(s.widgets) - 1
	main, cross := innerW, innerH
	if s.orientation == Vertical {
		main, cross = innerH, innerW
	}
	var spans []int
	if main > handles {
		spans = s.spans(main - handles)
	}

	views := make([]string, 0, 2*len(s.widgets))
	for i, pane := range s.widgets {
		if r, ok := pane.(ui.Resizable); ok && spans != nil {
			if s.orientation == Vertical {
				r.SetSize(cross, spans[i])
			} else {
				r.SetSize(spans[i], cross)
			}
		}
		if i > 0 {
			views = append(views, "")
		}
		views = append(views, pane.View())
	}
	var body string
	if s.orientation == Vertical {
		width := cross
		for _, v := range views {
			width = max(width, lipgloss.Width(v))
		}
		for i := 1; i < len(views); i += 2 {
			views[i] = strings.Repeat("─", width)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, views...)
	} else {
		height := cross
		for _, v := range views {
			height = max(height, lipgloss.Height(v))
		}
		for i := 1; i < len(views); i += 2 {
			views[i] = strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return s.frame(lipgloss.NewStyle().Margin(s.margin).Render(body))
}

// SizeHint returns the natural size.
func (s *Splitter) SizeHint() (int, int) {
	main, cross := 0, 0
	for i, pane := range s.widgets {
		pw, ph := ui.Size(pane)
		if s.orientation == Vertical {
			pw, ph = ph, pw
		}
		main += pw
		if i > 0 {
			main++
		}
		cross = max(cross, ph)
	}
	w, h := main, cross
	if s.orientation == Vertical {
		w, h = cross, main
	}
	return s.limits.ClampWidth(w + 2*s.margin + s.style.GetHorizontalFrameSize()),
		s.limits.ClampHeight(h + 2*s.margin + s.style.GetVerticalFrameSize())
}

// ScrollArea shows part of a taller widget through a bubbles viewport and
// scrolls with the mouse wheel. A resizable area stretches the content to
// its own width.
type ScrollArea struct {
	Base
	content   ui.Renderable
	resizable bool
	view      viewport.Model
}

// NewScrollArea creates an empty resizable scroll area.
func NewScrollArea() *ScrollArea {
	return &ScrollArea{Base: newBase(), resizable: true, view: viewport.New(0, 0)}
}

// SetWidget sets the content.
func (s *ScrollArea) SetWidget(w ui.Renderable) { s.content = w }

// Widget returns the content.
func (s *ScrollArea) Widget() ui.Renderable { return s.content }

// SetWidgetResizable makes the content follow the area's width.
func (s *ScrollArea) SetWidgetResizable(resizable bool) { s.resizable = resizable }

// WidgetResizable reports whether the content follows the area's width.
func (s *ScrollArea) WidgetResizable() bool { return s.resizable }

// Children returns the content.
func (s *ScrollArea) Children() []ui.Renderable {
	if s.content == nil {
		return nil
	}
	return []ui.Renderable{s.content}
}

// ScrollOffset returns the first shown line of the content.
func (s *ScrollArea) ScrollOffset() int { return s.view.YOffset }

// ScrollTo shows the content from line y, clamped to the content.
func (s *ScrollArea) ScrollTo(y int) {
	s.refresh()
	s.view.SetYOffset(y)
}

// refresh sizes the viewport and the content and reloads the content.
func (s *ScrollArea) refresh() {
	w, h := s.Size()
	w = max(w-s.style.GetHorizontalFrameSize(), 0)
	h = max(h-s.style.GetVerticalFrameSize(), 0)
	if s.content == nil {
		s.view.Width, s.view.Height = w, h
		s.view.SetContent("")
		return
	}
	cw, ch := ui.Size(s.content)
	if w <= 0 {
		w = cw
	}
	if h <= 0 {
		h = ch
	}
	if r, ok := s.content.(ui.Resizable); ok && s.resizable {
		r.SetSize(w, max(ch, h))
	}
	s.view.Width, s.view.Height = w, h
	s.view.SetContent(s.content.View())
}

// Update scrolls on mouse wheel events.
func (s *ScrollArea) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.MouseMsg); !ok {
		return nil
	}
	s.refresh()
	var cmd tea.Cmd
	s.view, cmd = s.view.Update(msg)
	return cmd
}

// View renders the visible part of the content.
func (s *ScrollArea) View() string {
	s.refresh()
	return s.frame(s.view.View())
}

// SizeHint returns the content's natural size.
func (s *ScrollArea) SizeHint() (int, int) {
	w, h := 0, 0
	if s.content != nil {
		w, h = ui.Size(s.content)
	}
	return s.limits.ClampWidth(w + s.style.GetHorizontalFrameSize()),
		s.limits.ClampHeight(h + s.style.GetVerticalFrameSize())
}

// StackedWidget shows one page at a time. Only the current page receives
// messages and focus.
type StackedWidget struct {
	Base
	pages   []ui.Renderable
	current int

	CurrentChanged Signal[int]
}

// NewStackedWidget creates an empty stack.
func NewStackedWidget() *StackedWidget { return &StackedWidget{Base: newBase(), current: -1} }

// AddWidget appends a page and returns its index. The first page becomes
// current.
func (s *StackedWidget) AddWidget(page ui.Renderable) int {
	s.pages = append(s.pages, page)
	if s.current < 0 {
		s.current = 0
	}
	return len(s.pages) - 1
}

// Count returns the number of pages.
func (s *StackedWidget) Count() int { return len(s.pages) }

// Widget returns page i or nil.
func (s *StackedWidget) Widget(i int) ui.Renderable {
	if i < 0 || i >= len(s.pages) {
		return nil
	}
	return s.pages[i]
}

// IndexOf returns the index of page or -1.
func (s *StackedWidget) IndexOf(page ui.Renderable) int {
	for i, p := range s.pages {
		if p == page {
			return i
		}
	}
	return -1
}

// SetCurrentIndex shows page i and emits CurrentChanged when it changes.
// Out of range indexes are ignored.
func (s *StackedWidget) SetCurrentIndex(i int) {
	if i < 0 || i >= len(s.pages) || i == s.current {
		return
	}
	s.current = i
	s.CurrentChanged.Emit(i)
}

// CurrentIndex returns the shown page or -1.
func (s *StackedWidget) CurrentIndex() int { return s.current }

// SetCurrentWidget shows page. Pages not in the stack are ignored.
func (s *StackedWidget) SetCurrentWidget(page ui.Renderable) { s.SetCurrentIndex(s.IndexOf(page)) }

// CurrentWidget returns the shown page or nil.
func (s *StackedWidget) CurrentWidget() ui.Renderable { return s.Widget(s.current) }

// Children returns the current page only.
func (s *StackedWidget) Children() []ui.Renderable {
	if page := s.CurrentWidget(); page != nil {
		return []ui.Renderable{page}
	}
	return nil
}

// SetSize sets the allocated size and passes it to every page.
func (s *StackedWidget) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	for _, page := range s.pages {
		if r, ok := page.(ui.Resizable); ok {
			r.SetSize(max(width-s.style.GetHorizontalFrameSize(), 0), max(height-s.style.GetVerticalFrameSize(), 0))
		}
	}
}

// View renders the current page.
func (s *StackedWidget) View() string {
	page := s.CurrentWidget()
	if page == nil {
		return s.frame("")
	}
	return s.frame(page.View())
}

// SizeHint returns the size of the largest page.
func (s *StackedWidget) SizeHint() (int, int) {
	w, h := 0, 0
	for _, page := range s.pages {
		pw, ph := ui.Size(page)
		w, h = max(w, pw), max(h, ph)
	}
	return s.limits.ClampWidth(w + s.style.GetHorizontalFrameSize()),
		s.limits.ClampHeight(h + s.style.GetVerticalFrameSize())
}
