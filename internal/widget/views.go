package widget

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
)

type listEntry string

func (e listEntry) FilterValue() string { return string(e) }

// lineDelegate draws one list entry per line with the focus mark on the
// current one.
type lineDelegate struct {
	focused *bool
}

func (lineDelegate) Height() int                         { return 1 }
func (lineDelegate) Spacing() int                        { return 0 }
func (lineDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	text := string(item.(listEntry))
	if index == m.Index() {
		fmt.Fprint(w, focusMark(*d.focused, "› "+text))
		return
	}
	fmt.Fprint(w, "  "+text)
}

// ListView shows a column of strings, one current, backed by bubbles/list
// with its chrome turned off.
type ListView struct {
	Base
	focusState
	model list.Model
	items []string

	CurrentRowChanged Signal[int]
}

// NewListView creates an empty list view.
func NewListView() *ListView {
	l := &ListView{Base: newBase()}
	l.model = list.New(nil, lineDelegate{focused: &l.focused}, 0, 1)
	l.model.SetShowTitle(false)
	l.model.SetShowStatusBar(false)
	l.model.SetShowPagination(false)
	l.model.SetShowHelp(false)
	l.model.SetFilteringEnabled(false)
	l.model.DisableQuitKeybindings()
	return l
}

// SetItems replaces the entries. The first entry becomes current.
func (l *ListView) SetItems(items []string) {
	l.items = append([]string(nil), items...)
	entries := make([]list.Item, len(items))
	for i, s := range items {
		entries[i] = listEntry(s)
	}
	l.model.SetItems(entries)
	l.resize()
	l.model.Select(0)
}

// AddItem appends text.
func (l *ListView) AddItem(text string) {
	current := l.CurrentRow()
	l.SetItems(append(l.Items(), text))
	l.model.Select(max(current, 0))
}

// Items returns a copy of the entries.
func (l *ListView) Items() []string { return append([]string(nil), l.items...) }

// Count returns the number of entries.
func (l *ListView) Count() int { return len(l.items) }

// CurrentRow returns the current entry or -1 when empty.
func (l *ListView) CurrentRow() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.model.Index()
}

// CurrentText returns the current entry or "".
func (l *ListView) CurrentText() string {
	if row := l.CurrentRow(); row >= 0 {
		return l.items[row]
	}
	return ""
}

// SetCurrentRow makes row current and emits CurrentRowChanged when it
// changes. Out of range rows are ignored.
func (l *ListView) SetCurrentRow(row int) {
	if row < 0 || row >= len(l.items) || row == l.CurrentRow() {
		return
	}
	l.model.Select(row)
	l.CurrentRowChanged.Emit(row)
}

// SetSize sets the allocated size.
func (l *ListView) SetSize(width, height int) {
	l.Base.SetSize(width, height)
	l.resize()
}

func (l *ListView) resize() {
	w, h := l.Size()
	if h <= 0 {
		h = len(l.items) + l.style.GetVerticalFrameSize()
	}
	l.model.SetSize(max(w-l.style.GetHorizontalFrameSize(), 0), max(h-l.style.GetVerticalFrameSize(), 1))
}

// Update moves the current entry with the bubbles/list keys while focused.
func (l *ListView) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); !ok || !l.focused || len(l.items) == 0 {
		return nil
	}
	before := l.model.Index()
	var cmd tea.Cmd
	l.model, cmd = l.model.Update(msg)
	if after := l.model.Index(); after != before {
		l.CurrentRowChanged.Emit(after)
	}
	return cmd
}

// View renders the list view.
func (l *ListView) View() string {
	if len(l.items) == 0 {
		return l.frame("")
	}
	return l.frame(l.model.View())
}

// SizeHint returns the natural size.
func (l *ListView) SizeHint() (int, int) {
	w := 0
	for _, item := range l.items {
		w = max(w, lipgloss.Width(item)+2)
	}
	return l.limits.ClampWidth(w + l.style.GetHorizontalFrameSize()),
		l.limits.ClampHeight(max(len(l.items), 1) + l.style.GetVerticalFrameSize())
}

// TreeItem is a node of a TreeWidget.
type TreeItem struct {
	text     string
	icon     string
	children []*TreeItem
	expanded bool
}

// NewTreeItem creates a collapsed leaf.
func NewTreeItem() *TreeItem { return &TreeItem{} }

// SetText sets the caption.
func (i *TreeItem) SetText(text string) { i.text = text }

// Text returns the caption.
func (i *TreeItem) Text() string { return i.text }

// SetIcon sets the icon name.
func (i *TreeItem) SetIcon(name string) { i.icon = name }

// SetIconSize does nothing; glyphs have one size.
func (i *TreeItem) SetIconSize(int, int) {}

// Icon returns the icon name.
func (i *TreeItem) Icon() string { return i.icon }

// AddChild appends a child item.
func (i *TreeItem) AddChild(child *TreeItem) { i.children = append(i.children, child) }

// ChildCount returns the number of children.
func (i *TreeItem) ChildCount() int { return len(i.children) }

// Child returns child n or nil.
func (i *TreeItem) Child(n int) *TreeItem {
	if n < 0 || n >= len(i.children) {
		return nil
	}
	return i.children[n]
}

// SetExpanded shows or hides the children.
func (i *TreeItem) SetExpanded(expanded bool) { i.expanded = expanded }

// IsExpanded reports whether the children are shown.
func (i *TreeItem) IsExpanded() bool { return i.expanded }

func (i *TreeItem) label() string {
	text := i.text
	if g := icons.Glyph(i.icon); g != "" {
		text = g + " " + text
	}
	switch {
	case len(i.children) == 0:
		return "  " + text
	case i.expanded:
		return "▾ " + text
	}
	return "▸ " + text
}

// TreeWidget shows TreeItems drawn with lipgloss/tree. Up and down move
// over the shown items, right and left expand and collapse, enter
// activates.
type TreeWidget struct {
	Base
	focusState
	items   []*TreeItem
	current *TreeItem

	ItemActivated Signal[*TreeItem]
}

// NewTreeWidget creates an empty tree.
func NewTreeWidget() *TreeWidget { return &TreeWidget{Base: newBase()} }

// AddTopLevelItem appends a root item. The first one becomes current.
func (t *TreeWidget) AddTopLevelItem(item *TreeItem) {
	t.items = append(t.items, item)
	if t.current == nil {
		t.current = item
	}
}

// TopLevelItemCount returns the number of root items.
func (t *TreeWidget) TopLevelItemCount() int { return len(t.items) }

// TopLevelItem returns root item n or nil.
func (t *TreeWidget) TopLevelItem(n int) *TreeItem {
	if n < 0 || n >= len(t.items) {
		return nil
	}
	return t.items[n]
}

// CurrentItem returns the current item or nil.
func (t *TreeWidget) CurrentItem() *TreeItem { return t.current }

// SetCurrentItem makes item current.
func (t *TreeWidget) SetCurrentItem(item *TreeItem) { t.current = item }

// shown lists the items in drawing order, skipping collapsed subtrees.
func (t *TreeWidget) shown() []*TreeItem {
	var out []*TreeItem
	var walk func(items []*TreeItem)
	walk = func(items []*TreeItem) {
		for _, item := range items {
			out = append(out, item)
			if item.expanded {
				walk(item.children)
			}
		}
	}
	walk(t.items)
	return out
}

// Update navigates while focused.
func (t *TreeWidget) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused || t.current == nil {
		return nil
	}
	shown := t.shown()
	at := 0
	for i, item := range shown {
		if item == t.current {
			at = i
		}
	}
	switch key.String() {
	case "up", "k":
		t.current = shown[max(at-1, 0)]
	case "down", "j":
		t.current = shown[min(at+1, len(shown)-1)]
	case "right", "l":
		t.current.expanded = len(t.current.children) > 0
	case "left", "h":
		t.current.expanded = false
	case "enter", " ":
		t.ItemActivated.Emit(t.current)
	}
	return nil
}

func (t *TreeWidget) node(item *TreeItem) any {
	label := focusMark(t.focused && item == t.current, item.label())
	if !item.expanded || len(item.children) == 0 {
		return label
	}
	sub := tree.Root(label).Enumerator(tree.RoundedEnumerator)
	for _, child := range item.children {
		sub.Child(t.node(child))
	}
	return sub
}

func (t *TreeWidget) content() string {
	if len(t.items) == 0 {
		return ""
	}
	root := tree.New().Enumerator(tree.RoundedEnumerator)
	for _, item := range t.items {
		root.Child(t.node(item))
	}
	return strings.TrimRight(root.String(), "\n")
}

// View renders the tree.
func (t *TreeWidget) View() string { return t.frame(t.content()) }

// SizeHint returns the natural size.
func (t *TreeWidget) SizeHint() (int, int) { return t.hint(t.content()) }
