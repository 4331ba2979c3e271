// Package layout arranges widgets in boxes and composes them from flat item
// lists.
//
// A Box lays its items along one axis. Surplus space on that axis goes to
// the items with a positive stretch weight; when none has a weight it is
// shared by elastic stretches and expanding spacers, then by the resizable
// children unless the box is aligned along its axis.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
)

// ItemKind tells what a box item holds.
type ItemKind int

const (
	WidgetItem ItemKind = iota
	LayoutItem
	SpacerItem
	StretchItem
)

// Item is one entry of a box.
type Item struct {
	Kind    ItemKind
	Node    ui.Renderable // nil for stretches
	Stretch int
}

// Layout is a box or a form that can be nested in another layout.
type Layout interface {
	ui.Resizable
	ui.Parent
	layout()
}

// Box arranges items in a row or a column.
type Box struct {
	orientation widget.Orientation
	items       []Item
	align       components.Alignment
	spacing     int
	margin      components.Spacing
	width       int
	height      int
}

// NewVBox creates a box that stacks items top to bottom.
func NewVBox() *Box { return &Box{orientation: widget.Vertical} }

// NewHBox creates a box that lines items up left to right.
func NewHBox() *Box { return &Box{orientation: widget.Horizontal} }

func (b *Box) layout() {}

// Orientation returns the main axis.
func (b *Box) Orientation() widget.Orientation { return b.orientation }

// AddWidget appends a widget with a stretch weight.
func (b *Box) AddWidget(w ui.Renderable, stretch int) {
	b.items = append(b.items, Item{Kind: WidgetItem, Node: w, Stretch: stretch})
}

// AddLayout appends a nested layout with a stretch weight.
func (b *Box) AddLayout(l Layout, stretch int) {
	b.items = append(b.items, Item{Kind: LayoutItem, Node: l, Stretch: stretch})
}

// AddSpacerItem appends a spacer.
func (b *Box) AddSpacerItem(s *Spacer) {
	b.items = append(b.items, Item{Kind: SpacerItem, Node: s})
}

// AddStretch appends an elastic empty item.
func (b *Box) AddStretch(stretch int) {
	b.items = append(b.items, Item{Kind: StretchItem, Stretch: stretch})
}

// SetAlignment sets how content sits in space it does not fill.
func (b *Box) SetAlignment(align components.Alignment) { b.align = align }

// Alignment returns the alignment.
func (b *Box) Alignment() components.Alignment { return b.align }

// SetSpacing sets the gap between items.
func (b *Box) SetSpacing(n int) { b.spacing = max(n, 0) }

// Spacing returns the gap between items.
func (b *Box) Spacing() int { return b.spacing }

// SetContentsMargins sets the margins around the items.
func (b *Box) SetContentsMargins(left, top, right, bottom int) {
	b.margin = components.CustomSpacing(left, top, right, bottom)
}

// ContentsMargins returns the margins.
func (b *Box) ContentsMargins() components.Spacing { return b.margin }

// Count returns the number of items.
func (b *Box) Count() int { return len(b.items) }

// ItemAt returns the item at i.
func (b *Box) ItemAt(i int) Item { return b.items[i] }

// Items returns a copy of the items.
func (b *Box) Items() []Item { return append([]Item(nil), b.items...) }

// Children returns the widgets and nested layouts in order.
func (b *Box) Children() []ui.Renderable {
	var out []ui.Renderable
	for _, item := range b.items {
		if item.Kind == WidgetItem || item.Kind == LayoutItem {
			out = append(out, item.Node)
		}
	}
	return out
}

// SetSize sets the allocated size. Zero means natural size.
func (b *Box) SetSize(width, height int) {
	b.width, b.height = width, height
}

// Size returns the allocated size.
func (b *Box) Size() (int, int) { return b.width, b.height }

// axes splits a width and height into main and cross sizes.
func (b *Box) axes(w, h int) (int, int) {
	if b.orientation == widget.Vertical {
		return h, w
	}
	return w, h
}

// dims joins main and cross sizes back into a width and height.
func (b *Box) dims(main, cross int) (int, int) {
	if b.orientation == widget.Vertical {
		return cross, main
	}
	return main, cross
}

type slot struct {
	item  Item
	main  int
	cross int
}

func (b *Box) slots() []slot {
	var out []slot
	for _, item := range b.items {
		s := slot{item: item}
		switch item.Kind {
		case WidgetItem, LayoutItem:
			if !ui.Visible(item.Node) {
				continue
			}
			s.main, s.cross = b.axes(ui.Size(item.Node))
		case SpacerItem:
			sp := item.Node.(*Spacer)
			s.main, s.cross = b.axes(sp.width, sp.height)
		}
		out = append(out, s)
	}
	return out
}

func gaps(count, spacing int) int {
	if count < 2 {
		return 0
	}
	return (count - 1) * spacing
}

// SizeHint returns the natural size.
func (b *Box) SizeHint() (int, int) {
	main, cross, shown := 0, 0, 0
	for _, s := range b.slots() {
		if s.main > 0 {
			shown++
		}
		main += s.main
		cross = max(cross, s.cross)
	}
	main += gaps(shown, b.spacing)
	w, h := b.dims(main, cross)
	return w + b.margin.Horizontal(), h + b.margin.Vertical()
}

func (b *Box) expands(item Item) bool {
	switch item.Kind {
	case StretchItem:
		return true
	case SpacerItem:
		sp := item.Node.(*Spacer)
		if b.orientation == widget.Vertical {
			return sp.vExpand
		}
		return sp.hExpand
	}
	return false
}

func (b *Box) mainAligned() bool {
	if b.orientation == widget.Vertical {
		return b.align.HasVertical()
	}
	return b.align.HasHorizontal()
}

func (b *Box) crossAligned() bool {
	if b.orientation == widget.Vertical {
		return b.align.HasHorizontal()
	}
	return b.align.HasVertical()
}

// weights picks who receives surplus main-axis space.
func (b *Box) weights(slots []slot) []int {
	w := make([]int, len(slots))
	found := false
	for i, s := range slots {
		if s.item.Stretch > 0 && s.item.Kind != SpacerItem {
			w[i] = s.item.Stretch
			found = true
		}
	}
	if found {
		return w
	}
	for i, s := range slots {
		if b.expands(s.item) {
			w[i] = 1
			found = true
		}
	}
	if found || b.mainAligned() {
		return w
	}
	for i, s := range slots {
		if _, ok := s.item.Node.(ui.Resizable); ok && s.item.Kind != SpacerItem {
			w[i] = 1
		}
	}
	return w
}

// distribute adds surplus to the weighted slots, floor shares first and the
// remainder one cell at a time in item order. Slots never grow past their
// maximum size.
func (b *Box) distribute(slots []slot, surplus int) {
	weights := b.weights(slots)
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 || surplus <= 0 {
		return
	}
	given := 0
	for i, w := range weights {
		share := surplus * w / total
		slots[i].main += share
		given += share
	}
	for i := 0; given < surplus; i = (i + 1) % len(slots) {
		if weights[i] > 0 {
			slots[i].main++
			given++
		}
	}
	for i := range slots {
		bounded, ok := slots[i].item.Node.(ui.Bounded)
		if !ok || slots[i].item.Kind == SpacerItem {
			continue
		}
		limits := bounded.Limits()
		if b.orientation == widget.Vertical {
			slots[i].main = min(slots[i].main, max(limits.MaxHeight, 0))
		} else {
			slots[i].main = min(slots[i].main, max(limits.MaxWidth, 0))
		}
	}
}

func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// View renders the items.
func (b *Box) View() string {
	slots := b.slots()
	innerW, innerH := b.width, b.height
	if innerW > 0 {
		innerW = max(innerW-b.margin.Horizontal(), 0)
	}
	if innerH > 0 {
		innerH = max(innerH-b.margin.Vertical(), 0)
	}
	availMain, availCross := b.axes(innerW, innerH)

	natural, shown, widest := 0, 0, 0
	for _, s := range slots {
		natural += s.main
		if s.main > 0 {
			shown++
		}
		widest = max(widest, s.cross)
	}
	if availCross <= 0 {
		availCross = widest
	}
	if availMain > 0 {
		// Items that were empty before the distribution may gain a gap.
		b.distribute(slots, availMain-natural-gaps(shown, b.spacing))
	}

	crossPos := b.align.Horizontal()
	if b.orientation == widget.Horizontal {
		crossPos = b.align.Vertical()
	}
	var parts []string
	for _, s := range slots {
		if s.main <= 0 {
			continue
		}
		cross := availCross
		if s.item.Kind == WidgetItem || s.item.Kind == LayoutItem {
			if b.crossAligned() {
				cross = min(s.cross, availCross)
			}
		}
		w, h := b.dims(s.main, cross)
		var block string
		switch s.item.Kind {
		case WidgetItem, LayoutItem:
			if r, ok := s.item.Node.(ui.Resizable); ok {
				r.SetSize(w, h)
			}
			block = s.item.Node.View()
		default:
			block = blank(w, h)
		}
		slotW, slotH := b.dims(s.main, availCross)
		if b.orientation == widget.Vertical {
			block = lipgloss.Place(slotW, slotH, crossPos, lipgloss.Top, block)
		} else {
			block = lipgloss.Place(slotW, slotH, lipgloss.Left, crossPos, block)
		}
		block = lipgloss.NewStyle().MaxWidth(slotW).MaxHeight(slotH).Render(block)
		if len(parts) > 0 && b.spacing > 0 {
			parts = append(parts, blank(b.dims(b.spacing, availCross)))
		}
		parts = append(parts, block)
	}

	var content string
	if b.orientation == widget.Vertical {
		content = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	if innerW > 0 && innerH > 0 {
		content = lipgloss.Place(innerW, innerH, b.align.Horizontal(), b.align.Vertical(), content)
		content = lipgloss.NewStyle().MaxWidth(innerW).MaxHeight(innerH).Render(content)
	}
	if !b.margin.IsZero() {
		content = lipgloss.NewStyle().
			Padding(b.margin.Top, b.margin.Right, b.margin.Bottom, b.margin.Left).
			Render(content)
	}
	return content
}
