package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

func label(text string) *widget.Label {
	l := widget.NewLabel()
	l.SetText(text)
	return l
}

func subBox(t *testing.T, b *Box, i int) *Box {
	t.Helper()
	item := b.ItemAt(i)
	require.Equal(t, LayoutItem, item.Kind)
	sub, ok := item.Node.(*Box)
	require.True(t, ok)
	return sub
}

func TestRowsStartsARowPerNextRow(t *testing.T) {
	a, b, c := label("a"), label("b"), label("c")

	rows, err := Rows(Props{}, a, NextRow, b, NextRow, c)
	require.NoError(t, err)

	assert.Equal(t, widget.Vertical, rows.Orientation())
	require.Equal(t, 3, rows.Count())
	for i, want := range []*widget.Label{a, b, c} {
		row := subBox(t, rows, i)
		assert.Equal(t, widget.Horizontal, row.Orientation())
		require.Equal(t, 1, row.Count())
		assert.Same(t, want, row.ItemAt(0).Node)
	}
}

func TestRowsWithoutCommandsMakesOneRow(t *testing.T) {
	a, b := label("a"), label("b")

	rows, err := Rows(Props{}, a, b)
	require.NoError(t, err)

	require.Equal(t, 1, rows.Count())
	row := subBox(t, rows, 0)
	assert.Equal(t, 2, row.Count())
}

func TestColumnsStartsAColumnPerNextColumn(t *testing.T) {
	cols, err := Columns(Props{}, label("a"), label("b"), NextColumn, label("c"))
	require.NoError(t, err)

	assert.Equal(t, widget.Horizontal, cols.Orientation())
	require.Equal(t, 2, cols.Count())
	first := subBox(t, cols, 0)
	assert.Equal(t, widget.Vertical, first.Orientation())
	assert.Equal(t, 2, first.Count())
	assert.Equal(t, 1, subBox(t, cols, 1).Count())
}

func TestStretchGoesToRowAndStretchLayoutToOuterBox(t *testing.T) {
	inner, err := Rows(Props{}, label("a"), AddStretch, label("b"))
	require.NoError(t, err)
	require.Equal(t, 1, inner.Count())
	row := subBox(t, inner, 0)
	require.Equal(t, 3, row.Count())
	assert.Equal(t, StretchItem, row.ItemAt(1).Kind)

	outer, err := Rows(Props{}, label("a"), AddStretchLayout, label("b"))
	require.NoError(t, err)
	require.Equal(t, 2, outer.Count())
	assert.Equal(t, StretchItem, outer.ItemAt(1).Kind)
	assert.Equal(t, 2, subBox(t, outer, 0).Count())
}

func TestOpeningItemWeightAppliesToRow(t *testing.T) {
	rows, err := Rows(Props{DefaultStretch: 1}, Weighted(label("a"), 3), label("b"), NextRow, label("c"))
	require.NoError(t, err)

	require.Equal(t, 2, rows.Count())
	assert.Equal(t, 3, rows.ItemAt(0).Stretch)
	assert.Equal(t, 1, rows.ItemAt(1).Stretch)
	first := subBox(t, rows, 0)
	assert.Equal(t, 3, first.ItemAt(0).Stretch)
	assert.Equal(t, 1, first.ItemAt(1).Stretch)
}

func TestTupleItems(t *testing.T) {
	a := label("a")
	box, err := VBox(Props{}, []any{a, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, box.ItemAt(0).Stretch)

	tests := []struct {
		name string
		item any
	}{
		{name: "one element", item: []any{a}},
		{name: "weight not an int", item: []any{a, "2"}},
		{name: "command with weight", item: Weighted(NextRow, 2)},
		{name: "command in a tuple", item: []any{AddStretch, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rows(Props{}, tt.item)
			require.Error(t, err)
			assert.ErrorIs(t, err, uierrors.ErrValue)
		})
	}
}

func TestUnsupportedItemsNameTheirType(t *testing.T) {
	_, err := Rows(Props{}, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, uierrors.ErrType)
	assert.Contains(t, err.Error(), "unsupported item type in Rows: int")

	_, err = VBox(Props{}, NextRow)
	require.Error(t, err)
	assert.ErrorIs(t, err, uierrors.ErrType)
	assert.Contains(t, err.Error(), "in VBox")

	_, err = HBox(Props{}, AddStretchLayout)
	assert.ErrorIs(t, err, uierrors.ErrType)

	_, err = Columns(Props{}, NextRow)
	assert.ErrorIs(t, err, uierrors.ErrType)
}

func TestSimpleBoxesAddItemsDirectly(t *testing.T) {
	nested := NewHBox()
	spacer := VSpacer()
	box, err := VBox(Props{}, label("a"), nested, spacer, AddStretch)
	require.NoError(t, err)

	require.Equal(t, 4, box.Count())
	assert.Equal(t, WidgetItem, box.ItemAt(0).Kind)
	assert.Equal(t, LayoutItem, box.ItemAt(1).Kind)
	assert.Equal(t, SpacerItem, box.ItemAt(2).Kind)
	assert.Equal(t, StretchItem, box.ItemAt(3).Kind)
	assert.Len(t, box.Children(), 2)
}

func TestDefaultAlignments(t *testing.T) {
	v, err := VBox(Props{})
	require.NoError(t, err)
	assert.Equal(t, components.AlignTop, v.Alignment())

	h, err := HBox(Props{})
	require.NoError(t, err)
	assert.Equal(t, components.AlignLeft, h.Alignment())

	centered, err := HBox(Props{Align: components.AlignCenter})
	require.NoError(t, err)
	assert.Equal(t, components.AlignCenter, centered.Alignment())

	rows, err := Rows(Props{}, label("a"))
	require.NoError(t, err)
	assert.Equal(t, components.AlignNone, rows.Alignment())
}

func TestPropsApplyToEveryBox(t *testing.T) {
	rows, err := Rows(Props{Spacing: 2, Margin: 1}, label("a"), NextRow, label("b"))
	require.NoError(t, err)

	assert.Equal(t, 2, rows.Spacing())
	assert.Equal(t, components.UniformSpacing(1), rows.ContentsMargins())
	for i := 0; i < rows.Count(); i++ {
		row := subBox(t, rows, i)
		assert.Equal(t, 2, row.Spacing())
		assert.Equal(t, components.UniformSpacing(1), row.ContentsMargins())
	}
}

func TestMargins(t *testing.T) {
	box, err := VBox(Props{Margin: []int{1, 2, 3, 4}})
	require.NoError(t, err)
	assert.Equal(t, components.Spacing{Left: 1, Top: 2, Right: 3, Bottom: 4}, box.ContentsMargins())

	box, err = VBox(Props{Margin: []any{0, 1, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, components.Spacing{Top: 1, Bottom: 1}, box.ContentsMargins())

	for _, bad := range []any{"1", []int{1, 2}, []any{1, 2, 3, "4"}} {
		_, err := VBox(Props{Margin: bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, uierrors.ErrValue)
		assert.Contains(t, err.Error(), "margin must be an int or a tuple/list of four ints")
	}
}

func TestSpacers(t *testing.T) {
	h, v := HSpacer().Expanding()
	assert.True(t, h)
	assert.False(t, v)

	h, v = VSpacer().Expanding()
	assert.False(t, h)
	assert.True(t, v)
}

func TestWeightsShareSurplus(t *testing.T) {
	a, b := label("a"), label("b")
	box, err := HBox(Props{}, Weighted(a, 1), Weighted(b, 3))
	require.NoError(t, err)

	box.SetSize(40, 1)
	view := box.View()

	assert.Equal(t, 40, lipgloss.Width(view))
	aw, _ := a.Size()
	bw, _ := b.Size()
	assert.Equal(t, 11, aw)
	assert.Equal(t, 29, bw)
}

func TestResizableChildrenShareSurplusWithoutWeights(t *testing.T) {
	a, b := label("a"), label("b")
	box := NewHBox()
	box.AddWidget(a, 0)
	box.AddWidget(b, 0)

	box.SetSize(10, 1)
	_ = box.View()

	aw, _ := a.Size()
	bw, _ := b.Size()
	assert.Equal(t, 5, aw)
	assert.Equal(t, 5, bw)
}

func TestStretchTakesSurplus(t *testing.T) {
	box := NewHBox()
	box.AddWidget(label("a"), 0)
	box.AddStretch(0)
	box.AddWidget(label("b"), 0)

	box.SetSize(10, 1)
	assert.Equal(t, "a        b", box.View())
}

func TestAlignedBoxKeepsNaturalSizes(t *testing.T) {
	box, err := VBox(Props{}, label("a"), label("b"))
	require.NoError(t, err)

	box.SetSize(10, 5)
	lines := strings.Split(box.View(), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "a         ", lines[0])
	assert.Equal(t, "b         ", lines[1])
	assert.Equal(t, strings.Repeat(" ", 10), lines[4])
}

func TestSpacingAndNaturalSize(t *testing.T) {
	box, err := HBox(Props{Spacing: 1}, label("ab"), label("c"))
	require.NoError(t, err)

	w, h := box.SizeHint()
	assert.Equal(t, 4, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, "ab c", box.View())
}

func TestHiddenWidgetsTakeNoSpace(t *testing.T) {
	hidden := label("x")
	hidden.Hide()
	box, err := HBox(Props{}, label("a"), hidden, label("b"))
	require.NoError(t, err)

	assert.Equal(t, "ab", box.View())
}

func TestFocusWalksThroughComposedBoxes(t *testing.T) {
	first, second := widget.NewLineEdit(), widget.NewLineEdit()
	rows, err := Rows(Props{}, label("Name"), first, NextRow, label("Email"), second)
	require.NoError(t, err)

	focusables := ui.Focusables(rows)
	require.Len(t, focusables, 2)
	assert.Same(t, first, focusables[0])
	assert.Same(t, second, focusables[1])
}

func TestFormUsesUniformLabelWidth(t *testing.T) {
	custom := label("Email address")
	form, err := Form(FormProps{},
		Row("Name", widget.NewLineEdit()),
		Row(custom, widget.NewLineEdit()),
	)
	require.NoError(t, err)

	require.Equal(t, 2, form.RowCount())
	assert.Same(t, custom, form.LabelAt(1))
	for i := 0; i < form.RowCount(); i++ {
		l := form.LabelAt(i)
		assert.Equal(t, components.AlignRight, l.Alignment())
		assert.Equal(t, 14, l.Limits().MinWidth)
		assert.Equal(t, 14, l.Limits().MaxWidth)
	}
}

func TestFormOptions(t *testing.T) {
	form, err := Form(FormProps{FreeLabelWidth: true, LabelAlign: components.AlignLeft},
		Row("Name", widget.NewLineEdit()),
	)
	require.NoError(t, err)

	l := form.LabelAt(0)
	assert.Equal(t, components.AlignLeft, l.Alignment())
	assert.Equal(t, ui.NoLimits(), l.Limits())
}

func TestFormRejectsOtherLabels(t *testing.T) {
	_, err := Form(FormProps{}, Row(42, widget.NewLineEdit()))
	require.Error(t, err)
	assert.ErrorIs(t, err, uierrors.ErrType)
	assert.Contains(t, err.Error(), "label must be either a string or a label")
}

func TestCommandNames(t *testing.T) {
	for _, c := range []Command{NextRow, NextColumn, AddStretch, AddStretchLayout} {
		parsed, ok := ParseCommand(c.String())
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	_, ok := ParseCommand("sideways")
	assert.False(t, ok)
}
