package layout

import (
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Command is a layout instruction placed among the items of a composer.
type Command int

const (
	// NextRow starts a new row in Rows.
	NextRow Command = iota + 1
	// NextColumn starts a new column in Columns.
	NextColumn
	// AddStretch adds an elastic stretch to the current box.
	AddStretch
	// AddStretchLayout adds an elastic stretch to the outer box of Rows or
	// Columns.
	AddStretchLayout
)

var commandNames = map[Command]string{
	NextRow:          "next_row",
	NextColumn:       "next_column",
	AddStretch:       "stretch",
	AddStretchLayout: "stretch_layout",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand returns the command with the given markup name.
func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// WeightedItem pairs an item with a stretch weight.
type WeightedItem struct {
	Item    any
	Stretch int
}

// Weighted pairs item with a stretch weight.
func Weighted(item any, stretch int) WeightedItem {
	return WeightedItem{Item: item, Stretch: stretch}
}

// Props configure a composed box and every box it creates. A zero Align
// keeps the composer's default; Margin is an int or four ints in left, top,
// right, bottom order.
type Props struct {
	Align          components.Alignment
	Spacing        int
	Margin         any
	DefaultStretch int
}

const tupleMessage = "item tuple must be (item, stretch:int)"

// unpack splits an item from its weight.
func unpack(item any, fallback int) (any, int, error) {
	var inner any
	var stretch int
	switch v := item.(type) {
	case WeightedItem:
		inner, stretch = v.Item, v.Stretch
	case []any:
		if len(v) != 2 {
			return nil, 0, uierrors.NewValueError("items", tupleMessage)
		}
		n, ok := v[1].(int)
		if !ok {
			return nil, 0, uierrors.NewValueError("items", tupleMessage)
		}
		inner, stretch = v[0], n
	default:
		return item, fallback, nil
	}
	if _, ok := inner.(Command); ok {
		return nil, 0, uierrors.NewValueError("items", "a layout command cannot carry a stretch weight")
	}
	return inner, stretch, nil
}

func margins(raw any) (components.Spacing, error) {
	fail := uierrors.NewValueError("margin", "margin must be an int or a tuple/list of four ints")
	var four []int
	switch v := raw.(type) {
	case int:
		return components.UniformSpacing(v), nil
	case [4]int:
		four = v[:]
	case []int:
		four = v
	case []any:
		for _, item := range v {
			n, ok := item.(int)
			if !ok {
				return components.Spacing{}, fail
			}
			four = append(four, n)
		}
	default:
		return components.Spacing{}, fail
	}
	if len(four) != 4 {
		return components.Spacing{}, fail
	}
	return components.CustomSpacing(four[0], four[1], four[2], four[3]), nil
}

func (p Props) apply(b *Box, align components.Alignment) error {
	if p.Align != components.AlignNone {
		align = p.Align
	}
	b.SetAlignment(align)
	b.SetSpacing(p.Spacing)
	if p.Margin != nil {
		m, err := margins(p.Margin)
		if err != nil {
			return err
		}
		b.margin = m
	}
	return nil
}

// add places a widget, layout or spacer in b. It reports false for anything
// else.
func add(b *Box, item any, stretch int) bool {
	switch v := item.(type) {
	case *Spacer:
		b.AddSpacerItem(v)
	case Layout:
		b.AddLayout(v, stretch)
	case ui.Renderable:
		b.AddWidget(v, stretch)
	default:
		return false
	}
	return true
}

// VBox stacks items in a column aligned to the top unless props say
// otherwise.
func VBox(props Props, items ...any) (*Box, error) {
	return simple("VBox", NewVBox(), components.AlignTop, props, items)
}

// HBox lines items up in a row aligned to the left unless props say
// otherwise.
func HBox(props Props, items ...any) (*Box, error) {
	return simple("HBox", NewHBox(), components.AlignLeft, props, items)
}

func simple(name string, box *Box, align components.Alignment, props Props, items []any) (*Box, error) {
	if err := props.apply(box, align); err != nil {
		return nil, err
	}
	for _, raw := range items {
		item, stretch, err := unpack(raw, props.DefaultStretch)
		if err != nil {
			return nil, err
		}
		if item == AddStretch {
			box.AddStretch(0)
			continue
		}
		if !add(box, item, stretch) {
			return nil, uierrors.NewTypeError("items", "unsupported item type in %s: %T", name, item)
		}
	}
	return box, nil
}

// Rows lays items out in rows. Items gather in a row until NextRow starts
// the next one; each row takes the weight of the item that opened it.
func Rows(props Props, items ...any) (*Box, error) {
	return grid("Rows", NewVBox(), NewHBox, NextRow, props, items)
}

// Columns lays items out in columns. Items gather in a column until
// NextColumn starts the next one.
func Columns(props Props, items ...any) (*Box, error) {
	return grid("Columns", NewHBox(), NewVBox, NextColumn, props, items)
}

func grid(name string, outer *Box, newLine func() *Box, next Command, props Props, items []any) (*Box, error) {
	if err := props.apply(outer, components.AlignNone); err != nil {
		return nil, err
	}
	var line *Box
	for _, raw := range items {
		item, stretch, err := unpack(raw, props.DefaultStretch)
		if err != nil {
			return nil, err
		}
		if item == next || line == nil {
			line = newLine()
			if err := props.apply(line, components.AlignNone); err != nil {
				return nil, err
			}
			outer.AddLayout(line, stretch)
			if item == next {
				continue
			}
		}
		switch item {
		case AddStretch:
			line.AddStretch(0)
			continue
		case AddStretchLayout:
			outer.AddStretch(0)
			continue
		}
		if !add(line, item, stretch) {
			return nil, uierrors.NewTypeError("items", "unsupported item type in %s: %T", name, item)
		}
	}
	return outer, nil
}
