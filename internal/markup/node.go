package markup

import (
	"strings"

	"github.com/alexisbeaulieu97/uihelper/internal/factory"
	"github.com/alexisbeaulieu97/uihelper/internal/layout"
	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Composer names.
const (
	composeRows    = "rows"
	composeColumns = "columns"
	composeVBox    = "vbox"
	composeHBox    = "hbox"
	composeForm    = "form"
)

var composers = map[string]func(layout.Props, ...any) (*layout.Box, error){
	composeRows:    layout.Rows,
	composeColumns: layout.Columns,
	composeVBox:    layout.VBox,
	composeHBox:    layout.HBox,
}

// primaryKeys is the option a scalar node value sets, as in "label: Name".
var primaryKeys = map[string]string{
	"action":            "text",
	"button":            "text",
	"check_box":         "text",
	"dock_widget":       "title",
	"group_box":         "title",
	"label":             "text",
	"line_edit":         "text",
	"menu":              "title",
	"radio_button":      "text",
	"table_widget_item": "text",
	"text_edit":         "text",
	"tool_bar":          "title",
	"tool_button":       "text",
	"tree_widget_item":  "text",
}

// nestedKeys hold nodes rather than plain values.
var nestedKeys = map[string]bool{
	"layout":         true,
	"central_widget": true,
	"menubar":        true,
	"statusbar":      true,
	"content":        true,
}

// widgetLists hold one node per entry, layouts included.
var widgetLists = map[string]bool{
	"widgets": true,
	"pages":   true,
}

type builder struct {
	handlers map[string]any
}

func isKind(name string) bool {
	_, ok := factory.Recognized(name)
	return ok
}

// node builds a widget, a layout, a weighted item or a layout command.
func (b *builder) node(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		if cmd, ok := layout.ParseCommand(v); ok {
			return cmd, nil
		}
		if isKind(v) {
			return factory.Build(v, rules.NewBag())
		}
		if _, ok := composers[v]; ok {
			return b.compose(v, nil)
		}
		return nil, uierrors.NewTypeError("node", "unknown node kind %q", v)
	case *rules.Bag:
		if v.Has("item") {
			return b.weighted(v)
		}
		if v.Len() != 1 {
			return nil, uierrors.NewTypeError("node", "a node has exactly one kind, got %s", strings.Join(v.Keys(), ", "))
		}
		kind := v.Keys()[0]
		value, _ := v.Get(kind)
		switch {
		case kind == composeForm:
			return b.form(value)
		case composers[kind] != nil:
			return b.compose(kind, value)
		case isKind(kind):
			bag, err := b.options(kind, value)
			if err != nil {
				return nil, err
			}
			return factory.Build(kind, bag)
		}
		return nil, uierrors.NewTypeError("node", "unknown node kind %q", kind)
	case nil:
		return nil, uierrors.NewTypeError("node", "empty node")
	default:
		return nil, uierrors.NewTypeError("node", "unsupported node %T", raw)
	}
}

func (b *builder) weighted(v *rules.Bag) (any, error) {
	raw, _ := v.Get("item")
	item, err := b.node(raw)
	if err != nil {
		return nil, err
	}
	stretch := 0
	if s, ok := v.Get("stretch"); ok {
		n, ok := s.(int)
		if !ok {
			return nil, uierrors.NewValueError("stretch", "must be an integer")
		}
		stretch = n
	}
	return layout.Weighted(item, stretch), nil
}

// options turns a node value into the factory bag, resolving nested nodes
// and handler references.
func (b *builder) options(kind string, raw any) (*rules.Bag, error) {
	switch v := raw.(type) {
	case nil:
		return rules.NewBag(), nil
	case *rules.Bag:
		out := rules.NewBag()
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			resolved, err := b.value(key, value)
			if err != nil {
				return nil, err
			}
			out.Set(key, resolved)
		}
		return out, nil
	default:
		key, ok := primaryKeys[kind]
		if !ok {
			return nil, uierrors.NewTypeError(kind, "options must be a mapping")
		}
		value, err := b.value(key, raw)
		if err != nil {
			return nil, err
		}
		return rules.NewBag(key, value), nil
	}
}

func (b *builder) value(key string, raw any) (any, error) {
	if nestedKeys[key] && raw != nil {
		return b.node(raw)
	}
	switch v := raw.(type) {
	case string:
		return b.handler(key, v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			var resolved any
			var err error
			if widgetLists[key] {
				resolved, err = b.node(item)
			} else {
				resolved, err = b.element(key, item)
			}
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	}
	return raw, nil
}

// element resolves a list entry. Single kind mappings become widgets so
// menus can list their actions. Nested lists, such as dock pairs, resolve
// the same way; other entries stay values.
func (b *builder) element(key string, raw any) (any, error) {
	if list, ok := raw.([]any); ok {
		return b.value(key, list)
	}
	if bag, ok := raw.(*rules.Bag); ok && bag.Len() == 1 && isKind(bag.Keys()[0]) {
		return b.node(bag)
	}
	if s, ok := raw.(string); ok {
		return b.handler(key, s)
	}
	return raw, nil
}

func (b *builder) handler(key, s string) (any, error) {
	name, ok := strings.CutPrefix(s, "@")
	if !ok {
		return s, nil
	}
	// "@@" escapes a literal leading @.
	if strings.HasPrefix(name, "@") {
		return name, nil
	}
	h, ok := b.handlers[name]
	if !ok {
		return nil, uierrors.NewValueError(key, "no handler named %q", name)
	}
	return h, nil
}

func (b *builder) props(bag *rules.Bag) (layout.Props, error) {
	var p layout.Props
	if raw, ok := bag.Get("align"); ok {
		name, isString := raw.(string)
		align, known := components.ParseAlignment(name)
		if !isString || !known {
			return p, uierrors.NewValueError("align", "unknown alignment %v", raw)
		}
		p.Align = align
	}
	for _, field := range []struct {
		key    string
		target *int
	}{
		{"spacing", &p.Spacing},
		{"default_stretch", &p.DefaultStretch},
	} {
		value, ok := bag.Get(field.key)
		if !ok {
			continue
		}
		n, isInt := value.(int)
		if !isInt {
			return p, uierrors.NewValueError(field.key, "must be an integer")
		}
		*field.target = n
	}
	if raw, ok := bag.Get("margin"); ok {
		p.Margin = raw
	}
	return p, nil
}

// split separates composer properties from the item list. The value is
// either the list itself or a mapping with an "items" key.
func (b *builder) split(name string, raw any) (*rules.Bag, []any, error) {
	switch v := raw.(type) {
	case nil:
		return rules.NewBag(), nil, nil
	case []any:
		return rules.NewBag(), v, nil
	case *rules.Bag:
		itemsKey := "items"
		if name == composeForm {
			itemsKey = "rows"
		}
		items, _ := v.Get(itemsKey)
		list, ok := items.([]any)
		if items != nil && !ok {
			return nil, nil, uierrors.NewTypeError(itemsKey, "must be a list")
		}
		return v, list, nil
	default:
		return nil, nil, uierrors.NewTypeError(name, "must be a list or a mapping")
	}
}

func (b *builder) compose(name string, raw any) (*layout.Box, error) {
	bag, items, err := b.split(name, raw)
	if err != nil {
		return nil, err
	}
	props, err := b.props(bag)
	if err != nil {
		return nil, err
	}
	built := make([]any, 0, len(items))
	for _, item := range items {
		n, err := b.node(item)
		if err != nil {
			return nil, err
		}
		built = append(built, n)
	}
	return composers[name](props, built...)
}

func (b *builder) form(raw any) (*layout.FormLayout, error) {
	bag, items, err := b.split(composeForm, raw)
	if err != nil {
		return nil, err
	}
	props, err := b.props(bag)
	if err != nil {
		return nil, err
	}
	fp := layout.FormProps{Props: props}
	if raw, ok := bag.Get("label_align"); ok {
		name, _ := raw.(string)
		align, known := components.ParseAlignment(name)
		if !known {
			return nil, uierrors.NewValueError("label_align", "unknown alignment %v", raw)
		}
		fp.LabelAlign = align
	}
	if raw, ok := bag.Get("free_label_width"); ok {
		free, isBool := raw.(bool)
		if !isBool {
			return nil, uierrors.NewTypeError("free_label_width", "must be a boolean")
		}
		fp.FreeLabelWidth = free
	}
	rows := make([]layout.FormRow, 0, len(items))
	for _, item := range items {
		row, err := b.formRow(item)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return layout.Form(fp, rows...)
}

// formRow reads {label: text, field: node} or [text, node].
func (b *builder) formRow(raw any) (layout.FormRow, error) {
	var label, field any
	switch v := raw.(type) {
	case *rules.Bag:
		label, _ = v.Get("label")
		field, _ = v.Get("field")
	case []any:
		if len(v) != 2 {
			return layout.FormRow{}, uierrors.NewValueError("rows", "a form row is a label and a field")
		}
		label, field = v[0], v[1]
	default:
		return layout.FormRow{}, uierrors.NewTypeError("rows", "a form row is a mapping or a pair")
	}
	text, ok := label.(string)
	if !ok {
		return layout.FormRow{}, uierrors.NewTypeError("label", "label must be either a string or a label")
	}
	row := layout.FormRow{Label: text}
	if field == nil {
		return row, nil
	}
	built, err := b.node(field)
	if err != nil {
		return layout.FormRow{}, err
	}
	r, ok := built.(ui.Renderable)
	if !ok {
		return layout.FormRow{}, uierrors.NewTypeError("field", "must be a widget or a layout, got %T", built)
	}
	row.Field = r
	return row, nil
}
