package factory

import (
	"image"

	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

var buttonRules = styledRules[*widget.Button]().Then(
	rules.Text[*widget.Button](),
	rules.Icon[*widget.Button](),
	rules.Shortcut[*widget.Button](),
	rules.Tooltip[*widget.Button](),
	rules.TooltipDuration[*widget.Button](),
	rules.Slot("on_click", func(b *widget.Button, slot func()) { b.Clicked.Connect(slot) }),
)

// Button creates a push button.
func Button(text string, bag *rules.Bag) (*widget.Button, error) {
	return build("button", withPrimary(bag, "text", text), widget.NewButton, buttonRules)
}

var toolButtonRules = styledRules[*widget.ToolButton]().Then(
	rules.Text[*widget.ToolButton](),
	rules.Icon[*widget.ToolButton](),
	rules.Shortcut[*widget.ToolButton](),
	rules.Tooltip[*widget.ToolButton](),
	rules.TooltipDuration[*widget.ToolButton](),
	rules.Default(rules.Enum("button_style", widget.ToolButtonStyleNames, (*widget.ToolButton).SetToolButtonStyle),
		widget.ToolButtonTextUnderIcon),
	rules.Slot("on_click", func(b *widget.ToolButton, slot func()) { b.Clicked.Connect(slot) }),
)

// ToolButton creates a tool button; the style defaults to text under icon.
func ToolButton(text string, bag *rules.Bag) (*widget.ToolButton, error) {
	return build("tool_button", withPrimary(bag, "text", text), widget.NewToolButton, toolButtonRules)
}

var labelRules = styledRules[*widget.Label]().Then(
	rules.Text[*widget.Label](),
	rules.Shortcut[*widget.Label](),
	alignment[*widget.Label]("alignment"),
	rules.Attr("pixmap", func(l *widget.Label, img image.Image) { l.SetPixmap(img) }),
	rules.Slot("on_click", func(l *widget.Label, slot func()) { l.Clicked.Connect(slot) }),
)

// Label creates a text or image label.
func Label(text string, bag *rules.Bag) (*widget.Label, error) {
	return build("label", withPrimary(bag, "text", text), widget.NewLabel, labelRules)
}

var lineEditRules = styledRules[*widget.LineEdit]().Then(
	rules.Text[*widget.LineEdit](),
	rules.Attr("placeholder_text", (*widget.LineEdit).SetPlaceholderText),
	rules.Checked("max_length", (*widget.LineEdit).SetMaxLength, "gt=0"),
	rules.Attr("mask", (*widget.LineEdit).SetInputMask),
	rules.Attr("read_only", (*widget.LineEdit).SetReadOnly),
	rules.Slot("on_return_pressed", func(l *widget.LineEdit, slot func()) { l.ReturnPressed.Connect(slot) }),
	rules.Slot("on_text_changed", func(l *widget.LineEdit, slot func(string)) { l.TextChanged.Connect(slot) }),
)

// LineEdit creates a single line text input.
func LineEdit(text string, bag *rules.Bag) (*widget.LineEdit, error) {
	return build("line_edit", withPrimary(bag, "text", text), widget.NewLineEdit, lineEditRules)
}

var textEditRules = styledRules[*widget.TextEdit]().Then(
	rules.Text[*widget.TextEdit](),
	rules.Attr("placeholder_text", (*widget.TextEdit).SetPlaceholderText),
	rules.Slot("on_text_changed", func(t *widget.TextEdit, slot func()) { t.TextChanged.Connect(slot) }),
)

// TextEdit creates a multi line text input.
func TextEdit(text string, bag *rules.Bag) (*widget.TextEdit, error) {
	return build("text_edit", withPrimary(bag, "text", text), widget.NewTextEdit, textEditRules)
}

var checkBoxRules = styledRules[*widget.CheckBox]().Then(
	rules.Text[*widget.CheckBox](),
	rules.Icon[*widget.CheckBox](),
	rules.Default(rules.Attr("checked", (*widget.CheckBox).SetChecked), false),
	rules.Slot("on_released", func(c *widget.CheckBox, slot func()) { c.Released.Connect(slot) }),
	rules.Slot("on_state_changed", func(c *widget.CheckBox, slot func(int)) { c.StateChanged.Connect(slot) }),
)

// CheckBox creates a check box.
func CheckBox(text string, bag *rules.Bag) (*widget.CheckBox, error) {
	return build("check_box", withPrimary(bag, "text", text), widget.NewCheckBox, checkBoxRules)
}

var radioButtonRules = styledRules[*widget.RadioButton]().Then(
	rules.Text[*widget.RadioButton](),
	rules.Icon[*widget.RadioButton](),
	rules.Attr("group", func(r *widget.RadioButton, g *widget.RadioGroup) { g.Add(r) }),
	rules.Attr("checked", (*widget.RadioButton).SetChecked),
	rules.Slot("on_released", func(r *widget.RadioButton, slot func()) { r.Released.Connect(slot) }),
	rules.Slot("on_toggled", func(r *widget.RadioButton, slot func(bool)) { r.Toggled.Connect(slot) }),
)

// RadioButton creates a radio button. The "group" option makes it
// exclusive with the other buttons of a RadioGroup.
func RadioButton(text string, bag *rules.Bag) (*widget.RadioButton, error) {
	return build("radio_button", withPrimary(bag, "text", text), widget.NewRadioButton, radioButtonRules)
}

var spinBoxRules = styledRules[*widget.SpinBox]().Then(
	rules.Default(rules.Range("value_range", (*widget.SpinBox).SetRange), rules.Tuple(0, 1000)),
	rules.Default(rules.Attr("single_step", (*widget.SpinBox).SetSingleStep), 1),
	rules.Default(rules.Attr("value", (*widget.SpinBox).SetValue), 1),
	rules.Slot("on_value_changed", func(s *widget.SpinBox, slot func(int)) { s.ValueChanged.Connect(slot) }),
)

// SpinBox creates an integer spin box, by default over 0..1000 at 1.
func SpinBox(bag *rules.Bag) (*widget.SpinBox, error) {
	return build("spin_box", bag, widget.NewSpinBox, spinBoxRules)
}

var doubleSpinBoxRules = styledRules[*widget.DoubleSpinBox]().Then(
	rules.Default(rules.Range("value_range", (*widget.DoubleSpinBox).SetRange), rules.Tuple(0.0, 1000.0)),
	rules.Default(rules.Checked("decimals", (*widget.DoubleSpinBox).SetDecimals, "gte=0"), 3),
	rules.Default(rules.Attr("single_step", (*widget.DoubleSpinBox).SetSingleStep), 1.0),
	rules.Default(rules.Attr("value", (*widget.DoubleSpinBox).SetValue), 1.0),
	rules.Slot("on_value_changed", func(s *widget.DoubleSpinBox, slot func(float64)) { s.ValueChanged.Connect(slot) }),
)

// DoubleSpinBox creates a decimal spin box, by default over 0..1000 with
// three decimals.
func DoubleSpinBox(bag *rules.Bag) (*widget.DoubleSpinBox, error) {
	return build("double_spin_box", bag, widget.NewDoubleSpinBox, doubleSpinBoxRules)
}

var orientationNames = map[string]widget.Orientation{
	"horizontal": widget.Horizontal,
	"vertical":   widget.Vertical,
}

var sliderRules = styledRules[*widget.Slider]().Then(
	rules.Default(rules.Enum("orientation", orientationNames, (*widget.Slider).SetOrientation), widget.Horizontal),
	rules.Default(rules.Range("value_range", (*widget.Slider).SetRange), rules.Tuple(0, 100)),
	rules.Default(rules.Attr("single_step", (*widget.Slider).SetSingleStep), 1),
	rules.Default(rules.Attr("page_step", (*widget.Slider).SetPageStep), 10),
	rules.Default(rules.Attr("value", (*widget.Slider).SetValue), 0),
	rules.Slot("on_value_changed", func(s *widget.Slider, slot func(int)) { s.ValueChanged.Connect(slot) }),
)

// Slider creates a horizontal slider over 0..100 unless told otherwise.
func Slider(bag *rules.Bag) (*widget.Slider, error) {
	return build("slider", bag, widget.NewSlider, sliderRules)
}

var comboBoxRules = styledRules[*widget.ComboBox]().Then(
	rules.Icon[*widget.ComboBox](),
	rules.Constraint("items", comboItems, "items", "selected_item"),
	rules.Slot("on_index_changed", func(c *widget.ComboBox, slot func(int)) { c.CurrentIndexChanged.Connect(slot) }),
)

// comboItems adds the items and selects selected_item, or the first item.
func comboItems(c *widget.ComboBox, bag *rules.Bag) error {
	selected := ""
	if raw, ok := bag.Get("selected_item"); ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return uierrors.NewTypeError("selected_item", "must be of type string")
		}
		selected = s
	}
	index := 0
	if raw, ok := bag.Get("items"); ok && raw != nil {
		items, ok := raw.([]any)
		if !ok {
			strs, isStrings := raw.([]string)
			if !isStrings {
				return uierrors.NewValueError("items", "all items must be strings")
			}
			items = make([]any, len(strs))
			for i, s := range strs {
				items[i] = s
			}
		}
		for i, item := range items {
			text, ok := item.(string)
			if !ok {
				return uierrors.NewValueError("items", "all items must be strings")
			}
			c.AddItem(text)
			if text == selected {
				index = i
			}
		}
	}
	c.SetCurrentIndex(index)
	return nil
}

// ComboBox creates a drop down list.
func ComboBox(bag *rules.Bag) (*widget.ComboBox, error) {
	return build("combo_box", bag, widget.NewComboBox, comboBoxRules)
}

var tableRules = styledRules[*widget.Table]().Then(
	rules.Checked("row_count", (*widget.Table).SetRowCount, "gte=0"),
	rules.Checked("col_count", (*widget.Table).SetColumnCount, "gte=0"),
	rules.Attr("horizontal_labels", (*widget.Table).SetHorizontalHeaderLabels),
	rules.Attr("stretch_last_section", (*widget.Table).SetStretchLastSection),
	rules.Slot("on_item_changed", func(t *widget.Table, slot func(widget.TableItem)) { t.ItemChanged.Connect(slot) }),
)

// Table creates a table of text cells.
func Table(bag *rules.Bag) (*widget.Table, error) {
	return build("table", bag, widget.NewTable, tableRules)
}

func init() {
	register("button", buttonRules, func(bag *rules.Bag) (*widget.Button, error) { return Button("", bag) })
	register("tool_button", toolButtonRules, func(bag *rules.Bag) (*widget.ToolButton, error) { return ToolButton("", bag) })
	register("label", labelRules, func(bag *rules.Bag) (*widget.Label, error) { return Label("", bag) })
	register("line_edit", lineEditRules, func(bag *rules.Bag) (*widget.LineEdit, error) { return LineEdit("", bag) })
	register("text_edit", textEditRules, func(bag *rules.Bag) (*widget.TextEdit, error) { return TextEdit("", bag) })
	register("check_box", checkBoxRules, func(bag *rules.Bag) (*widget.CheckBox, error) { return CheckBox("", bag) })
	register("radio_button", radioButtonRules, func(bag *rules.Bag) (*widget.RadioButton, error) { return RadioButton("", bag) })
	register("spin_box", spinBoxRules, SpinBox)
	register("double_spin_box", doubleSpinBoxRules, DoubleSpinBox)
	register("slider", sliderRules, Slider)
	register("combo_box", comboBoxRules, ComboBox)
	register("table", tableRules, Table)
}
