package layout

import (
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// FormRow is a label and its field. The label is a string or a
// *widget.Label.
type FormRow struct {
	Label any
	Field ui.Renderable
}

// Row pairs a label with a field.
func Row(label any, field ui.Renderable) FormRow {
	return FormRow{Label: label, Field: field}
}

// FormProps configure a form. LabelAlign defaults to right alignment.
// FreeLabelWidth keeps every label at its natural width instead of the
// shared one.
type FormProps struct {
	Props
	LabelAlign     components.Alignment
	FreeLabelWidth bool
}

// FormLayout is a column of label and field rows.
type FormLayout struct {
	*Box
	labels []*widget.Label
	fields []ui.Renderable
}

// RowCount returns the number of rows.
func (f *FormLayout) RowCount() int { return len(f.labels) }

// LabelAt returns the label of row i.
func (f *FormLayout) LabelAt(i int) *widget.Label { return f.labels[i] }

// FieldAt returns the field of row i.
func (f *FormLayout) FieldAt(i int) ui.Renderable { return f.fields[i] }

// Form builds a form from label and field rows. Labels share the width of
// the widest label plus a tenth unless props.FreeLabelWidth is set.
func Form(props FormProps, rows ...FormRow) (*FormLayout, error) {
	box := NewVBox()
	if err := props.apply(box, components.AlignNone); err != nil {
		return nil, err
	}
	align := props.LabelAlign
	if align == components.AlignNone {
		align = components.AlignRight
	}
	form := &FormLayout{Box: box}
	for _, row := range rows {
		var label *widget.Label
		switch v := row.Label.(type) {
		case string:
			label = widget.NewLabel()
			label.SetText(v)
		case *widget.Label:
			label = v
		default:
			return nil, uierrors.NewTypeError("label", "label must be either a string or a label")
		}
		label.SetAlignment(align)

		line := NewHBox()
		line.SetSpacing(max(props.Spacing, 1))
		line.AddWidget(label, 0)
		if row.Field != nil {
			line.AddWidget(row.Field, 1)
		}
		box.AddLayout(line, 0)
		form.labels = append(form.labels, label)
		form.fields = append(form.fields, row.Field)
	}
	if !props.FreeLabelWidth {
		uniformLabelWidth(form.labels)
	}
	return form, nil
}

func uniformLabelWidth(labels []*widget.Label) {
	widest := 0
	for _, l := range labels {
		w, _ := l.SizeHint()
		widest = max(widest, w)
	}
	widest = int(float64(widest) * 1.1)
	for _, l := range labels {
		l.SetFixedWidth(widest)
	}
}
