package widget

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SpinBox edits an integer inside a range.
type SpinBox struct {
	Base
	focusState
	minimum    int
	maximum    int
	value      int
	singleStep int

	ValueChanged Signal[int]
}

// NewSpinBox creates a spin box with range 0..99.
func NewSpinBox() *SpinBox {
	return &SpinBox{Base: newBase(), maximum: 99, singleStep: 1}
}

// SetRange sets the bounds; a maximum below the minimum is raised to it.
// The value is clamped into the new range.
func (s *SpinBox) SetRange(minimum, maximum int) {
	s.minimum = minimum
	s.maximum = max(minimum, maximum)
	s.SetValue(s.value)
}

// Range returns the bounds.
func (s *SpinBox) Range() (int, int) { return s.minimum, s.maximum }

// SetValue clamps v into range and emits ValueChanged when it changes.
func (s *SpinBox) SetValue(v int) {
	v = min(max(v, s.minimum), s.maximum)
	if v == s.value {
		return
	}
	s.value = v
	s.ValueChanged.Emit(v)
}

// Value returns the value.
func (s *SpinBox) Value() int { return s.value }

// SetSingleStep sets the arrow key increment.
func (s *SpinBox) SetSingleStep(step int) { s.singleStep = step }

// SingleStep returns the arrow key increment.
func (s *SpinBox) SingleStep() int { return s.singleStep }

// StepBy moves the value by n single steps.
func (s *SpinBox) StepBy(n int) { s.SetValue(s.value + n*s.singleStep) }

// Update steps with the arrow keys while focused.
func (s *SpinBox) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && s.focused {
		s.StepBy(stepKey(key))
	}
	return nil
}

func (s *SpinBox) content() string {
	return focusMark(s.focused, "◂ "+strconv.Itoa(s.value)+" ▸")
}

// View renders the spin box.
func (s *SpinBox) View() string { return s.frame(s.content()) }

// SizeHint returns the natural size.
func (s *SpinBox) SizeHint() (int, int) { return s.hint(s.content()) }

// DoubleSpinBox edits a float rounded to a number of decimals.
type DoubleSpinBox struct {
	Base
	focusState
	minimum    float64
	maximum    float64
	value      float64
	singleStep float64
	decimals   int

	ValueChanged Signal[float64]
}

// NewDoubleSpinBox creates a spin box with range 0..99.99 and two decimals.
func NewDoubleSpinBox() *DoubleSpinBox {
	return &DoubleSpinBox{Base: newBase(), maximum: 99.99, singleStep: 1, decimals: 2}
}

// SetRange sets the bounds; a maximum below the minimum is raised to it.
func (d *DoubleSpinBox) SetRange(minimum, maximum float64) {
	d.minimum = d.round(minimum)
	d.maximum = d.round(math.Max(minimum, maximum))
	d.SetValue(d.value)
}

// Range returns the bounds.
func (d *DoubleSpinBox) Range() (float64, float64) { return d.minimum, d.maximum }

// SetDecimals sets the precision and rounds the range and value.
func (d *DoubleSpinBox) SetDecimals(n int) {
	d.decimals = n
	d.minimum = d.round(d.minimum)
	d.maximum = d.round(d.maximum)
	d.SetValue(d.value)
}

// Decimals returns the precision.
func (d *DoubleSpinBox) Decimals() int { return d.decimals }

// SetValue rounds and clamps v and emits ValueChanged when it changes.
func (d *DoubleSpinBox) SetValue(v float64) {
	v = d.round(math.Min(math.Max(v, d.minimum), d.maximum))
	if v == d.value {
		return
	}
	d.value = v
	d.ValueChanged.Emit(v)
}

// Value returns the value.
func (d *DoubleSpinBox) Value() float64 { return d.value }

// SetSingleStep sets the arrow key increment.
func (d *DoubleSpinBox) SetSingleStep(step float64) { d.singleStep = step }

// SingleStep returns the arrow key increment.
func (d *DoubleSpinBox) SingleStep() float64 { return d.singleStep }

// StepBy moves the value by n single steps.
func (d *DoubleSpinBox) StepBy(n int) { d.SetValue(d.value + float64(n)*d.singleStep) }

// Update steps with the arrow keys while focused.
func (d *DoubleSpinBox) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && d.focused {
		d.StepBy(stepKey(key))
	}
	return nil
}

func (d *DoubleSpinBox) round(v float64) float64 {
	scale := math.Pow(10, float64(d.decimals))
	return math.Round(v*scale) / scale
}

func (d *DoubleSpinBox) content() string {
	return focusMark(d.focused, "◂ "+strconv.FormatFloat(d.value, 'f', d.decimals, 64)+" ▸")
}

// View renders the spin box.
func (d *DoubleSpinBox) View() string { return d.frame(d.content()) }

// SizeHint returns the natural size.
func (d *DoubleSpinBox) SizeHint() (int, int) { return d.hint(d.content()) }

// Orientation is the direction of sliders and boxes.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Slider picks an integer by position along a track.
type Slider struct {
	Base
	focusState
	orientation Orientation
	minimum     int
	maximum     int
	value       int
	singleStep  int
	pageStep    int

	ValueChanged Signal[int]
}

// NewSlider creates a vertical slider with range 0..99.
func NewSlider() *Slider {
	return &Slider{Base: newBase(), orientation: Vertical, maximum: 99, singleStep: 1, pageStep: 10}
}

// SetOrientation sets the track direction.
func (s *Slider) SetOrientation(o Orientation) { s.orientation = o }

// Orientation returns the track direction.
func (s *Slider) Orientation() Orientation { return s.orientation }

// SetRange sets the bounds; a maximum below the minimum is raised to it.
func (s *Slider) SetRange(minimum, maximum int) {
	s.minimum = minimum
	s.maximum = max(minimum, maximum)
	s.SetValue(s.value)
}

// Range returns the bounds.
func (s *Slider) Range() (int, int) { return s.minimum, s.maximum }

// SetValue clamps v and emits ValueChanged when it changes.
func (s *Slider) SetValue(v int) {
	v = min(max(v, s.minimum), s.maximum)
	if v == s.value {
		return
	}
	s.value = v
	s.ValueChanged.Emit(v)
}

// Value returns the value.
func (s *Slider) Value() int { return s.value }

// SetSingleStep sets the arrow key increment.
func (s *Slider) SetSingleStep(step int) { s.singleStep = step }

// SingleStep returns the arrow key increment.
func (s *Slider) SingleStep() int { return s.singleStep }

// SetPageStep sets the page key increment.
func (s *Slider) SetPageStep(step int) { s.pageStep = step }

// PageStep returns the page key increment.
func (s *Slider) PageStep() int { return s.pageStep }

// Update moves the handle with arrow and page keys while focused.
func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return nil
	}
	switch key.Type {
	case tea.KeyPgUp:
		s.SetValue(s.value + s.pageStep)
	case tea.KeyPgDown:
		s.SetValue(s.value - s.pageStep)
	case tea.KeyHome:
		s.SetValue(s.minimum)
	case tea.KeyEnd:
		s.SetValue(s.maximum)
	default:
		s.SetValue(s.value + stepKey(key)*s.singleStep)
	}
	return nil
}

func (s *Slider) track() int {
	w, h := s.Size()
	length := w
	if s.orientation == Vertical {
		length = h
	}
	if length <= 0 {
		length = 20
		if s.orientation == Vertical {
			length = 5
		}
	}
	return length
}

func (s *Slider) content() string {
	length := s.track()
	pos := 0
	if span := s.maximum - s.minimum; span > 0 && length > 1 {
		pos = (s.value - s.minimum) * (length - 1) / span
	}
	handle := focusMark(s.focused, "●")
	if s.orientation == Vertical {
		cells := make([]string, length)
		for i := range cells {
			// maximum at the top
			switch idx := length - 1 - i; {
			case idx == pos:
				cells[i] = handle
			case idx < pos:
				cells[i] = "┃"
			default:
				cells[i] = "│"
			}
		}
		return strings.Join(cells, "\n")
	}
	return strings.Repeat("━", pos) + handle + strings.Repeat("─", length-1-pos)
}

// View renders the slider.
func (s *Slider) View() string { return s.frame(s.content()) }

// SizeHint returns the natural size.
func (s *Slider) SizeHint() (int, int) { return s.hint(s.content()) }

func stepKey(key tea.KeyMsg) int {
	switch key.String() {
	case "up", "right", "+", "k", "l":
		return 1
	case "down", "left", "-", "j", "h":
		return -1
	}
	return 0
}
