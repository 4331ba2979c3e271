package dialogs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// DefaultColor is the initial colour of a colour dialog.
var DefaultColor = color.RGBA{R: 77, G: 77, B: 77, A: 255}

// ParseColor builds a colour from 3 or 4 components in 0..255. Alpha
// defaults to opaque.
func ParseColor(values []int) (color.RGBA, error) {
	for _, c := range values {
		if c < 0 || c > 255 {
			return color.RGBA{}, uierrors.NewValueError("color", "color components must be integers between 0 and 255")
		}
	}
	switch len(values) {
	case 3:
		return color.RGBA{R: uint8(values[0]), G: uint8(values[1]), B: uint8(values[2]), A: 255}, nil
	case 4:
		return color.RGBA{R: uint8(values[0]), G: uint8(values[1]), B: uint8(values[2]), A: uint8(values[3])}, nil
	default:
		return color.RGBA{}, uierrors.NewValueError("color", "color tuple must have 3 or 4 elements")
	}
}

// ParseColorText reads "#rrggbb", "#rrggbbaa" or a comma separated list of
// 3 or 4 components.
func ParseColorText(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 && len(hex) != 8 {
			return color.RGBA{}, uierrors.NewValueError("color", "hex colour must have 6 or 8 digits")
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, uierrors.NewValueError("color", "invalid hex colour %q", s)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xff
		}
		return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return color.RGBA{}, uierrors.NewValueError("color", "color components must be integers between 0 and 255")
		}
		values = append(values, n)
	}
	return ParseColor(values)
}

// Hex formats c as "#rrggbb", adding the alpha byte when not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorMsg reports a closed colour dialog. Cancelling reports the initial
// colour.
type ColorMsg struct {
	ID    int
	Color color.RGBA
}

// ColorPicker asks for a colour as text and previews it.
type ColorPicker struct {
	id      int
	title   string
	initial color.RGBA
	input   textinput.Model
	problem string
	done    bool
	result  color.RGBA
	width   int
}

// NewColorPicker creates a colour dialog starting at initial.
func NewColorPicker(title string, initial color.RGBA) *ColorPicker {
	if title == "" {
		title = "Select Color"
	}
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "#rrggbb or r, g, b[, a]"
	input.SetValue(Hex(initial))
	input.CursorEnd()
	input.Focus()
	return &ColorPicker{id: nextID(), title: title, initial: initial, input: input, result: initial}
}

// ID identifies the dialog in its messages.
func (c *ColorPicker) ID() int { return c.id }

// Done reports whether the dialog has closed.
func (c *ColorPicker) Done() bool { return c.done }

// Color returns the chosen colour, or the initial one when cancelled.
func (c *ColorPicker) Color() color.RGBA { return c.result }

// Problem returns why the last entry was refused.
func (c *ColorPicker) Problem() string { return c.problem }

// SetValue replaces the entered text.
func (c *ColorPicker) SetValue(value string) {
	c.input.SetValue(value)
	c.input.CursorEnd()
}

// Init starts the cursor blinking.
func (c *ColorPicker) Init() tea.Cmd { return textinput.Blink }

func (c *ColorPicker) finish(col color.RGBA) tea.Cmd {
	c.done = true
	c.result = col
	msg := ColorMsg{ID: c.id, Color: col}
	return func() tea.Msg { return msg }
}

// Update edits the colour text. Enter accepts a valid colour, esc cancels.
func (c *ColorPicker) Update(msg tea.Msg) tea.Cmd {
	if c.done {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, pickerKeys.Cancel):
			return c.finish(c.initial)
		case key.Matches(k, pickerKeys.Submit):
			col, err := ParseColorText(c.input.Value())
			if err != nil {
				c.problem = err.Error()
				return nil
			}
			return c.finish(col)
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.problem = ""
	return cmd
}

// SetSize sets the outer width.
func (c *ColorPicker) SetSize(width, _ int) {
	c.width = width
	c.input.Width = max(width-16, 10)
}

// View renders the entry next to a swatch of the current colour.
func (c *ColorPicker) View() string {
	ctx := components.DefaultContext()
	preview := c.initial
	if col, err := ParseColorText(c.input.Value()); err == nil {
		preview = col
	}
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(Hex(color.RGBA{R: preview.R, G: preview.G, B: preview.B, A: 255}))).Render("      ")
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Center, swatch, " ", c.input.View())}
	if c.problem != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Danger.Base).Render(c.problem))
	}
	lines = append(lines, ctx.Theme.Muted.Render("enter choose • esc cancel"))

	box := components.NewContainer(components.NewText(lipgloss.JoinVertical(lipgloss.Left, lines...))).
		WithBorder(components.BorderVariantRounded).
		WithPadding(components.CustomSpacing(1, 0, 1, 0)).
		WithTitle(c.title)
	if c.width > 0 {
		box.SetSize(c.width, 0)
	}
	return box.ViewWithContext(ctx)
}
