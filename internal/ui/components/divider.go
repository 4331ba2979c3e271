package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a sunken separator line.
type Divider struct {
	BaseComponent
	char   string
	width  int
	height int
}

// HorizontalDivider creates a horizontal line; width 0 means 40 cells until
// a parent layout sizes it.
func HorizontalDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), char: "─", height: 1}
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = 40
	}
	line := strings.Repeat(d.char, width)
	lines := make([]string, max(d.height, 1))
	for i := range lines {
		lines[i] = line
	}
	style := d.ComputeStyle(ctx.Theme)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize stretches the divider across the width a layout allocated.
func (d *Divider) SetSize(width, _ int) {
	d.width = width
}

// WithChar sets the character used for the line.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithHeight sets a fixed line count.
func (d *Divider) WithHeight(height int) *Divider {
	d.height = height
	return d
}

// Width returns the current width.
func (d *Divider) Width() int {
	return d.width
}
