package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
)

// Container is a box around a single child with optional border, title,
// padding and margin. Group boxes, frames and windows are built on it.
type Container struct {
	BaseComponent
	child       ui.Renderable
	title       string
	border      BorderVariant
	bordered    bool
	borderColor lipgloss.TerminalColor
	padding     Spacing
	margin      Spacing
	width       int
	height      int
}

// NewContainer creates an unbordered container around child.
func NewContainer(child ui.Renderable) *Container {
	return &Container{BaseComponent: NewBaseComponent(), child: child}
}

// View renders the container with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child inside the decorations.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	if resizable, ok := c.child.(ui.Resizable); ok && (c.width > 0 || c.height > 0) {
		innerW, innerH := c.innerSize()
		resizable.SetSize(innerW, innerH)
	}
	content := Render(c.child, ctx)

	style := c.ComputeStyle(ctx.Theme)
	var border lipgloss.Border
	if c.bordered {
		border = BorderForVariant(ctx.Theme, c.border)
		style = style.Border(border)
		if c.borderColor != nil {
			style = style.BorderForeground(c.borderColor)
		}
	}
	style = c.padding.Apply(style)
	// lipgloss widths include padding but not borders or margins.
	if c.width > 0 {
		style = style.Width(max(c.width-c.borderSize()-c.margin.Horizontal(), 0))
	}
	if c.height > 0 {
		style = style.Height(max(c.height-c.borderSize()-c.margin.Vertical(), 0))
	}

	rendered := style.Render(content)
	if c.bordered && c.title != "" {
		rendered = injectTitle(rendered, border, c.title, ctx.Theme.Title)
	}
	if !c.margin.IsZero() {
		rendered = lipgloss.NewStyle().
			Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left).
			Render(rendered)
	}
	return rendered
}

func injectTitle(rendered string, border lipgloss.Border, title string, titleStyle lipgloss.Style) string {
	lines := strings.Split(rendered, "\n")
	width := lipgloss.Width(lines[0])
	label := " " + title + " "
	labelWidth := lipgloss.Width(label)
	// corner + one rule cell + label + corner
	if width < labelWidth+3 {
		return rendered
	}
	fill := strings.Repeat(border.Top, width-labelWidth-3)
	lines[0] = border.TopLeft + border.Top + titleStyle.Render(label) + fill + border.TopRight
	return strings.Join(lines, "\n")
}

func (c *Container) borderSize() int {
	if c.bordered {
		return 2
	}
	return 0
}

func (c *Container) innerSize() (int, int) {
	w, h := 0, 0
	if c.width > 0 {
		w = max(c.width-c.borderSize()-c.padding.Horizontal()-c.margin.Horizontal(), 0)
	}
	if c.height > 0 {
		h = max(c.height-c.borderSize()-c.padding.Vertical()-c.margin.Vertical(), 0)
	}
	return w, h
}

// SetSize fixes the outer size; zero keeps the natural size.
func (c *Container) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetChild replaces the child.
func (c *Container) SetChild(child ui.Renderable) {
	c.child = child
}

// Child returns the child.
func (c *Container) Child() ui.Renderable {
	return c.child
}

// WithBorder enables a border of the given variant.
func (c *Container) WithBorder(variant BorderVariant) *Container {
	c.border = variant
	c.bordered = true
	return c
}

// WithBorderColor sets the border colour.
func (c *Container) WithBorderColor(color lipgloss.TerminalColor) *Container {
	c.borderColor = color
	return c
}

// WithTitle sets the title drawn into the top border.
func (c *Container) WithTitle(title string) *Container {
	c.title = title
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// Title returns the border title.
func (c *Container) Title() string {
	return c.title
}
