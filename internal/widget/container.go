package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
)

// panel is the shared body of widgets that own a layout.
type panel struct {
	Base
	layout ui.Renderable
}

// SetLayout installs the layout that arranges the children.
func (p *panel) SetLayout(layout ui.Renderable) { p.layout = layout }

// Layout returns the installed layout.
func (p *panel) Layout() ui.Renderable { return p.layout }

// Children returns the layout.
func (p *panel) Children() []ui.Renderable {
	if p.layout == nil {
		return nil
	}
	return []ui.Renderable{p.layout}
}

func (p *panel) body() ui.Renderable {
	if p.layout == nil {
		return components.NewText("")
	}
	return p.layout
}

func (p *panel) render(c *components.Container) string {
	w, h := p.Size()
	if w > 0 {
		w = p.limits.ClampWidth(w)
	}
	if h > 0 {
		h = p.limits.ClampHeight(h)
	}
	c.SetSize(w, h)
	c.SetStyle(p.style)
	return c.View()
}

func (p *panel) hintWith(border int, title string) (int, int) {
	w, h := 0, 0
	if p.layout != nil {
		w, h = ui.Size(p.layout)
	}
	w = max(w+border, lipgloss.Width(title)+4)
	return p.limits.ClampWidth(w), p.limits.ClampHeight(h + border)
}

// GroupBox is a titled frame around a layout.
type GroupBox struct {
	panel
	title string
}

// NewGroupBox creates an empty group box.
func NewGroupBox() *GroupBox {
	return &GroupBox{panel: panel{Base: newBase()}}
}

// SetTitle sets the title drawn into the border.
func (g *GroupBox) SetTitle(title string) { g.title = title }

// Title returns the title.
func (g *GroupBox) Title() string { return g.title }

// View renders the group box.
func (g *GroupBox) View() string {
	return g.render(components.NewContainer(g.body()).WithBorder(components.BorderVariantRounded).WithTitle(g.title))
}

// SizeHint returns the natural size.
func (g *GroupBox) SizeHint() (int, int) { return g.hintWith(2, g.title) }

// Frame is a plain bordered box around a layout.
type Frame struct {
	panel
	border components.BorderVariant
}

// NewFrame creates a frame with a normal border.
func NewFrame() *Frame {
	return &Frame{panel: panel{Base: newBase()}, border: components.BorderVariantNormal}
}

// SetFrameShape sets the border variant; BorderVariantNone hides it.
func (f *Frame) SetFrameShape(border components.BorderVariant) { f.border = border }

// View renders the frame.
func (f *Frame) View() string {
	c := components.NewContainer(f.body())
	if f.border != components.BorderVariantNone {
		c.WithBorder(f.border)
	}
	return f.render(c)
}

// SizeHint returns the natural size.
func (f *Frame) SizeHint() (int, int) {
	if f.border == components.BorderVariantNone {
		return f.hintWith(0, "")
	}
	return f.hintWith(2, "")
}
