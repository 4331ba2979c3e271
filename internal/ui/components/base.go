package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui"
)

// StyleFunc transforms a lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the raw style and theme appliers shared by every
// component. Embed it to get SetStyle/AddAppliers/ComputeStyle.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// Style returns the raw lipgloss style.
func (b *BaseComponent) Style() lipgloss.Style {
	return b.style
}

// SetAppliers replaces the theme appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends theme appliers without mutating a shared slice.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Spacing represents margins or padding in CSS box order: top, right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// CustomSpacing creates spacing from explicit left, top, right, bottom values,
// the argument order used by setContentsMargins-style calls.
func CustomSpacing(left, top, right, bottom int) Spacing {
	return Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// IsZero returns true if all sides are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top + bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Apply adds the spacing to style as padding.
func (s Spacing) Apply(style lipgloss.Style) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Alignment is a bit set of horizontal and vertical alignment flags.
type Alignment int

const (
	AlignLeft Alignment = 1 << iota
	AlignRight
	AlignHCenter
	AlignTop
	AlignBottom
	AlignVCenter

	AlignCenter     = AlignHCenter | AlignVCenter
	AlignNone       = Alignment(0)
	horizontalFlags = AlignLeft | AlignRight | AlignHCenter
	verticalFlags   = AlignTop | AlignBottom | AlignVCenter
)

// Horizontal returns the lipgloss position of the horizontal flags.
func (a Alignment) Horizontal() lipgloss.Position {
	switch {
	case a&AlignHCenter != 0:
		return lipgloss.Center
	case a&AlignRight != 0:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Vertical returns the lipgloss position of the vertical flags.
func (a Alignment) Vertical() lipgloss.Position {
	switch {
	case a&AlignVCenter != 0:
		return lipgloss.Center
	case a&AlignBottom != 0:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// HasHorizontal reports whether any horizontal flag is set.
func (a Alignment) HasHorizontal() bool {
	return a&horizontalFlags != 0
}

// HasVertical reports whether any vertical flag is set.
func (a Alignment) HasVertical() bool {
	return a&verticalFlags != 0
}

// RenderContext carries the theme through a render pass.
type RenderContext struct {
	Theme Theme
}

// DefaultContext returns a render context with the default theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// ContextualRenderable is a component that can render with an explicit context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render renders r with ctx when it supports contexts.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// AlignmentNames maps markup names to alignment flags.
var AlignmentNames = map[string]Alignment{
	"left":    AlignLeft,
	"right":   AlignRight,
	"hcenter": AlignHCenter,
	"top":     AlignTop,
	"bottom":  AlignBottom,
	"vcenter": AlignVCenter,
	"center":  AlignCenter,
}

// ParseAlignment reads flags joined by "|", such as "left|vcenter".
func ParseAlignment(s string) (Alignment, bool) {
	var align Alignment
	for _, part := range strings.Split(s, "|") {
		flag, ok := AlignmentNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return AlignNone, false
		}
		align |= flag
	}
	return align, true
}
