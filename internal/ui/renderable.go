// Package ui holds the small contracts shared by every terminal element.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Unbounded is the maximum width or height a widget can be given.
const Unbounded = 16777215

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}

// Resizable elements accept the cell size a parent layout allocated to them.
// A zero dimension means "natural size".
type Resizable interface {
	Renderable
	SetSize(width, height int)
}

// Hinted elements report the size they would like when unconstrained.
type Hinted interface {
	SizeHint() (width, height int)
}

// Limits are the minimum and maximum cell sizes of a widget.
type Limits struct {
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
}

// NoLimits returns limits that do not constrain anything.
func NoLimits() Limits {
	return Limits{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// ClampWidth clamps w into the width limits.
func (l Limits) ClampWidth(w int) int {
	return min(max(w, l.MinWidth), l.MaxWidth)
}

// ClampHeight clamps h into the height limits.
func (l Limits) ClampHeight(h int) int {
	return min(max(h, l.MinHeight), l.MaxHeight)
}

// Bounded elements expose size limits to layouts.
type Bounded interface {
	Limits() Limits
}

// Parent elements own child elements.
type Parent interface {
	Children() []Renderable
}

// Focusable elements take keyboard input when focused.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Interactive elements react to bubbletea messages on the UI loop.
type Interactive interface {
	Update(msg tea.Msg) tea.Cmd
}

// Hideable elements can be excluded from rendering.
type Hideable interface {
	IsVisible() bool
}

// Size returns the natural size of r.
func Size(r Renderable) (int, int) {
	if hinted, ok := r.(Hinted); ok {
		return hinted.SizeHint()
	}
	return lipgloss.Size(r.View())
}

// Visible reports whether r should be rendered.
func Visible(r Renderable) bool {
	if h, ok := r.(Hideable); ok {
		return h.IsVisible()
	}
	return true
}

// Walk visits r and its descendants depth first. Returning false from fn
// skips the children of the visited element.
func Walk(r Renderable, fn func(Renderable) bool) {
	if r == nil {
		return
	}
	if !fn(r) {
		return
	}
	if parent, ok := r.(Parent); ok {
		for _, child := range parent.Children() {
			Walk(child, fn)
		}
	}
}

// Focusables returns the focusable descendants of r in tree order.
func Focusables(r Renderable) []Focusable {
	var out []Focusable
	Walk(r, func(node Renderable) bool {
		if !Visible(node) {
			return false
		}
		if f, ok := node.(Focusable); ok {
			out = append(out, f)
		}
		return true
	})
	return out
}
