// Package widget is the terminal widget toolkit the factories configure.
//
// Widgets are plain structs with Qt-like setters. They render through
// lipgloss, wrap bubbles models for text entry and tables, and publish their
// events through typed signals. Interactive widgets receive bubbletea
// messages through Update; the owning window decides which one is focused.
package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
)

// Base holds the properties every widget shares.
type Base struct {
	objectName      string
	styleSheet      string
	style           lipgloss.Style
	toolTip         string
	toolTipDuration int
	shortcut        string
	icon            string
	iconWidth       int
	iconHeight      int
	limits          ui.Limits
	width           int
	height          int
	hidden          bool
}

func newBase() Base {
	return Base{style: lipgloss.NewStyle(), toolTipDuration: -1, limits: ui.NoLimits()}
}

// SetObjectName sets the name used to find the widget.
func (b *Base) SetObjectName(name string) { b.objectName = name }

// ObjectName returns the object name.
func (b *Base) ObjectName() string { return b.objectName }

// SetStyleSheet parses css and uses it for rendering.
func (b *Base) SetStyleSheet(css string) {
	b.styleSheet = css
	b.style = ParseStyleSheet(css)
}

// StyleSheet returns the raw style sheet.
func (b *Base) StyleSheet() string { return b.styleSheet }

// SetToolTip sets the tool tip.
func (b *Base) SetToolTip(tip string) { b.toolTip = tip }

// ToolTip returns the tool tip.
func (b *Base) ToolTip() string { return b.toolTip }

// SetToolTipDuration sets how long the tool tip stays visible in
// milliseconds; -1 means until focus moves.
func (b *Base) SetToolTipDuration(ms int) { b.toolTipDuration = ms }

// ToolTipDuration returns the tool tip duration in milliseconds.
func (b *Base) ToolTipDuration() int { return b.toolTipDuration }

// SetShortcut sets the key binding, written the way bubbletea prints keys
// ("ctrl+s", "alt+enter").
func (b *Base) SetShortcut(shortcut string) { b.shortcut = normalizeKey(shortcut) }

// Shortcut returns the key binding.
func (b *Base) Shortcut() string { return b.shortcut }

// SetIcon sets the icon name.
func (b *Base) SetIcon(name string) { b.icon = name }

// Icon returns the icon name.
func (b *Base) Icon() string { return b.icon }

// SetIconSize sets the icon size in pixels.
func (b *Base) SetIconSize(width, height int) {
	b.iconWidth = width
	b.iconHeight = height
}

// IconSize returns the icon size in pixels.
func (b *Base) IconSize() (int, int) { return b.iconWidth, b.iconHeight }

// SetMinimumWidth sets the minimum width.
func (b *Base) SetMinimumWidth(w int) { b.limits.MinWidth = w }

// SetMaximumWidth sets the maximum width.
func (b *Base) SetMaximumWidth(w int) { b.limits.MaxWidth = w }

// SetMinimumHeight sets the minimum height.
func (b *Base) SetMinimumHeight(h int) { b.limits.MinHeight = h }

// SetMaximumHeight sets the maximum height.
func (b *Base) SetMaximumHeight(h int) { b.limits.MaxHeight = h }

// SetFixedWidth pins both width limits to w.
func (b *Base) SetFixedWidth(w int) {
	b.limits.MinWidth = w
	b.limits.MaxWidth = w
}

// SetFixedHeight pins both height limits to h.
func (b *Base) SetFixedHeight(h int) {
	b.limits.MinHeight = h
	b.limits.MaxHeight = h
}

// Limits returns the size limits.
func (b *Base) Limits() ui.Limits { return b.limits }

// SetSize stores the size a layout allocated.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the allocated size.
func (b *Base) Size() (int, int) { return b.width, b.height }

// Show makes the widget visible.
func (b *Base) Show() { b.hidden = false }

// Hide excludes the widget from rendering.
func (b *Base) Hide() { b.hidden = true }

// IsVisible reports whether the widget renders.
func (b *Base) IsVisible() bool { return !b.hidden }

// MatchesShortcut reports whether key is the widget's shortcut.
func (b *Base) MatchesShortcut(key tea.KeyMsg) bool {
	return b.shortcut != "" && normalizeKey(key.String()) == b.shortcut
}

func (b *Base) glyph() string {
	return icons.Glyph(b.icon)
}

// frame renders content in the allocated size, clamped by the limits and
// decorated by the style sheet.
func (b *Base) frame(content string) string {
	style := b.style
	extraW := style.GetHorizontalBorderSize() + style.GetHorizontalMargins()
	extraH := style.GetVerticalBorderSize() + style.GetVerticalMargins()

	w := b.width
	if w <= 0 {
		w = lipgloss.Width(content) + style.GetHorizontalFrameSize()
	}
	w = b.limits.ClampWidth(w)
	style = style.Width(max(w-extraW, 0)).MaxWidth(w)

	h := b.height
	if h <= 0 {
		h = lipgloss.Height(content) + style.GetVerticalFrameSize()
	}
	h = b.limits.ClampHeight(h)
	style = style.Height(max(h-extraH, 0)).MaxHeight(h)

	return style.Render(content)
}

// hint returns the natural size of content once framed.
func (b *Base) hint(content string) (int, int) {
	w := lipgloss.Width(content) + b.style.GetHorizontalFrameSize()
	h := lipgloss.Height(content) + b.style.GetVerticalFrameSize()
	return b.limits.ClampWidth(w), b.limits.ClampHeight(h)
}

// focusState gives simple widgets keyboard focus.
type focusState struct {
	focused bool
}

// Focus gives the widget keyboard focus.
func (f *focusState) Focus() { f.focused = true }

// Blur removes keyboard focus.
func (f *focusState) Blur() { f.focused = false }

// Focused reports whether the widget has keyboard focus.
func (f *focusState) Focused() bool { return f.focused }

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "")
}

func isActivate(key tea.KeyMsg) bool {
	return key.Type == tea.KeyEnter || key.Type == tea.KeySpace
}

var focusStyle = lipgloss.NewStyle().Reverse(true)

func focusMark(focused bool, s string) string {
	if focused {
		return focusStyle.Render(s)
	}
	return s
}
