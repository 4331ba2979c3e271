package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	align   Alignment
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if t.align.HasHorizontal() {
		style = style.Align(t.align.Horizontal())
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithAlign sets the text alignment inside its allocated width.
func (t *Text) WithAlign(align Alignment) *Text {
	t.align = align
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers replaces the theme appliers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates bold title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Bold())
}

// MutedText creates dimmed text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteNeutral))
}
