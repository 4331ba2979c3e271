package widget

import (
	"image"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
)

// Label shows text or a picture.
type Label struct {
	Base
	text      string
	alignment components.Alignment
	pixmap    image.Image

	Clicked Notify
}

// NewLabel creates an empty left aligned label.
func NewLabel() *Label {
	return &Label{Base: newBase(), alignment: components.AlignLeft | components.AlignVCenter}
}

// SetText sets the text and clears any picture.
func (l *Label) SetText(text string) {
	l.text = text
	l.pixmap = nil
}

// Text returns the text.
func (l *Label) Text() string { return l.text }

// SetAlignment sets the alignment inside the allocated size.
func (l *Label) SetAlignment(align components.Alignment) { l.alignment = align }

// Alignment returns the alignment.
func (l *Label) Alignment() components.Alignment { return l.alignment }

// SetPixmap shows img instead of text.
func (l *Label) SetPixmap(img image.Image) { l.pixmap = img }

// Pixmap returns the picture, if any.
func (l *Label) Pixmap() image.Image { return l.pixmap }

// Click emits Clicked.
func (l *Label) Click() { l.Clicked.Emit() }

func (l *Label) content() string {
	if l.pixmap != nil {
		return icons.HalfBlock(l.pixmap)
	}
	return l.text
}

// View renders the label.
func (l *Label) View() string {
	content := l.content()
	cw, ch := lipgloss.Size(content)
	fw, fh := l.style.GetHorizontalFrameSize(), l.style.GetVerticalFrameSize()
	w, h := l.Size()
	if w <= 0 {
		w = cw + fw
	}
	if h <= 0 {
		h = ch + fh
	}
	w = l.limits.ClampWidth(w) - fw
	h = l.limits.ClampHeight(h) - fh
	content = lipgloss.Place(max(w, cw), max(h, ch), l.alignment.Horizontal(), l.alignment.Vertical(), content)
	return l.frame(content)
}

// SizeHint returns the natural size.
func (l *Label) SizeHint() (int, int) { return l.hint(l.content()) }
