// Package imageview shows an image in the terminal with zoom and pan.
//
// Each cell shows two vertically stacked pixels of the viewport, so a view
// of w×h cells covers w×2h viewport pixels. Zoom is the number of viewport
// pixels per image pixel.
package imageview

import (
	"image"
	"image/color"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
)

const (
	// ZoomStep is the factor of one wheel notch.
	ZoomStep = 1.25
	// ZoomOutFactor is applied by ZoomOut.
	ZoomOutFactor = 0.2
)

// Widget displays an image.
type Widget struct {
	img     image.Image
	zoom    float64
	offsetX float64
	offsetY float64
	width   int
	height  int
	focused bool
	panning bool
	lastX   int
	lastY   int
	originX int
	originY int
}

// New creates an empty viewer at zoom 1.
func New() *Widget { return &Widget{zoom: 1} }

// SetImage shows img. A nil image clears the view. Zoom and position are
// kept.
func (w *Widget) SetImage(img image.Image) {
	if img != nil && w.img == nil {
		b := img.Bounds()
		w.offsetX, w.offsetY = float64(b.Min.X), float64(b.Min.Y)
	}
	w.img = img
}

// Image returns the shown image, or nil.
func (w *Widget) Image() image.Image { return w.img }

// Zoom returns the viewport pixels per image pixel.
func (w *Widget) Zoom() float64 { return w.zoom }

// Offset returns the image coordinate at the top left of the viewport.
func (w *Widget) Offset() (float64, float64) { return w.offsetX, w.offsetY }

// SetOrigin tells the view where its top left cell is on screen so mouse
// events map to viewport pixels.
func (w *Widget) SetOrigin(x, y int) { w.originX, w.originY = x, y }

func (w *Widget) viewport() (int, int) {
	if w.width > 0 && w.height > 0 {
		return w.width, w.height * 2
	}
	if w.img == nil {
		return 0, 0
	}
	b := w.img.Bounds()
	return int(math.Ceil(float64(b.Dx()) * w.zoom)), int(math.Ceil(float64(b.Dy()) * w.zoom))
}

// ImagePoint returns the image coordinate under viewport pixel (x, y).
func (w *Widget) ImagePoint(x, y int) (float64, float64) {
	return w.offsetX + float64(x)/w.zoom, w.offsetY + float64(y)/w.zoom
}

// ZoomAt scales by factor keeping the image point under viewport pixel
// (x, y) in place.
func (w *Widget) ZoomAt(factor float64, x, y int) {
	if factor <= 0 {
		return
	}
	ix, iy := w.ImagePoint(x, y)
	w.zoom *= factor
	w.offsetX = ix - float64(x)/w.zoom
	w.offsetY = iy - float64(y)/w.zoom
}

func (w *Widget) zoomCentered(factor float64) {
	vw, vh := w.viewport()
	w.ZoomAt(factor, vw/2, vh/2)
}

// ZoomIn zooms in by one wheel notch around the view centre.
func (w *Widget) ZoomIn() { w.zoomCentered(ZoomStep) }

// ZoomOut shrinks the image to a fifth around the view centre.
func (w *Widget) ZoomOut() { w.zoomCentered(ZoomOutFactor) }

// FitToImage scales the image to fit the view keeping its aspect ratio and
// centres it.
func (w *Widget) FitToImage() {
	if w.img == nil {
		return
	}
	vw, vh := w.viewport()
	b := w.img.Bounds()
	if vw <= 0 || vh <= 0 || b.Empty() {
		return
	}
	w.zoom = math.Min(float64(vw)/float64(b.Dx()), float64(vh)/float64(b.Dy()))
	w.offsetX = float64(b.Min.X) - (float64(vw)/w.zoom-float64(b.Dx()))/2
	w.offsetY = float64(b.Min.Y) - (float64(vh)/w.zoom-float64(b.Dy()))/2
}

// Pan moves the image by dx, dy viewport pixels.
func (w *Widget) Pan(dx, dy int) {
	w.offsetX -= float64(dx) / w.zoom
	w.offsetY -= float64(dy) / w.zoom
}

// Frame renders the viewport pixels. Areas outside the image are black.
func (w *Widget) Frame() *image.RGBA {
	vw, vh := w.viewport()
	dst := image.NewRGBA(image.Rect(0, 0, vw, vh))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if w.img == nil || vw == 0 || vh == 0 {
		return dst
	}
	s2d := f64.Aff3{
		w.zoom, 0, -w.offsetX * w.zoom,
		0, w.zoom, -w.offsetY * w.zoom,
	}
	var interp draw.Transformer = draw.NearestNeighbor
	if w.zoom < 1 {
		interp = draw.ApproxBiLinear
	}
	interp.Transform(dst, s2d, w.img, w.img.Bounds(), draw.Over, nil)
	return dst
}

// Update zooms on the wheel, pans while the middle button is held and
// takes + - f keys while focused.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		x, y := msg.X-w.originX, (msg.Y-w.originY)*2
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			w.ZoomAt(ZoomStep, x, y)
		case msg.Button == tea.MouseButtonWheelDown:
			w.ZoomAt(1/ZoomStep, x, y)
		case msg.Button == tea.MouseButtonMiddle && msg.Action == tea.MouseActionPress:
			w.panning = true
			w.lastX, w.lastY = x, y
		case msg.Action == tea.MouseActionMotion && w.panning:
			w.Pan(x-w.lastX, y-w.lastY)
			w.lastX, w.lastY = x, y
		case msg.Action == tea.MouseActionRelease:
			w.panning = false
		}
	case tea.KeyMsg:
		if !w.focused {
			return nil
		}
		switch msg.String() {
		case "+", "=":
			w.ZoomIn()
		case "-":
			w.zoomCentered(1 / ZoomStep)
		case "f":
			w.FitToImage()
		}
	}
	return nil
}

// Focus gives the view keyboard focus.
func (w *Widget) Focus() { w.focused = true }

// Blur removes keyboard focus.
func (w *Widget) Blur() { w.focused = false }

// Focused reports whether the view has keyboard focus.
func (w *Widget) Focused() bool { return w.focused }

// SetSize sets the allocated size in cells.
func (w *Widget) SetSize(width, height int) { w.width, w.height = width, height }

// SizeHint returns the image size in cells at the current zoom.
func (w *Widget) SizeHint() (int, int) {
	if w.img == nil {
		return 0, 0
	}
	b := w.img.Bounds()
	return int(math.Ceil(float64(b.Dx()) * w.zoom)), int(math.Ceil(float64(b.Dy()) * w.zoom / 2))
}

// View renders the viewport as half block cells.
func (w *Widget) View() string {
	return icons.HalfBlock(w.Frame())
}
