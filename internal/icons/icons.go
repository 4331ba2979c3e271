// Package icons resolves prefixed icon names to catalog paths and prepares
// icon images for terminal display.
package icons

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // catalog icons are PNG
	"io/fs"
	"strings"

	"golang.org/x/image/draw"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

const (
	MaterialPrefix = "ma-"
	Icons8Prefix   = "i8-"
)

var prefixes = []struct {
	prefix string
	format string
}{
	{MaterialPrefix, "material-icons/%s.png"},
	{Icons8Prefix, "icons8-icons/%s.svg"},
}

// Resolve maps an icon name to its path inside the catalog.
func Resolve(name string) (string, error) {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return fmt.Sprintf(p.format, name), nil
		}
	}
	return "", uierrors.NewValueError("icon", "invalid icon name %q: must start with %q or %q", name, MaterialPrefix, Icons8Prefix)
}

// Options tune how an icon is loaded.
type Options struct {
	// Size bounds the icon; aspect ratio is kept. Zero keeps the source size.
	Width  int
	Height int
	// Color tints every opaque pixel, keeping the icon's alpha.
	Color []int
}

// Catalog loads icons from a file system laid out like Resolve's paths.
type Catalog struct {
	fsys fs.FS
}

// NewCatalog creates a catalog over fsys.
func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Load resolves, decodes, tints and scales an icon.
func (c *Catalog) Load(name string, opts Options) (image.Image, error) {
	path, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	var tint *color.RGBA
	if opts.Color != nil {
		rgba, err := ParseRGBA(opts.Color)
		if err != nil {
			return nil, err
		}
		tint = &rgba
	}
	if strings.HasSuffix(path, ".svg") {
		return nil, uierrors.NewValueError("icon", "%s: vector icons cannot be rasterized in a terminal", name)
	}

	f, err := c.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", name, err)
	}
	if tint != nil {
		img = Tint(img, *tint)
	}
	if opts.Width > 0 && opts.Height > 0 {
		img = Scale(img, opts.Width, opts.Height)
	}
	return img, nil
}

// ParseRGBA validates a four component colour.
func ParseRGBA(values []int) (color.RGBA, error) {
	if len(values) != 4 {
		return color.RGBA{}, uierrors.NewValueError("color", "must be a tuple of 4 integers (RGBA)")
	}
	for _, v := range values {
		if v < 0 || v > 255 {
			return color.RGBA{}, uierrors.NewValueError("color", "components must be integers between 0 and 255")
		}
	}
	return color.RGBA{R: uint8(values[0]), G: uint8(values[1]), B: uint8(values[2]), A: uint8(values[3])}, nil
}

// Tint paints c through the alpha of src.
func Tint(src image.Image, c color.RGBA) image.Image {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, src, bounds.Min, draw.Src)
	return dst
}

// Scale fits src into width x height keeping its aspect ratio.
func Scale(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return src
	}
	w, h := FitSize(bounds.Dx(), bounds.Dy(), width, height)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// FitSize returns the largest size with the aspect ratio of srcW x srcH that
// fits in maxW x maxH.
func FitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW*maxH > srcH*maxW {
		return maxW, max(1, srcH*maxW/srcW)
	}
	return max(1, srcW*maxH/srcH), maxH
}
