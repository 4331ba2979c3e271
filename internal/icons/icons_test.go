package icons

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ma-error-black", "material-icons/ma-error-black.png"},
		{"i8-calendar", "icons8-icons/i8-calendar.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRejectsUnknownPrefix(t *testing.T) {
	_, err := Resolve("xx-foo")
	require.ErrorIs(t, err, uierrors.ErrValue)
}

func TestParseRGBA(t *testing.T) {
	c, err := ParseRGBA([]int{255, 150, 0, 255})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 150, B: 0, A: 255}, c)

	_, err = ParseRGBA([]int{255, 0, 0})
	require.ErrorIs(t, err, uierrors.ErrValue)

	_, err = ParseRGBA([]int{256, 0, 0, 0})
	require.ErrorIs(t, err, uierrors.ErrValue)
}

func TestTintKeepsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{A: 0})

	out := Tint(src, color.RGBA{R: 255, A: 255}).(*image.NRGBA)

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, uint8(0), out.NRGBAAt(1, 0).A)
}

func TestFitSizeKeepsAspectRatio(t *testing.T) {
	w, h := FitSize(40, 20, 10, 10)
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)

	w, h = FitSize(20, 40, 10, 10)
	assert.Equal(t, 5, w)
	assert.Equal(t, 10, h)
}

func TestCatalogLoadScalesAndTints(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		for y := 0; y < 4; y++ {
			src.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	fsys := fstest.MapFS{"material-icons/ma-add-black.png": {Data: buf.Bytes()}}

	img, err := NewCatalog(fsys).Load("ma-add-black", Options{Width: 4, Height: 4, Color: []int{0, 200, 0, 255}})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	_, g, _, _ := img.At(1, 1).RGBA()
	assert.NotZero(t, g)
}

func TestCatalogLoadErrors(t *testing.T) {
	catalog := NewCatalog(fstest.MapFS{})

	_, err := catalog.Load("xx-foo", Options{})
	require.ErrorIs(t, err, uierrors.ErrValue)

	_, err = catalog.Load("ma-missing", Options{})
	require.Error(t, err)

	_, err = catalog.Load("ma-add", Options{Color: []int{1, 2}})
	require.ErrorIs(t, err, uierrors.ErrValue)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "✖", Glyph("ma-error-black"))
	assert.Equal(t, "•", Glyph("i8-unknown"))
	assert.Equal(t, "", Glyph("xx-foo"))
}

func TestHalfBlockRowsPerTwoPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	out := HalfBlock(img)

	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("\n"))+1)
	assert.Equal(t, "", HalfBlock(nil))
}
