package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxpage"
)

func TestRender(t *testing.T) {
	buf := vxpage.NewBuffer(3, 2)
	vxpage.Print(buf.Window(), 0, 0, vxpage.Segment{
		Text:  "ab",
		Style: vxpage.Style{Background: vxpage.RGBColor(0xff, 0, 0)},
	})
	opts := DefaultOptions()
	img := Render(buf, opts)

	assert.Equal(t, image.Rect(0, 0, 3*CellWidth, 2*CellHeight), img.Bounds())
	// The background of a styled cell
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(0, 0))
	// An empty cell keeps the default background
	assert.Equal(t, opts.Background, img.RGBAAt(2*CellWidth, 0))
	assert.Equal(t, opts.Background, img.RGBAAt(0, CellHeight))

	// The glyph of "a" has foreground pixels
	var lit bool
	for y := 0; y < CellHeight; y += 1 {
		for x := 0; x < CellWidth; x += 1 {
			if img.RGBAAt(x, y) == opts.Foreground {
				lit = true
			}
		}
	}
	assert.True(t, lit)
}

func TestColors(t *testing.T) {
	opts := DefaultOptions()
	fg, bg := colors(vxpage.Style{Attribute: vxpage.AttrReverse}, opts)
	assert.Equal(t, opts.Background, fg)
	assert.Equal(t, opts.Foreground, bg)

	fg, _ = colors(vxpage.Style{
		Foreground: vxpage.RGBColor(200, 100, 0),
		Background: vxpage.RGBColor(0, 0, 0),
		Attribute:  vxpage.AttrDim,
	}, opts)
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 0xff}, fg)
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(1, 0, color.RGBA{G: 0xff, A: 0xff})
	dst := Scale(src, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), dst.Bounds())
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, dst.RGBAAt(5, 2))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
}

func TestEncode(t *testing.T) {
	img := Render(vxpage.NewBuffer(2, 1), DefaultOptions())

	var b bytes.Buffer
	require.NoError(t, EncodeSixel(&b, img))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("\x1bP")))

	b.Reset()
	require.NoError(t, EncodePNG(&b, img))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")))
}
