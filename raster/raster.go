// Package raster draws cell buffers as images, for previewing pages of
// devices without a terminal
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mattn/go-sixel"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"git.sr.ht/~rockorager/vxpage"
)

const (
	// CellWidth is the width of a cell, in pixels
	CellWidth = 7
	// CellHeight is the height of a cell, in pixels
	CellHeight = 13
)

// Options are the colors of cells with default colors
type Options struct {
	Foreground color.RGBA
	Background color.RGBA
}

// DefaultOptions draws light text on a black background
func DefaultOptions() Options {
	return Options{
		Foreground: color.RGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
		Background: color.RGBA{A: 0xff},
	}
}

// Render draws each cell of buf as a glyph of a 7x13 bitmap font
func Render(buf *vxpage.Buffer, opts Options) *image.RGBA {
	cols, rows := buf.Size()
	img := image.NewRGBA(image.Rect(0, 0, cols*CellWidth, rows*CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 1 {
			cell := buf.Cell(col, row)
			if cell.Grapheme == "" {
				continue
			}
			fg, bg := colors(cell.Style, opts)

			width := cell.Width
			if width < 1 {
				width = 1
			}
			x, y := col*CellWidth, row*CellHeight
			box := image.Rect(x, y, x+width*CellWidth, y+CellHeight)
			draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Src)
			if cell.Attribute.Has(vxpage.AttrInvisible) {
				continue
			}

			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, y+ascent),
			}
			d.DrawString(cell.Grapheme)
			if cell.Attribute.Has(vxpage.AttrBold) {
				d.Dot = fixed.P(x+1, y+ascent)
				d.DrawString(cell.Grapheme)
			}
			if cell.UnderlineStyle != vxpage.UnderlineOff {
				line := image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y)
				draw.Draw(img, line, image.NewUniform(fg), image.Point{}, draw.Src)
			}
			if cell.Attribute.Has(vxpage.AttrStrikethrough) {
				mid := y + CellHeight/2
				line := image.Rect(box.Min.X, mid, box.Max.X, mid+1)
				draw.Draw(img, line, image.NewUniform(fg), image.Point{}, draw.Src)
			}
		}
	}
	return img
}

// colors returns the foreground and background colors of a cell
func colors(style vxpage.Style, opts Options) (color.RGBA, color.RGBA) {
	fg := style.Foreground.RGBA(opts.Foreground)
	bg := style.Background.RGBA(opts.Background)
	if style.Attribute.Has(vxpage.AttrReverse) {
		fg, bg = bg, fg
	}
	if style.Attribute.Has(vxpage.AttrDim) {
		fg = color.RGBA{
			R: uint8((int(fg.R) + int(bg.R)) / 2),
			G: uint8((int(fg.G) + int(bg.G)) / 2),
			B: uint8((int(fg.B) + int(bg.B)) / 2),
			A: 0xff,
		}
	}
	return fg, bg
}

// Scale returns img scaled up by factor
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Over, nil)
	return dst
}

// EncodeSixel writes img as a sixel sequence
func EncodeSixel(w io.Writer, img image.Image) error {
	return sixel.NewEncoder(w).Encode(img)
}

// EncodePNG writes img as a PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
