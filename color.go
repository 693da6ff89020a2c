package vxpage

import "image/color"

// Color is a terminal color. The zero value represents the default foreground
// or background color
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// Params returns the SGR parameters for the color, or an empty slice if the
// color is the default color
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// RGBA converts c to an image color. Default colors resolve to def. Indexed
// colors use the xterm 256 color palette
func (c Color) RGBA(def color.RGBA) color.RGBA {
	ps := c.Params()
	switch len(ps) {
	case 1:
		return xterm(ps[0])
	case 3:
		return color.RGBA{R: ps[0], G: ps[1], B: ps[2], A: 0xFF}
	default:
		return def
	}
}

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates a new Color based on the supplied 24-bit hex value
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}

var ansi16 = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0xCD, 0x00, 0x00, 0xFF},
	{0x00, 0xCD, 0x00, 0xFF},
	{0xCD, 0xCD, 0x00, 0xFF},
	{0x00, 0x00, 0xEE, 0xFF},
	{0xCD, 0x00, 0xCD, 0xFF},
	{0x00, 0xCD, 0xCD, 0xFF},
	{0xE5, 0xE5, 0xE5, 0xFF},
	{0x7F, 0x7F, 0x7F, 0xFF},
	{0xFF, 0x00, 0x00, 0xFF},
	{0x00, 0xFF, 0x00, 0xFF},
	{0xFF, 0xFF, 0x00, 0xFF},
	{0x5C, 0x5C, 0xFF, 0xFF},
	{0xFF, 0x00, 0xFF, 0xFF},
	{0x00, 0xFF, 0xFF, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

// xterm returns the xterm default palette entry for index i
func xterm(i uint8) color.RGBA {
	switch {
	case i < 16:
		return ansi16[i]
	case i < 232:
		i -= 16
		levels := [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}
		return color.RGBA{
			R: levels[i/36],
			G: levels[(i/6)%6],
			B: levels[i%6],
			A: 0xFF,
		}
	default:
		v := 8 + (i-232)*10
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}
}
