package border

import (
	"strings"

	"git.sr.ht/~rockorager/vxpage"
)

// Set is the characters a frame is drawn with
type Set struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomRight string
	BottomLeft  string
}

var (
	Rounded = Set{"─", "│", "╭", "╮", "╯", "╰"}
	Square  = Set{"─", "│", "┌", "┐", "┘", "└"}
	ASCII   = Set{"-", "|", "+", "+", "+", "+"}
)

// ParseSet returns the set named rounded, square or ascii
func ParseSet(name string) (Set, bool) {
	switch strings.ToLower(name) {
	case "rounded":
		return Rounded, true
	case "square":
		return Square, true
	case "ascii":
		return ASCII, true
	default:
		return Set{}, false
	}
}

func cell(s string, style vxpage.Style) vxpage.Cell {
	return vxpage.Cell{
		Character: vxpage.Character{Grapheme: s, Width: 1},
		Style:     style,
	}
}

// All draws a frame around win and returns the window inside it
func All(win vxpage.Window, set Set, style vxpage.Style) vxpage.Window {
	w, h := win.Size()
	if w < 2 || h < 2 {
		return win.New(0, 0, 0, 0)
	}
	win.SetCell(0, 0, cell(set.TopLeft, style))
	win.SetCell(0, h-1, cell(set.BottomLeft, style))
	win.SetCell(w-1, 0, cell(set.TopRight, style))
	win.SetCell(w-1, h-1, cell(set.BottomRight, style))
	for i := 1; i < (w - 1); i += 1 {
		win.SetCell(i, 0, cell(set.Horizontal, style))
		win.SetCell(i, h-1, cell(set.Horizontal, style))
	}
	for i := 1; i < (h - 1); i += 1 {
		win.SetCell(0, i, cell(set.Vertical, style))
		win.SetCell(w-1, i, cell(set.Vertical, style))
	}
	return win.New(1, 1, w-2, h-2)
}

// Left draws a vertical rule on the left edge of win and returns the window
// right of it
func Left(win vxpage.Window, set Set, style vxpage.Style) vxpage.Window {
	w, h := win.Size()
	for i := 0; i < h; i += 1 {
		win.SetCell(0, i, cell(set.Vertical, style))
	}
	return win.New(1, 0, w-1, h)
}

// Bottom draws a horizontal rule on the bottom edge of win and returns the
// window above it
func Bottom(win vxpage.Window, set Set, style vxpage.Style) vxpage.Window {
	w, h := win.Size()
	for i := 0; i < w; i += 1 {
		win.SetCell(i, h-1, cell(set.Horizontal, style))
	}
	return win.New(0, 0, w, h-1)
}
