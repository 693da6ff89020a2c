package vxpage

// Window is a Window with an offset from an optional parent and a specified size.
// If parent is nil, the Canvas will be the parent and offsets will be relative
// to that.
type Window struct {
	Column int // col offset from parent
	Row    int // row offset from parent
	Width  int // width of the surface, in cols
	Height int // height of the surface, in rows
	Parent *Window
	// Canvas receives the cells of a root window. It is ignored when
	// Parent is set
	Canvas Canvas
}

// NewWindow returns a new Window. The x and y coordinates are an offset
// relative to the parent. The origin 0,0 represents the upper left.  The width
// and height can be set to 0 to have the window expand to fill it's parent. The
// Window cannot exist outside of it's parent's Window.
func NewWindow(parent *Window, col, row, cols, rows int) Window {
	return Window{
		Row:    row,
		Column: col,
		Width:  cols,
		Height: rows,
		Parent: parent,
	}
}

// New creates a new child Window with an offset relative to the parent
// window
func (win Window) New(col, row, cols, rows int) Window {
	return NewWindow(&win, col, row, cols, rows)
}

// Size returns the visible size of the Window in character cells.
func (win Window) Size() (width int, height int) {
	var (
		pCols int
		pRows int
	)
	switch {
	case win.Parent == nil:
		if win.Canvas == nil {
			return 0, 0
		}
		pCols, pRows = win.Canvas.Size()
	default:
		pCols, pRows = win.Parent.Size()
	}

	switch {
	case (win.Column + win.Width) > pCols:
		width = pCols - win.Column
	case win.Width <= 0:
		width = pCols - win.Column
	default:
		width = win.Width
	}
	switch {
	case (win.Row + win.Height) > pRows:
		height = pRows - win.Row
	case win.Height <= 0:
		height = pRows - win.Row
	default:
		height = win.Height
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// SetCell is used to place data at the given cell location.  Note that since
// the Window doesn't retain this data, if the location is outside of the
// visible area, it is simply discarded.
func (win Window) SetCell(col int, row int, cell Cell) {
	cols, rows := win.Size()
	if cols == 0 || rows == 0 {
		return
	}
	if col < 0 || row < 0 {
		return
	}
	if col >= cols {
		return
	}
	if row >= rows {
		return
	}
	switch {
	case win.Parent == nil:
		win.Canvas.SetCell(col+win.Column, row+win.Row, cell)
	default:
		win.Parent.SetCell(col+win.Column, row+win.Row, cell)
	}
}

// Fill completely fills the Window with the provided cell
func Fill(win Window, cell Cell) {
	cols, rows := win.Size()
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 1 {
			win.SetCell(col, row, cell)
		}
	}
}

// Clear fills the Window with spaces with the default colors
func Clear(win Window) {
	Fill(win, Cell{Character: Character{" ", 1}})
}

// Segment is a contiguous run of text sharing a Style
type Segment struct {
	Text  string
	Style Style
}

// Print prints segments of text on a single line of the Window starting at
// col, row. Text which overflows the width of the Window is discarded. Print
// returns the column after the last printed character
func Print(win Window, col int, row int, segs ...Segment) int {
	cols, _ := win.Size()
	for _, seg := range segs {
		for _, char := range Characters(seg.Text) {
			if col+char.Width > cols {
				return col
			}
			win.SetCell(col, row, Cell{
				Character: char,
				Style:     seg.Style,
			})
			col += char.Width
		}
	}
	return col
}
