package vxpage

import "strings"

// Canvas is anything cells can be drawn to
type Canvas interface {
	// SetCell places cell at col, row. Cells outside of the canvas are
	// discarded
	SetCell(col int, row int, cell Cell)
	// Size returns the size of the canvas in cells
	Size() (cols int, rows int)
}

// Buffer is an in-memory grid of cells. It is the drawing target pages are
// rendered to before being written out as text, ANSI or an image
type Buffer struct {
	cols  int
	rows  int
	cells []Cell
}

// NewBuffer returns a buffer of cols by rows blank cells
func NewBuffer(cols int, rows int) *Buffer {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Buffer{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

func (b *Buffer) Size() (cols int, rows int) {
	return b.cols, b.rows
}

// Set a cell at col, row. A wide character occupies the following cells,
// which are cleared
func (b *Buffer) SetCell(col int, row int, cell Cell) {
	if col < 0 || row < 0 {
		return
	}
	if col >= b.cols || row >= b.rows {
		return
	}
	b.cells[row*b.cols+col] = cell
	for i := 1; i < cell.Width && col+i < b.cols; i += 1 {
		b.cells[row*b.cols+col+i] = Cell{Style: cell.Style}
	}
}

// Cell returns the cell at col, row
func (b *Buffer) Cell(col int, row int) Cell {
	if col < 0 || row < 0 || col >= b.cols || row >= b.rows {
		return Cell{}
	}
	return b.cells[row*b.cols+col]
}

// Row returns the cells of a single row
func (b *Buffer) Row(row int) []Cell {
	if row < 0 || row >= b.rows {
		return nil
	}
	return b.cells[row*b.cols : (row+1)*b.cols]
}

// Window returns a Window covering the whole buffer
func (b *Buffer) Window() Window {
	return Window{
		Width:  b.cols,
		Height: b.rows,
		Canvas: b,
	}
}

// String returns the text content of the buffer, one line per row with
// trailing blanks trimmed. Unset cells print as spaces
func (b *Buffer) String() string {
	bldr := strings.Builder{}
	for row := 0; row < b.rows; row += 1 {
		line := strings.Builder{}
		cells := b.Row(row)
		for col := 0; col < len(cells); {
			cell := cells[col]
			if cell.Grapheme == "" {
				line.WriteString(" ")
				col += 1
				continue
			}
			line.WriteString(cell.Grapheme)
			// Skip the cells covered by a wide character
			if cell.Width > 1 {
				col += cell.Width
				continue
			}
			col += 1
		}
		bldr.WriteString(strings.TrimRight(line.String(), " "))
		if row < b.rows-1 {
			bldr.WriteString("\n")
		}
	}
	return bldr.String()
}
