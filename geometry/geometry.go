// Package geometry contains the cell-space primitives layouts are computed
// with. Coordinates are in cells, the origin is the upper left
package geometry

import "fmt"

// Point is a cell position
type Point struct {
	X int
	Y int
}

func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Offset is a displacement, or a size when measured from the origin
type Offset struct {
	X int
	Y int
}

// Rect is a half open rectangle: X1 and Y1 are one past the last column and
// row
type Rect struct {
	X0 int
	Y0 int
	X1 int
	Y1 int
}

// New returns the rectangle with its upper left at p and the given size
func New(p Point, size Offset) Rect {
	return Rect{
		X0: p.X,
		Y0: p.Y,
		X1: p.X + size.X,
		Y1: p.Y + size.Y,
	}
}

// FromSize returns a rectangle of the given size anchored at the origin
func FromSize(cols int, rows int) Rect {
	return Rect{X1: cols, Y1: rows}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

func (r Rect) Width() int {
	return r.X1 - r.X0
}

func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Offset {
	return Offset{X: r.Width(), Y: r.Height()}
}

func (r Rect) TopLeft() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// IsEmpty reports whether r contains no cells
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Contains reports whether the cell at p is inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Translate moves r by o
func (r Rect) Translate(o Offset) Rect {
	return Rect{
		X0: r.X0 + o.X,
		Y0: r.Y0 + o.Y,
		X1: r.X1 + o.X,
		Y1: r.Y1 + o.Y,
	}
}

// WithHeight keeps the top edge and sets the height to h
func (r Rect) WithHeight(h int) Rect {
	r.Y1 = r.Y0 + h
	return r
}

// WithWidth keeps the left edge and sets the width to w
func (r Rect) WithWidth(w int) Rect {
	r.X1 = r.X0 + w
	return r
}

// SplitTop splits r into a top part of at most height rows and the
// remainder
func (r Rect) SplitTop(height int) (Rect, Rect) {
	height = clamp(height, 0, r.Height())
	top := r
	top.Y1 = r.Y0 + height
	rest := r
	rest.Y0 = top.Y1
	return top, rest
}

// SplitBottom splits r into the remainder and a bottom part of at most
// height rows
func (r Rect) SplitBottom(height int) (Rect, Rect) {
	top, bottom := r.SplitTop(r.Height() - height)
	return top, bottom
}

// SplitLeft splits r into a left part of at most width columns and the
// remainder
func (r Rect) SplitLeft(width int) (Rect, Rect) {
	width = clamp(width, 0, r.Width())
	left := r
	left.X1 = r.X0 + width
	rest := r
	rest.X0 = left.X1
	return left, rest
}

// Union returns the smallest rectangle containing r and o. Empty rectangles
// do not contribute
func (r Rect) Union(o Rect) Rect {
	switch {
	case o.IsEmpty():
		return r
	case r.IsEmpty():
		return o
	}
	return Rect{
		X0: minInt(r.X0, o.X0),
		Y0: minInt(r.Y0, o.Y0),
		X1: maxInt(r.X1, o.X1),
		Y1: maxInt(r.Y1, o.Y1),
	}
}

// Inset shrinks r by the insets. The result never has a negative size
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X0: r.X0 + in.Left,
		Y0: r.Y0 + in.Top,
		X1: r.X1 - in.Right,
		Y1: r.Y1 - in.Bottom,
	}
	if out.X1 < out.X0 {
		out.X1 = out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y1 = out.Y0
	}
	return out
}

// Insets are the distances to shrink each edge of a rectangle by
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

func Uniform(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

func Top(n int) Insets {
	return Insets{Top: n}
}

func Bottom(n int) Insets {
	return Insets{Bottom: n}
}

func Left(n int) Insets {
	return Insets{Left: n}
}

func Right(n int) Insets {
	return Insets{Right: n}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
