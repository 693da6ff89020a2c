package geometry

import "strings"

// Alignment positions an item within the space available to it
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

// ParseAlignment parses start, center or end. Unknown names return Start and
// false
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(s) {
	case "", "start", "top", "left":
		return Start, true
	case "center", "middle":
		return Center, true
	case "end", "bottom", "right":
		return End, true
	default:
		return Start, false
	}
}

// Offset returns the distance from the start of a container of size
// container to an item of size size
func (a Alignment) Offset(container int, size int) int {
	switch a {
	case Center:
		return (container - size) / 2
	case End:
		return container - size
	default:
		return 0
	}
}

// Axis is the direction items are laid out in
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// main returns the component of o along the axis
func (a Axis) main(o Offset) int {
	if a == Horizontal {
		return o.X
	}
	return o.Y
}

// cross returns the component of o across the axis
func (a Axis) cross(o Offset) int {
	if a == Horizontal {
		return o.Y
	}
	return o.X
}

// offset builds an offset from main and cross axis components
func (a Axis) offset(main, cross int) Offset {
	if a == Horizontal {
		return Offset{X: main, Y: cross}
	}
	return Offset{X: cross, Y: main}
}

// LinearPlacement arranges a sequence of items one after another along an
// axis
type LinearPlacement struct {
	Axis Axis
	// Align positions the whole sequence along the axis
	Align Alignment
	// AlignCross positions each item across the axis
	AlignCross Alignment
	// Spacing is the number of cells between two items
	Spacing int
}

func NewVertical() LinearPlacement {
	return LinearPlacement{Axis: Vertical}
}

func NewHorizontal() LinearPlacement {
	return LinearPlacement{Axis: Horizontal}
}

func (p LinearPlacement) WithAlign(a Alignment) LinearPlacement {
	p.Align = a
	return p
}

func (p LinearPlacement) WithCrossAlign(a Alignment) LinearPlacement {
	p.AlignCross = a
	return p
}

func (p LinearPlacement) WithSpacing(n int) LinearPlacement {
	p.Spacing = n
	return p
}

// Arrange moves each item so that the items follow each other along the axis
// within area. Item sizes are kept. Arrange modifies items in place
func (p LinearPlacement) Arrange(area Rect, items []Rect) {
	if len(items) == 0 {
		return
	}
	total := p.Spacing * (len(items) - 1)
	for _, item := range items {
		total += p.Axis.main(item.Size())
	}
	pos := p.Align.Offset(p.Axis.main(area.Size()), total)
	for i, item := range items {
		size := item.Size()
		cross := p.AlignCross.Offset(p.Axis.cross(area.Size()), p.Axis.cross(size))
		origin := area.TopLeft().Add(p.Axis.offset(pos, cross))
		items[i] = New(origin, size)
		pos += p.Axis.main(size) + p.Spacing
	}
}
