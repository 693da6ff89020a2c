package vxfw

import (
	"math"
	"sort"
	"strings"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/log"
)

type Widget interface {
	Draw(DrawContext) (Surface, error)
}

// EventHandler is a Widget which can handle events. It's a separate interface to simplify creating
// custom [Widget]s that do not require event handling.
type EventHandler interface {
	HandleEvent(vxpage.Event, EventPhase) (Command, error)
}

// Command is returned by an EventHandler for its host to act on. A nil
// Command means the event is not consumed
type Command interface{}

type DrawContext struct {
	// The minimum size the widget must render as
	Min Size
	// The maximum size the widget must render as. A value of math.MaxUint16
	// in either dimension means that dimension has no limit
	Max Size
	// Function to turn a string into a slice of characters. This splits the
	// string into graphemes and measures each grapheme
	Characters func(string) []vxpage.Character
}

// WithConstraints returns a new DrawContext with the supplied min and max size
func (ctx DrawContext) WithConstraints(min, max Size) DrawContext {
	return DrawContext{
		Min: min, Max: max,
		Characters: ctx.Characters,
	}
}

// WithMax returns a new DrawContext with the maximum size set to max
func (ctx DrawContext) WithMax(max Size) DrawContext {
	return ctx.WithConstraints(ctx.Min, max)
}

type Size struct {
	Width  uint16
	Height uint16
}

func (s Size) HasUnboundedWidth() bool {
	return s.Width == math.MaxUint16
}

// EventPhase is the phase of the event during the event handling process.
// Possible values are
//
//	CapturePhase
//	TargetPhase
//	BubblePhase
type EventPhase uint8

const (
	CapturePhase EventPhase = iota
	TargetPhase
	BubblePhase
)

type Surface struct {
	Size     Size
	Widget   Widget
	Buffer   []vxpage.Cell
	Children []SubSurface
}

// Creates a new surface. The resulting surface will have a Buffer with capacity
// large enough for Size
func NewSurface(width uint16, height uint16, w Widget) Surface {
	return Surface{
		Size: Size{
			Width:  width,
			Height: height,
		},
		Widget: w,
		Buffer: make([]vxpage.Cell, int(height)*int(width)),
	}
}

func (s *Surface) AddChild(col int, row int, child Surface) {
	ss := NewSubSurface(col, row, child)
	s.Children = append(s.Children, ss)
}

func (s *Surface) WriteCell(col uint16, row uint16, cell vxpage.Cell) {
	if col >= s.Size.Width ||
		row >= s.Size.Height {
		return
	}
	i := int(row)*int(s.Size.Width) + int(col)
	if i >= len(s.Buffer) {
		return
	}
	s.Buffer[i] = cell
}

// Window returns a window drawing into the Buffer of s
func (s *Surface) Window() vxpage.Window {
	return vxpage.Window{
		Width:  int(s.Size.Width),
		Height: int(s.Size.Height),
		Canvas: surfaceCanvas{s},
	}
}

type surfaceCanvas struct {
	s *Surface
}

func (c surfaceCanvas) SetCell(col int, row int, cell vxpage.Cell) {
	if col < 0 || row < 0 {
		return
	}
	c.s.WriteCell(uint16(col), uint16(row), cell)
}

func (c surfaceCanvas) Size() (int, int) {
	return int(c.s.Size.Width), int(c.s.Size.Height)
}

// Render draws s and its children to win. Children are drawn in z-index
// order and clipped to s
func (s Surface) Render(win vxpage.Window) {
	// Render ourself first
	for i, cell := range s.Buffer {
		if cell.Grapheme == "" {
			continue
		}
		row := i / int(s.Size.Width)
		col := i % int(s.Size.Width)
		win.SetCell(col, row, cell)
	}

	// Sort the Children by z-index
	sort.SliceStable(s.Children, func(i int, j int) bool {
		return s.Children[i].ZIndex < s.Children[j].ZIndex
	})

	for _, child := range s.Children {
		// clip the child window to the minimum of the parent surface or the child surface this
		// effectively forces clipping at the layout level
		w := math.Min(float64(child.Surface.Size.Width), float64(int(s.Size.Width)-child.Origin.Col))
		h := math.Min(float64(child.Surface.Size.Height), float64(int(s.Size.Height)-child.Origin.Row))
		if w <= 0 || h <= 0 {
			continue
		}
		childWin := win.New(
			int(child.Origin.Col),
			int(child.Origin.Row),
			int(w),
			int(h),
		)
		child.Surface.Render(childWin)
	}
}

type SubSurface struct {
	Origin  RelativePoint
	Surface Surface
	ZIndex  int
}

func NewSubSurface(col int, row int, s Surface) SubSurface {
	return SubSurface{
		Origin: RelativePoint{
			Row: row,
			Col: col,
		},
		Surface: s,
		ZIndex:  0,
	}
}

type RelativePoint struct {
	Row int
	Col int
}

// DebugPrint logs the widget tree of s at debug level
func DebugPrint(s Surface) {
	if log.Level() > log.LevelDebug {
		return
	}
	debugPrintWidget(s, 0)
}

func debugPrintWidget(s Surface, indent int) {
	log.Debug("%s%T %dx%d", strings.Repeat(" ", indent*4), s.Widget, s.Size.Width, s.Size.Height)
	for _, ch := range s.Children {
		debugPrintWidget(ch.Surface, indent+1)
	}
}
