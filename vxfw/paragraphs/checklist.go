package paragraphs

import (
	"strconv"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/vxfw"
)

// Checklist draws paragraphs as a list of tasks. Tasks before the current
// one are marked done
type Checklist[T Source] struct {
	paragraphs *Paragraphs[T]
	// index of the current task
	current int

	DoneIcon     string
	DoneStyle    vxpage.Style
	CurrentIcon  string
	CurrentStyle vxpage.Style
	// Width of the icon column left of the paragraphs
	IconWidth int
	// Position of an icon relative to the top left of its row
	IconOffset geometry.Offset
	// When set, tasks which are not done are numbered in this style instead
	// of drawing the current icon
	NumeralStyle *vxpage.Style
}

func NewChecklist[T Source](paragraphs *Paragraphs[T], current int) *Checklist[T] {
	return &Checklist[T]{
		paragraphs:  paragraphs,
		current:     current,
		DoneIcon:    "✓",
		CurrentIcon: "▸",
		IconWidth:   2,
	}
}

func (c *Checklist[T]) Current() int {
	return c.current
}

// SetCurrent sets the index of the current task
func (c *Checklist[T]) SetCurrent(current int) {
	c.current = current
}

// Paragraphs returns the wrapped paragraphs
func (c *Checklist[T]) Paragraphs() *Paragraphs[T] {
	return c.paragraphs
}

// Place lays out the paragraphs right of the icon column
func (c *Checklist[T]) Place(bounds geometry.Rect) geometry.Rect {
	_, content := bounds.SplitLeft(c.IconWidth)
	c.paragraphs.Place(content)
	return bounds
}

func (c *Checklist[T]) Area() geometry.Rect {
	return c.paragraphs.Area()
}

func (c *Checklist[T]) Pager() vxfw.Pager {
	return c.paragraphs.Pager()
}

func (c *Checklist[T]) ChangePage(index int) {
	c.paragraphs.ChangePage(index)
}

// Render draws the paragraphs and an icon or number left of each of them
func (c *Checklist[T]) Render(win vxpage.Window) {
	c.paragraphs.Render(win)

	for _, lp := range c.paragraphs.visible {
		pos := geometry.Point{
			X: lp.bounds.X0 - c.IconWidth,
			Y: lp.bounds.Y0,
		}.Add(c.IconOffset)
		switch {
		case lp.offset.Paragraph < c.current:
			vxpage.Print(win, pos.X, pos.Y, vxpage.Segment{
				Text:  c.DoneIcon,
				Style: c.DoneStyle,
			})
		case c.NumeralStyle != nil:
			vxpage.Print(win, pos.X, pos.Y, vxpage.Segment{
				Text:  strconv.Itoa(lp.offset.Paragraph + 1),
				Style: *c.NumeralStyle,
			})
		case lp.offset.Paragraph == c.current:
			vxpage.Print(win, pos.X, pos.Y, vxpage.Segment{
				Text:  c.CurrentIcon,
				Style: c.CurrentStyle,
			})
		}
	}
}

func (c *Checklist[T]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	c.Place(geometry.FromSize(int(ctx.Max.Width), int(ctx.Max.Height)))
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, c)
	c.Render(s.Window())
	return s, nil
}

func (c *Checklist[T]) HandleEvent(ev vxpage.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return c.paragraphs.HandleEvent(ev, phase)
}
