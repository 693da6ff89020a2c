package paragraphs

import (
	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/log"
	"git.sr.ht/~rockorager/vxpage/vxfw"
)

// MaxLines is the most paragraphs, or parts of paragraphs, placed on one
// page
const MaxLines = 10

// Paragraphs lays out the paragraphs of a Source in pages
type Paragraphs[T Source] struct {
	area      geometry.Rect
	placement geometry.LinearPlacement
	rules     pageRules
	offset    PageOffset
	visible   []layoutProxy
	source    T
	pager     vxfw.Pager
}

func New[T Source](source T) *Paragraphs[T] {
	return &Paragraphs[T]{
		placement: geometry.NewVertical(),
		rules: pageRules{
			keepTogether: 1,
		},
		visible: make([]layoutProxy, 0, MaxLines),
		source:  source,
		pager:   vxfw.SinglePage(),
	}
}

// WithPlacement sets how the paragraphs of a page are arranged. The spacing
// of the placement is left between paragraphs
func (p *Paragraphs[T]) WithPlacement(placement geometry.LinearPlacement) *Paragraphs[T] {
	p.placement = placement
	p.rules.spacing = placement.Spacing
	return p
}

// WithSpacing leaves n rows between paragraphs
func (p *Paragraphs[T]) WithSpacing(n int) *Paragraphs[T] {
	return p.WithPlacement(p.placement.WithSpacing(n))
}

// WithKeepTogetherLines scales the space, in lines, below which a paragraph
// marked NoBreak starts on a new page with its successor
func (p *Paragraphs[T]) WithKeepTogetherLines(n int) *Paragraphs[T] {
	p.rules.keepTogether = n
	return p
}

// Place sets the area the paragraphs are laid out in. Pages are recomputed
// when the area changes
func (p *Paragraphs[T]) Place(bounds geometry.Rect) geometry.Rect {
	if bounds != p.area {
		p.area = bounds
		p.recalculatePages()
	}
	return p.area
}

// Mutate calls fn with the source and recomputes the pages
func (p *Paragraphs[T]) Mutate(fn func(*T)) {
	fn(&p.source)
	p.recalculatePages()
}

// Inner returns the source
func (p *Paragraphs[T]) Inner() T {
	return p.source
}

// Offset returns the start of the current page
func (p *Paragraphs[T]) Offset() PageOffset {
	return p.offset
}

// Visible returns the bounds of the paragraphs placed on the current page
func (p *Paragraphs[T]) Visible() []geometry.Rect {
	rects := make([]geometry.Rect, 0, len(p.visible))
	for _, lp := range p.visible {
		rects = append(rects, lp.bounds)
	}
	return rects
}

// Area returns the area covered by the current page
func (p *Paragraphs[T]) Area() geometry.Rect {
	if len(p.visible) == 0 {
		return p.area
	}
	var area geometry.Rect
	for _, lp := range p.visible {
		area = area.Union(lp.bounds)
	}
	return area
}

func (p *Paragraphs[T]) Pager() vxfw.Pager {
	return p.pager
}

func (p *Paragraphs[T]) recalculatePages() {
	if p.area.IsEmpty() {
		return
	}
	total := 0
	it := p.BreakPagesFromStart()
	for it.Scan() {
		total += 1
	}
	if total < 1 {
		total = 1
	}
	log.Debug("paragraphs: %d pages in %s", total, p.area)
	p.pager = vxfw.Pager{Current: 0, Total: total}
	p.changeOffset(PageOffset{})
}

// changeOffset places the page starting at offset
func (p *Paragraphs[T]) changeOffset(offset PageOffset) {
	p.offset = offset
	p.visible = p.visible[:0]

	size := p.source.Size()
	area := p.area
	current := offset
	for current.Paragraph < size {
		s := current.advance(area, p.area, p.source, p.rules)
		if s.placed {
			if len(p.visible) == MaxLines {
				panic("paragraphs: more than MaxLines paragraphs on one page")
			}
			p.visible = append(p.visible, s.layout)
		}
		current = s.offset
		if s.pageFull {
			break
		}
		area = s.remaining
	}

	rects := p.Visible()
	p.placement.Arrange(p.area, rects)
	for i := range p.visible {
		p.visible[i].bounds = rects[i]
	}
	log.Trace("paragraphs: page at %s has %d paragraphs", offset, len(p.visible))
}

// ChangePage navigates to the page at index. An index past the last page
// leaves an empty page
func (p *Paragraphs[T]) ChangePage(index int) {
	if index == p.pager.Current {
		return
	}

	var (
		offset PageOffset
		ok     bool
	)
	if index > p.pager.Current {
		offset, ok = p.breakPagesFromNext().nth(index - p.pager.Current - 1)
	} else {
		offset, ok = p.BreakPagesFromStart().nth(index)
	}
	if !ok {
		log.Warn("paragraphs: page %d out of range of %d pages", index, p.pager.Total)
		p.offset = PageOffset{}
		p.visible = p.visible[:0]
		p.pager.Current = 0
		return
	}
	p.pager.Current = index
	p.changeOffset(offset)
}

// Render draws the current page to win
func (p *Paragraphs[T]) Render(win vxpage.Window) {
	for _, lp := range p.visible {
		l, content := lp.layout(p.source)
		l.Render(win, content)
	}
}

// Draw places the paragraphs in the maximum size of ctx and draws the
// current page
func (p *Paragraphs[T]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	p.Place(geometry.FromSize(int(ctx.Max.Width), int(ctx.Max.Height)))
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, p)
	p.Render(s.Window())
	return s, nil
}

// Paragraphs don't react to events
func (p *Paragraphs[T]) HandleEvent(ev vxpage.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}
