package scrollbar

import (
	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/vxfw"
)

// Scrollbar is a one column wide widget showing which part of some content
// is in view
type Scrollbar struct {
	// The character to display for the bar, defaults to '▐'
	Character string
	Style     vxpage.Style

	// Number of items in the scrolling area
	Total int
	// Number of items in the visible area
	View int
	// Index of the item at the top of the visible area
	Top int
}

// FromPager returns a Scrollbar showing the current page of p
func FromPager(p vxfw.Pager) *Scrollbar {
	return &Scrollbar{
		Total: p.Total,
		View:  1,
		Top:   p.Current,
	}
}

// Noop for scrollbars
func (s *Scrollbar) HandleEvent(ev vxpage.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}

func (s *Scrollbar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	h := ctx.Max.Height
	surface := vxfw.NewSurface(1, h, s)
	if s.Total < 1 {
		return surface, nil
	}

	if s.View >= s.Total {
		// Only draw if needed
		return surface, nil
	}
	barH := (s.View * int(h)) / s.Total
	if barH < 1 {
		barH = 1
	}
	barTop := (s.Top * int(h)) / s.Total

	char := s.Character
	if char == "" {
		char = "▐"
	}
	for i := 0; i < barH; i += 1 {
		surface.WriteCell(0, uint16(barTop+i), vxpage.Cell{
			Character: vxpage.Character{
				Grapheme: char,
				Width:    1,
			},
			Style: s.Style,
		})
	}
	return surface, nil
}
