package paragraphs

import (
	"fmt"

	"git.sr.ht/~rockorager/vxpage/geometry"
)

// PageOffset is a position in a document: a paragraph and a byte offset into
// its content. The zero value is the start of the document
type PageOffset struct {
	Paragraph int
	Char      int
}

func (o PageOffset) String() string {
	return fmt.Sprintf("%d:%d", o.Paragraph, o.Char)
}

// Compare returns -1, 0 or 1 when o is before, at or after other
func (o PageOffset) Compare(other PageOffset) int {
	switch {
	case o.Paragraph < other.Paragraph:
		return -1
	case o.Paragraph > other.Paragraph:
		return 1
	case o.Char < other.Char:
		return -1
	case o.Char > other.Char:
		return 1
	default:
		return 0
	}
}

func (o PageOffset) Less(other PageOffset) bool {
	return o.Compare(other) < 0
}

// pageRules are the settings of a document which affect page breaking
type pageRules struct {
	// rows between two placed paragraphs
	spacing int
	// multiplier of the keep-together threshold
	keepTogether int
}

// step is the result of advancing over one paragraph
type step struct {
	// where the next step starts
	offset PageOffset
	// area left on the page. Unset when the page is full
	remaining geometry.Rect
	pageFull  bool
	// the placed paragraph, valid when placed is set
	layout layoutProxy
	placed bool
}

// advance fits the paragraph at o into area. full is the area of a whole page
func (o PageOffset) advance(area geometry.Rect, full geometry.Rect, source Source, rules pageRules) step {
	p := source.At(o.Paragraph, o.Char)

	// Skip empty paragraphs
	if p.Content == "" {
		return step{
			offset:    PageOffset{Paragraph: o.Paragraph + 1},
			remaining: area,
		}
	}

	// Move a key-value pair to the next page when it doesn't fit here
	if p.NoBreak && o.Char == 0 && o.Paragraph+1 < source.Size() {
		next := source.At(o.Paragraph+1, 0)
		if shouldDefer(p, next, area, full, rules.keepTogether) {
			return step{
				offset:   o,
				pageFull: true,
			}
		}
	}

	fit := p.layout(area, o.Char > 0).Fit(p.Content)
	used, remaining := area.SplitTop(fit.Height)

	s := step{}
	if fit.Fits {
		s.offset = PageOffset{Paragraph: o.Paragraph + 1}
		s.pageFull = p.BreakAfter
	} else {
		s.offset = PageOffset{
			Paragraph: o.Paragraph,
			Char:      o.Char + fit.Processed,
		}
		s.pageFull = true
	}
	if !s.pageFull {
		if fit.Height > 0 && rules.spacing > 0 {
			_, remaining = remaining.SplitTop(rules.spacing)
		}
		s.remaining = remaining
	}
	if fit.Height > 0 {
		s.layout = layoutProxy{
			offset: o,
			bounds: used,
		}
		s.placed = true
	}
	return s
}

// shouldDefer decides whether the key paragraph and the value paragraph
// following it start on a new page instead of in area
func shouldDefer(key Paragraph, val Paragraph, area geometry.Rect, full geometry.Rect, factor int) bool {
	remaining := area.Height()
	if remaining >= full.Height() {
		return false
	}

	keyHeight := key.layout(full, false).Height(key.Content)
	valHeight := val.layout(full, false).Height(val.Content)
	if keyHeight+valHeight <= remaining {
		return false
	}

	if factor < 1 {
		factor = 1
	}
	threshold := (key.lineHeight() + val.lineHeight()) * factor
	switch {
	case remaining <= threshold:
		return true
	case valHeight > 0 && keyHeight > remaining:
		return true
	case keyHeight+valHeight <= full.Height():
		return true
	default:
		return false
	}
}
