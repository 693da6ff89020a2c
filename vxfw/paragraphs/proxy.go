package paragraphs

import (
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/vxfw/text"
)

// layoutProxy is a paragraph placed on the current page. The layout is
// rebuilt from the source when it is needed
type layoutProxy struct {
	offset PageOffset
	bounds geometry.Rect
}

// layout returns the layout of the placed paragraph and the content to lay
// out
func (lp layoutProxy) layout(source Source) (text.Layout, string) {
	p := source.At(lp.offset.Paragraph, lp.offset.Char)
	return p.layout(lp.bounds, lp.offset.Char > 0), p.Content
}
