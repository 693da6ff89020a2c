package paragraphs

import (
	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/vxfw/text"
)

// DefaultStyle is used by paragraphs without a style
var DefaultStyle = text.NewStyle(vxpage.Style{})

// Paragraph is one styled block of text. A paragraph may be broken across
// pages
type Paragraph struct {
	Content string
	// Style of the paragraph. A nil Style uses DefaultStyle
	Style *text.Style
	Align text.Alignment
	// BreakAfter ends the page after this paragraph
	BreakAfter bool
	// NoBreak keeps this paragraph on the same page as the following one,
	// when that is reasonably possible
	NoBreak       bool
	PaddingTop    int
	PaddingBottom int
}

func NewParagraph(style *text.Style, content string) Paragraph {
	return Paragraph{
		Content: content,
		Style:   style,
	}
}

func (p Paragraph) WithBreakAfter() Paragraph {
	p.BreakAfter = true
	return p
}

func (p Paragraph) WithNoBreak() Paragraph {
	p.NoBreak = true
	return p
}

func (p Paragraph) WithAlign(a text.Alignment) Paragraph {
	p.Align = a
	return p
}

func (p Paragraph) Centered() Paragraph {
	return p.WithAlign(text.AlignCenter)
}

func (p Paragraph) WithTopPadding(n int) Paragraph {
	p.PaddingTop = n
	return p
}

func (p Paragraph) WithBottomPadding(n int) Paragraph {
	p.PaddingBottom = n
	return p
}

func (p Paragraph) style() text.Style {
	if p.Style == nil {
		return DefaultStyle
	}
	return *p.Style
}

func (p Paragraph) lineHeight() int {
	return p.style().LineHeightRows()
}

// layout returns the layout request of p in bounds. A continued paragraph
// resumes below the top padding
func (p Paragraph) layout(bounds geometry.Rect, continued bool) text.Layout {
	l := text.Layout{
		Bounds:        bounds,
		Style:         p.style(),
		Align:         p.Align,
		PaddingTop:    p.PaddingTop,
		PaddingBottom: p.PaddingBottom,
		Continued:     continued,
	}
	if continued {
		l.PaddingTop = 0
	}
	return l
}
