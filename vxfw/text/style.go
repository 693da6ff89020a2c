package text

import (
	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
)

// LineBreaking controls where a line of text may be broken
type LineBreaking int

const (
	// BreakAtWhitespace breaks lines between words. Words wider than a
	// whole line are still broken, with a hyphen
	BreakAtWhitespace LineBreaking = iota
	// BreakWordsAndInsertHyphen fills each line completely, breaking words
	// and appending a hyphen
	BreakWordsAndInsertHyphen
)

// PageBreaking controls what is drawn where text is cut at the bottom of
// its bounds
type PageBreaking int

const (
	// Cut stops drawing without any marker
	Cut PageBreaking = iota
	// CutAndInsertEllipsis draws an ellipsis after the last fitting text
	CutAndInsertEllipsis
	// CutAndInsertEllipsisBoth draws an ellipsis after the last fitting
	// text, and another one before the text continued on the next page
	CutAndInsertEllipsisBoth
)

// Alignment is the horizontal alignment of each line of text
type Alignment = geometry.Alignment

const (
	AlignStart  = geometry.Start
	AlignCenter = geometry.Center
	AlignEnd    = geometry.End
)

const (
	hyphen   = "-"
	ellipsis = "…"
)

// Style describes how a paragraph of text is measured and drawn
type Style struct {
	// Cell style of the text
	Text vxpage.Style
	// Rows occupied by each line. Values below 1 are treated as 1
	LineHeight   int
	LineBreaking LineBreaking
	PageBreaking PageBreaking
	// Cell style of inserted hyphens
	Hyphen vxpage.Style
	// Cell style of inserted ellipses
	Ellipsis vxpage.Style
}

// NewStyle returns a Style with one row per line, breaking at whitespace and
// cutting with an ellipsis. Hyphens and ellipses are drawn in the text style
func NewStyle(s vxpage.Style) Style {
	return Style{
		Text:         s,
		LineHeight:   1,
		LineBreaking: BreakAtWhitespace,
		PageBreaking: CutAndInsertEllipsis,
		Hyphen:       s,
		Ellipsis:     s,
	}
}

// WithLineBreaking returns a copy of s with lb
func (s Style) WithLineBreaking(lb LineBreaking) Style {
	s.LineBreaking = lb
	return s
}

// WithPageBreaking returns a copy of s with pb
func (s Style) WithPageBreaking(pb PageBreaking) Style {
	s.PageBreaking = pb
	return s
}

// WithLineHeight returns a copy of s with h rows per line
func (s Style) WithLineHeight(h int) Style {
	s.LineHeight = h
	return s
}

// LineHeightRows returns the number of rows per line
func (s Style) LineHeightRows() int {
	if s.LineHeight < 1 {
		return 1
	}
	return s.LineHeight
}

// ellipsisAtEnd reports whether a cut is marked with a trailing ellipsis
func (s Style) ellipsisAtEnd() bool {
	return s.PageBreaking == CutAndInsertEllipsis ||
		s.PageBreaking == CutAndInsertEllipsisBoth
}
