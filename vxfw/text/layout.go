package text

import (
	"strings"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
)

// Layout is a request to lay out a paragraph of text inside Bounds
type Layout struct {
	// The area the text is laid out in
	Bounds geometry.Rect
	Style  Style
	Align  Alignment
	// Rows left empty above the first line
	PaddingTop int
	// Rows left empty below the last line, when the whole text fits
	PaddingBottom int
	// The text continues a paragraph cut on a previous page
	Continued bool
}

// Fit is the result of measuring text against a Layout
type Fit struct {
	// The whole text fits
	Fits bool
	// Bytes of text which fit. Equal to the length of the text when Fits
	// is true
	Processed int
	// Rows occupied, counted from the top of the bounds
	Height int
}

// Sink receives the parts of a text as it is laid out. Cursors are the top
// left cell of the reported part
type Sink interface {
	// Text is a run of text drawn on one line
	Text(cursor geometry.Point, l Layout, text string)
	// Hyphen is inserted after a broken word
	Hyphen(cursor geometry.Point, l Layout)
	// Ellipsis marks text continued on another page
	Ellipsis(cursor geometry.Point, l Layout)
	// LineBreak moves the cursor to the start of the next line
	LineBreak(cursor geometry.Point)
	// OutOfBounds reports that the text did not fit the bounds
	OutOfBounds()
}

// Fit measures how much of text fits l
func (l Layout) Fit(text string) Fit {
	return l.layoutText(text, noopSink{})
}

// Render draws text to win. The bounds of l are relative to win
func (l Layout) Render(win vxpage.Window, text string) Fit {
	return l.layoutText(text, renderer{win: win})
}

// Trace lays out text, reporting each part to sink
func (l Layout) Trace(text string, sink Sink) Fit {
	return l.layoutText(text, sink)
}

// Height returns the rows text occupies when laid out in l. Text cut at the
// bottom of the bounds occupies the whole bounds
func (l Layout) Height(text string) int {
	fit := l.Fit(text)
	switch {
	case fit.Fits:
		return fit.Height
	case fit.Processed == 0:
		return 0
	default:
		return l.Bounds.Height()
	}
}

func (l Layout) layoutText(text string, sink Sink) Fit {
	lh := l.Style.LineHeightRows()
	cursor := geometry.Point{
		X: l.Bounds.X0,
		Y: l.Bounds.Y0 + l.PaddingTop,
	}

	// Check if the bounds are high enough for at least one line
	if cursor.Y+lh > l.Bounds.Y1 || l.Bounds.Width() <= 0 {
		sink.OutOfBounds()
		return Fit{}
	}

	prefix := l.Continued && l.Style.PageBreaking == CutAndInsertEllipsisBoth
	ellipsisWidth := vxpage.StringWidth(ellipsis)
	hyphenWidth := vxpage.StringWidth(hyphen)

	remaining := text
	for remaining != "" {
		var prefixWidth int
		if prefix {
			prefixWidth = ellipsisWidth
		}
		available := l.Bounds.Width() - prefixWidth
		lastLine := cursor.Y+2*lh > l.Bounds.Y1

		sp := fitHorizontally(remaining, available, l.Style.LineBreaking)
		rest := remaining[sp.length+sp.skip:]
		cut := lastLine && rest != ""
		suffix := cut && l.Style.ellipsisAtEnd()
		if suffix {
			// Leave room for the ellipsis
			sp = fitHorizontally(remaining, available-ellipsisWidth, l.Style.LineBreaking)
			sp.hyphen = false
			rest = remaining[sp.length+sp.skip:]
		}

		lineWidth := prefixWidth + sp.width
		if sp.hyphen {
			lineWidth += hyphenWidth
		}
		if suffix {
			lineWidth += ellipsisWidth
		}
		shift := l.Align.Offset(l.Bounds.Width(), lineWidth)
		if shift < 0 {
			shift = 0
		}

		cursor.X = l.Bounds.X0 + shift
		if prefix {
			sink.Ellipsis(cursor, l)
			cursor.X += ellipsisWidth
			prefix = false
		}
		sink.Text(cursor, l, remaining[:sp.length])
		cursor.X += sp.width
		remaining = rest

		if remaining == "" {
			break
		}
		if sp.hyphen {
			sink.Hyphen(cursor, l)
			cursor.X += hyphenWidth
		}
		if cut {
			if suffix {
				sink.Ellipsis(cursor, l)
			}
			sink.OutOfBounds()
			return Fit{
				Processed: len(text) - len(remaining),
				Height:    cursor.Y + lh - l.Bounds.Y0,
			}
		}
		// Advance the cursor to the beginning of the next line
		cursor.X = l.Bounds.X0
		cursor.Y += lh
		sink.LineBreak(cursor)
	}

	height := cursor.Y + lh + l.PaddingBottom - l.Bounds.Y0
	if height > l.Bounds.Height() {
		height = l.Bounds.Height()
	}
	return Fit{
		Fits:      true,
		Processed: len(text),
		Height:    height,
	}
}

type noopSink struct{}

func (noopSink) Text(geometry.Point, Layout, string) {}
func (noopSink) Hyphen(geometry.Point, Layout)       {}
func (noopSink) Ellipsis(geometry.Point, Layout)     {}
func (noopSink) LineBreak(geometry.Point)            {}
func (noopSink) OutOfBounds()                        {}

// renderer draws each part of the text to a window
type renderer struct {
	win vxpage.Window
}

func (r renderer) Text(cursor geometry.Point, l Layout, text string) {
	vxpage.Print(r.win, cursor.X, cursor.Y, vxpage.Segment{
		Text:  text,
		Style: l.Style.Text,
	})
}

func (r renderer) Hyphen(cursor geometry.Point, l Layout) {
	vxpage.Print(r.win, cursor.X, cursor.Y, vxpage.Segment{
		Text:  hyphen,
		Style: l.Style.Hyphen,
	})
}

func (r renderer) Ellipsis(cursor geometry.Point, l Layout) {
	vxpage.Print(r.win, cursor.X, cursor.Y, vxpage.Segment{
		Text:  ellipsis,
		Style: l.Style.Ellipsis,
	})
}

func (r renderer) LineBreak(geometry.Point) {}

func (r renderer) OutOfBounds() {}

// Tracer records the parts of a laid out text. Text runs are recorded as is,
// line breaks as "\n", hyphens as "-" and ellipses as "..."
type Tracer struct {
	Items []string
}

func (t *Tracer) Text(_ geometry.Point, _ Layout, text string) {
	if text == "" {
		return
	}
	t.Items = append(t.Items, text)
}

func (t *Tracer) Hyphen(geometry.Point, Layout) {
	t.Items = append(t.Items, hyphen)
}

func (t *Tracer) Ellipsis(geometry.Point, Layout) {
	t.Items = append(t.Items, "...")
}

func (t *Tracer) LineBreak(geometry.Point) {
	t.Items = append(t.Items, "\n")
}

func (t *Tracer) OutOfBounds() {}

// String joins the recorded parts
func (t *Tracer) String() string {
	return strings.Join(t.Items, "")
}
