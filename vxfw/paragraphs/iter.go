package paragraphs

import "fmt"

// PageBreakIterator walks the page starts of a document. Each call to Scan
// computes the next page start, which is then available from Offset:
//
//	it := p.BreakPagesFromStart()
//	for it.Scan() {
//		fmt.Println(it.Offset())
//	}
type PageBreakIterator[T Source] struct {
	paragraphs *Paragraphs[T]
	cursor     PageOffset
	started    bool
}

// BreakPagesFromStart returns an iterator over all page starts of the
// document, beginning with the start of the document
func (p *Paragraphs[T]) BreakPagesFromStart() *PageBreakIterator[T] {
	return &PageBreakIterator[T]{
		paragraphs: p,
	}
}

// breakPagesFromNext returns an iterator over the page starts following the
// current page
func (p *Paragraphs[T]) breakPagesFromNext() *PageBreakIterator[T] {
	return &PageBreakIterator[T]{
		paragraphs: p,
		cursor:     p.offset,
		started:    true,
	}
}

// Offset returns the page start found by the last call to Scan
func (it *PageBreakIterator[T]) Offset() PageOffset {
	return it.cursor
}

// Scan advances to the next page start. It returns false when there are no
// more pages
func (it *PageBreakIterator[T]) Scan() bool {
	if !it.started {
		it.started = true
		it.cursor = PageOffset{}
		return true
	}

	p := it.paragraphs
	size := p.source.Size()
	full := p.area
	area := full
	current := it.cursor
	for current.Paragraph < size {
		s := current.advance(area, full, p.source, p.rules)
		current = s.offset
		if !s.pageFull {
			area = s.remaining
			continue
		}
		if restIsEmpty(p.source, current) {
			// The document ends with a full page
			return false
		}
		if !it.cursor.Less(current) {
			panic(fmt.Sprintf("paragraphs: page break at %s does not follow %s", current, it.cursor))
		}
		it.cursor = current
		return true
	}
	return false
}

// restIsEmpty reports whether nothing from o to the end of source is drawn
func restIsEmpty(source Source, o PageOffset) bool {
	for i := o.Paragraph; i < source.Size(); i += 1 {
		char := 0
		if i == o.Paragraph {
			char = o.Char
		}
		if source.At(i, char).Content != "" {
			return false
		}
	}
	return true
}

// nth advances it by n+1 page starts and returns the last one
func (it *PageBreakIterator[T]) nth(n int) (PageOffset, bool) {
	if n < 0 {
		return PageOffset{}, false
	}
	for i := 0; i <= n; i += 1 {
		if !it.Scan() {
			return PageOffset{}, false
		}
	}
	return it.Offset(), true
}
