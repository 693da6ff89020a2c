package paragraphs

import (
	"errors"
	"fmt"
)

// ErrFull is returned when adding to a source which is at capacity
var ErrFull = errors.New("paragraphs: source is full")

// Source is a sequence of paragraphs
type Source interface {
	// At returns the paragraph at index, with the first offset bytes of its
	// content skipped
	At(index int, offset int) Paragraph
	// Size returns the number of paragraphs
	Size() int
}

func skip(p Paragraph, offset int) Paragraph {
	if offset >= len(p.Content) {
		p.Content = ""
		return p
	}
	p.Content = p.Content[offset:]
	return p
}

// Slice is a Source backed by a slice. Arrays are used by slicing them
type Slice []Paragraph

func (s Slice) At(index int, offset int) Paragraph {
	return skip(s[index], offset)
}

func (s Slice) Size() int {
	return len(s)
}

// Bounded is a Source holding at most a fixed number of paragraphs
type Bounded struct {
	items []Paragraph
}

// NewBounded returns an empty Bounded source which holds up to capacity
// paragraphs
func NewBounded(capacity int) *Bounded {
	return &Bounded{
		items: make([]Paragraph, 0, capacity),
	}
}

// Add appends p. Add returns ErrFull when the source is at capacity
func (b *Bounded) Add(p Paragraph) error {
	if len(b.items) == cap(b.items) {
		return fmt.Errorf("add paragraph %d: %w", len(b.items), ErrFull)
	}
	b.items = append(b.items, p)
	return nil
}

// SetContent replaces the content of the paragraph at index
func (b *Bounded) SetContent(index int, content string) {
	b.items[index].Content = content
}

func (b *Bounded) Cap() int {
	return cap(b.items)
}

func (b *Bounded) At(index int, offset int) Paragraph {
	return skip(b.items[index], offset)
}

func (b *Bounded) Size() int {
	return len(b.items)
}

// Single is a Source of one paragraph
type Single struct {
	Paragraph Paragraph
}

func NewSingle(p Paragraph) *Single {
	return &Single{Paragraph: p}
}

func (s *Single) At(index int, offset int) Paragraph {
	if index != 0 {
		panic(fmt.Sprintf("paragraphs: index %d out of range of single paragraph", index))
	}
	return skip(s.Paragraph, offset)
}

func (s *Single) Size() int {
	return 1
}
