package paragraphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxpage/geometry"
)

func TestPageOffsetCompare(t *testing.T) {
	tests := []struct {
		a, b     PageOffset
		expected int
	}{
		{PageOffset{0, 0}, PageOffset{0, 0}, 0},
		{PageOffset{0, 5}, PageOffset{1, 0}, -1},
		{PageOffset{1, 0}, PageOffset{0, 5}, 1},
		{PageOffset{2, 3}, PageOffset{2, 4}, -1},
		{PageOffset{2, 4}, PageOffset{2, 3}, 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.a.Compare(test.b), "%s <=> %s", test.a, test.b)
		assert.Equal(t, test.expected < 0, test.a.Less(test.b))
	}
}

func TestAdvance(t *testing.T) {
	full := geometry.FromSize(10, 2)
	rules := pageRules{keepTogether: 1}

	t.Run("empty paragraph is skipped", func(t *testing.T) {
		source := Slice{NewParagraph(nil, ""), NewParagraph(nil, "x")}
		s := PageOffset{}.advance(full, full, source, rules)
		assert.Equal(t, PageOffset{Paragraph: 1}, s.offset)
		assert.Equal(t, full, s.remaining)
		assert.False(t, s.pageFull)
		assert.False(t, s.placed)
	})

	t.Run("fits", func(t *testing.T) {
		source := Slice{NewParagraph(nil, "one")}
		s := PageOffset{}.advance(full, full, source, rules)
		assert.Equal(t, PageOffset{Paragraph: 1}, s.offset)
		assert.Equal(t, geometry.Rect{X0: 0, Y0: 1, X1: 10, Y1: 2}, s.remaining)
		assert.False(t, s.pageFull)
		assert.True(t, s.placed)
		assert.Equal(t, geometry.Rect{X0: 0, Y0: 0, X1: 10, Y1: 1}, s.layout.bounds)
	})

	t.Run("break after", func(t *testing.T) {
		source := Slice{NewParagraph(nil, "one").WithBreakAfter(), NewParagraph(nil, "two")}
		s := PageOffset{}.advance(full, full, source, rules)
		assert.Equal(t, PageOffset{Paragraph: 1}, s.offset)
		assert.True(t, s.pageFull)
		assert.True(t, s.placed)
	})

	t.Run("partial", func(t *testing.T) {
		source := Slice{NewParagraph(nil, "one two three four five")}
		s := PageOffset{}.advance(full, full, source, rules)
		assert.Equal(t, PageOffset{Paragraph: 0, Char: 14}, s.offset)
		assert.True(t, s.pageFull)
		assert.True(t, s.placed)
		assert.Equal(t, full, s.layout.bounds)

		// The rest of the paragraph fits on the next page
		s = s.offset.advance(full, full, source, rules)
		assert.Equal(t, PageOffset{Paragraph: 1}, s.offset)
		assert.Equal(t, PageOffset{Paragraph: 0, Char: 14}, s.layout.offset)
	})

	t.Run("nothing fits", func(t *testing.T) {
		source := Slice{NewParagraph(nil, "one")}
		_, rest := full.SplitTop(2)
		s := PageOffset{}.advance(rest, full, source, rules)
		assert.Equal(t, PageOffset{}, s.offset)
		assert.True(t, s.pageFull)
		assert.False(t, s.placed)
	})

	t.Run("spacing", func(t *testing.T) {
		source := Slice{NewParagraph(nil, "one"), NewParagraph(nil, "two")}
		s := PageOffset{}.advance(geometry.FromSize(10, 4), geometry.FromSize(10, 4), source, pageRules{spacing: 1})
		assert.Equal(t, geometry.Rect{X0: 0, Y0: 2, X1: 10, Y1: 4}, s.remaining)
	})
}

func TestKeepTogether(t *testing.T) {
	first := NewParagraph(nil, "aaaa bbbb cccc")
	key := NewParagraph(nil, "key")
	val := NewParagraph(nil, "vvvv wwww xxxx")
	full := geometry.FromSize(10, 4)

	t.Run("pair is moved to the next page", func(t *testing.T) {
		p := New(Slice{first, key.WithNoBreak(), val})
		p.Place(full)
		assert.Equal(t, 2, p.Pager().Total)
		assert.Equal(t, []geometry.Rect{{X0: 0, Y0: 0, X1: 10, Y1: 2}}, p.Visible())

		p.ChangePage(1)
		assert.Equal(t, PageOffset{Paragraph: 1}, p.Offset())
		assert.Equal(t, []geometry.Rect{
			{X0: 0, Y0: 0, X1: 10, Y1: 1},
			{X0: 0, Y0: 1, X1: 10, Y1: 3},
		}, p.Visible())
	})

	t.Run("without no-break the value is split", func(t *testing.T) {
		p := New(Slice{first, key, val})
		p.Place(full)
		assert.Equal(t, 2, p.Pager().Total)
		assert.Len(t, p.Visible(), 3)

		p.ChangePage(1)
		assert.Equal(t, 2, p.Offset().Paragraph)
		assert.Greater(t, p.Offset().Char, 0)
	})

	t.Run("never deferred at the top of a page", func(t *testing.T) {
		area := geometry.FromSize(10, 4)
		assert.False(t, shouldDefer(key, val, area, area, 1))
	})

	t.Run("pair fits the remaining space", func(t *testing.T) {
		_, rest := full.SplitTop(1)
		assert.False(t, shouldDefer(key, val, rest, full, 1))
	})

	t.Run("threshold scales with lines", func(t *testing.T) {
		// Key and value don't fit a page together, so only the
		// threshold defers them
		long := NewParagraph(nil, "vvvv wwww xxxx yyyy zzzz uuuu tttt ssss qqqq")
		_, rest := full.SplitTop(1)
		assert.False(t, shouldDefer(key, long, rest, full, 1))
		assert.True(t, shouldDefer(key, long, rest, full, 2))
	})

	t.Run("key taller than the remaining space", func(t *testing.T) {
		// The pair is taller than a page and the remaining space is
		// above the threshold, so only the key height defers them
		tall := geometry.FromSize(10, 6)
		_, rest := tall.SplitTop(3)
		value := NewParagraph(nil, "v1\nv2\nv3")
		require.Equal(t, 3, rest.Height())

		longKey := NewParagraph(nil, "k1\nk2\nk3\nk4")
		assert.True(t, shouldDefer(longKey, value, rest, tall, 1))

		shortKey := NewParagraph(nil, "k1\nk2")
		tallValue := NewParagraph(nil, "v1\nv2\nv3\nv4\nv5")
		assert.False(t, shouldDefer(shortKey, tallValue, rest, tall, 1))
	})
}
