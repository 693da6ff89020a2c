package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTop(t *testing.T) {
	r := Rect{X0: 1, Y0: 2, X1: 11, Y1: 7}

	top, rest := r.SplitTop(2)
	assert.Equal(t, Rect{1, 2, 11, 4}, top)
	assert.Equal(t, Rect{1, 4, 11, 7}, rest)

	top, rest = r.SplitTop(10)
	assert.Equal(t, r, top)
	assert.True(t, rest.IsEmpty())
	assert.Equal(t, 0, rest.Height())

	top, rest = r.SplitTop(-1)
	assert.Equal(t, 0, top.Height())
	assert.Equal(t, r, rest)
}

func TestSplitLeft(t *testing.T) {
	left, rest := FromSize(10, 3).SplitLeft(3)
	assert.Equal(t, Rect{0, 0, 3, 3}, left)
	assert.Equal(t, Rect{3, 0, 10, 3}, rest)
}

func TestUnion(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{5, 1, 6, 8}
	assert.Equal(t, Rect{0, 0, 6, 8}, a.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, b, Rect{}.Union(b))
}

func TestInset(t *testing.T) {
	r := FromSize(10, 4)
	assert.Equal(t, Rect{1, 1, 9, 3}, r.Inset(Uniform(1)))
	assert.Equal(t, Rect{0, 3, 10, 4}, r.Inset(Top(3)))
	assert.Equal(t, 0, r.Inset(Top(8)).Height())
	assert.Equal(t, Rect{2, 0, 10, 4}, r.Inset(Left(2)))
}

func TestContains(t *testing.T) {
	r := Rect{1, 1, 3, 3}
	assert.True(t, r.Contains(Point{1, 1}))
	assert.True(t, r.Contains(Point{2, 2}))
	assert.False(t, r.Contains(Point{3, 2}))
}

func TestArrange(t *testing.T) {
	area := FromSize(10, 10)
	tests := []struct {
		name      string
		placement LinearPlacement
		want      []Rect
	}{
		{
			name:      "vertical start",
			placement: NewVertical(),
			want:      []Rect{{0, 0, 10, 2}, {0, 2, 10, 5}},
		},
		{
			name:      "vertical start spacing",
			placement: NewVertical().WithSpacing(1),
			want:      []Rect{{0, 0, 10, 2}, {0, 3, 10, 6}},
		},
		{
			name:      "vertical center",
			placement: NewVertical().WithAlign(Center),
			want:      []Rect{{0, 2, 10, 4}, {0, 4, 10, 7}},
		},
		{
			name:      "vertical end",
			placement: NewVertical().WithAlign(End),
			want:      []Rect{{0, 5, 10, 7}, {0, 7, 10, 10}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			items := []Rect{
				{X0: 0, Y0: 4, X1: 10, Y1: 6},
				{X0: 0, Y0: 0, X1: 10, Y1: 3},
			}
			test.placement.Arrange(area, items)
			assert.Equal(t, test.want, items)
		})
	}
}

func TestArrangeHorizontalCross(t *testing.T) {
	items := []Rect{FromSize(2, 2), FromSize(3, 4)}
	NewHorizontal().WithCrossAlign(Center).Arrange(FromSize(10, 6), items)
	assert.Equal(t, []Rect{{0, 2, 2, 4}, {2, 1, 5, 5}}, items)
}

func TestParseAlignment(t *testing.T) {
	a, ok := ParseAlignment("center")
	assert.True(t, ok)
	assert.Equal(t, Center, a)

	a, ok = ParseAlignment("sideways")
	assert.False(t, ok)
	assert.Equal(t, Start, a)
}
