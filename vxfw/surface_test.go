package vxfw_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/log"
	"git.sr.ht/~rockorager/vxpage/vxfw"
)

func TestWriteCellBoundsCheck(t *testing.T) {
	// Create a surface where Size claims more cells than Buffer actually has.
	s := vxfw.Surface{
		Size: vxfw.Size{
			Width:  100,
			Height: 100,
		},
		Buffer: make([]vxpage.Cell, 50),
	}

	cell := vxpage.Cell{
		Character: vxpage.Character{
			Grapheme: "x",
			Width:    1,
		},
	}

	// This should not panic even though the index would be out of bounds
	// if we only checked against Size.
	s.WriteCell(99, 99, cell)

	s.WriteCell(0, 0, cell)
	if s.Buffer[0].Character.Grapheme != "x" {
		t.Errorf("expected cell at (0,0) to be written, got %q", s.Buffer[0].Character.Grapheme)
	}
}

func TestSurfaceRenderChildren(t *testing.T) {
	parent := vxfw.NewSurface(6, 2, nil)
	vxpage.Print(parent.Window(), 0, 0, vxpage.Segment{Text: "ab"})

	child := vxfw.NewSurface(4, 1, nil)
	vxpage.Print(child.Window(), 0, 0, vxpage.Segment{Text: "wxyz"})
	// The child overflows the parent by two columns and is clipped
	parent.AddChild(4, 1, child)

	buf := vxpage.NewBuffer(8, 2)
	parent.Render(buf.Window())
	assert.Equal(t, "ab\n    wx", buf.String())
}

func TestPager(t *testing.T) {
	p := vxfw.Pager{Current: 0, Total: 3}
	assert.True(t, p.IsFirst())
	assert.False(t, p.IsLast())
	assert.Equal(t, 1, p.Next())
	assert.Equal(t, 0, p.Prev())

	p.Current = 2
	assert.True(t, p.IsLast())
	assert.True(t, p.HasPrev())
	assert.Equal(t, 2, p.Next())

	assert.True(t, vxfw.SinglePage().IsLast())
}

type named struct{}

func (named) Draw(vxfw.DrawContext) (vxfw.Surface, error) {
	return vxfw.Surface{}, nil
}

func TestDebugPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetLogger(nil)
	defer log.SetLevel(log.LevelError)

	root := vxfw.NewSurface(4, 2, nil)
	root.AddChild(0, 1, vxfw.NewSurface(2, 1, named{}))

	log.SetLevel(log.LevelWarn)
	vxfw.DebugPrint(root)
	assert.Empty(t, buf.String())

	log.SetLevel(log.LevelDebug)
	vxfw.DebugPrint(root)
	assert.Contains(t, buf.String(), "<nil> 4x2")
	assert.Contains(t, buf.String(), "    vxfw_test.named 2x1")
}
