package vxpage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  string
	}{
		{
			name: "plain",
			cells: []Cell{
				{Character: Character{"a", 1}},
				{Character: Character{"b", 1}},
			},
			want: "ab",
		},
		{
			name: "bold then plain",
			cells: []Cell{
				{Character: Character{"a", 1}, Style: Style{Attribute: AttrBold}},
				{Character: Character{"b", 1}},
			},
			want: "\x1b[1ma\x1b[22mb",
		},
		{
			name: "indexed foreground",
			cells: []Cell{
				{Character: Character{"a", 1}, Style: Style{Foreground: IndexColor(1)}},
			},
			want: "\x1b[31ma\x1b[m",
		},
		{
			name: "bright background",
			cells: []Cell{
				{Character: Character{"a", 1}, Style: Style{Background: IndexColor(9)}},
			},
			want: "\x1b[101ma\x1b[m",
		},
		{
			name: "rgb foreground",
			cells: []Cell{
				{Character: Character{"a", 1}, Style: Style{Foreground: RGBColor(1, 2, 3)}},
			},
			want: "\x1b[38:2:1:2:3ma\x1b[m",
		},
		{
			name: "unset cells",
			cells: []Cell{
				{},
				{Character: Character{"a", 1}},
			},
			want: " a",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, encodeCells(test.cells))
		})
	}
}

func TestBufferEncode(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetCell(0, 0, Cell{Character: Character{"x", 1}})
	buf.SetCell(1, 1, Cell{Character: Character{"y", 1}})

	out := &bytes.Buffer{}
	require.NoError(t, buf.Encode(out))
	assert.Equal(t, "x \n y\n", out.String())
}
