package vxpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemeWidth(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		unicodeWidth int
		wcwidthWidth int
		noZWJWidth   int
	}{
		{
			name:         "a",
			input:        "a",
			unicodeWidth: 1,
			wcwidthWidth: 1,
			noZWJWidth:   1,
		},
		{
			name:         "wide cjk",
			input:        "日本",
			unicodeWidth: 4,
			wcwidthWidth: 4,
			noZWJWidth:   4,
		},
		{
			name:         "emoji with ZWJ",
			input:        "\U0001F469\u200D\U0001F680",
			unicodeWidth: 2,
			wcwidthWidth: 4,
			noZWJWidth:   4,
		},
		{
			name:         "emoji with VS16 selector",
			input:        "\xE2\x9D\xA4\xEF\xB8\x8F",
			unicodeWidth: 2,
			wcwidthWidth: 1,
			noZWJWidth:   2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.unicodeWidth, gwidth(test.input, WidthUnicode))
			assert.Equal(t, test.wcwidthWidth, gwidth(test.input, WidthWcwidth))
			assert.Equal(t, test.noZWJWidth, gwidth(test.input, WidthNoZWJ))
		})
	}
}

func TestParseWidthMethod(t *testing.T) {
	m, ok := ParseWidthMethod("wcwidth")
	assert.True(t, ok)
	assert.Equal(t, WidthWcwidth, m)

	m, ok = ParseWidthMethod("bogus")
	assert.False(t, ok)
	assert.Equal(t, WidthUnicode, m)
}

func TestCharactersExpandsTabs(t *testing.T) {
	chars := Characters("a\tb")
	assert.Len(t, chars, 10)
	assert.Equal(t, "a", chars[0].Grapheme)
	assert.Equal(t, " ", chars[1].Grapheme)
	assert.Equal(t, "b", chars[9].Grapheme)
}
