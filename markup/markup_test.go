package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/markup"
	"git.sr.ht/~rockorager/vxpage/vxfw/paragraphs"
	"git.sr.ht/~rockorager/vxpage/vxfw/text"
)

const sample = `
// Confirm a transaction
style label bold fg=#a0a0a0
# the amount is large
style amount line-height=2 ellipsis=both breaking=hyphen bg=4

text label no-break "Amount:"
text amount align=end pad-bottom=1 "0.001 BTC"
text default break-after "Fee\tincluded"
text default align="center" pad-top=2 "Done"
`

func TestParseDocument(t *testing.T) {
	doc, err := markup.ParseString(sample)
	require.NoError(t, err)
	require.Len(t, doc.Statements, 6)

	assert.Equal(t, "label", doc.Statements[0].Style.Name)
	require.Len(t, doc.Statements[0].Style.Options, 2)
	assert.Equal(t, "fg", doc.Statements[0].Style.Options[1].Key)
	assert.Equal(t, "#a0a0a0", *doc.Statements[0].Style.Options[1].Value)
	assert.Equal(t, "Fee\tincluded", string(doc.Statements[4].Text.Content))
}

func TestParagraphs(t *testing.T) {
	doc, err := markup.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	pars, err := doc.Paragraphs()
	require.NoError(t, err)
	require.Len(t, pars, 4)

	label := pars[0]
	assert.Equal(t, "Amount:", label.Content)
	assert.True(t, label.NoBreak)
	assert.Equal(t, vxpage.AttrBold, label.Style.Text.Attribute)
	assert.Equal(t, vxpage.HexColor(0xa0a0a0), label.Style.Text.Foreground)

	amount := pars[1]
	assert.Equal(t, text.AlignEnd, amount.Align)
	assert.Equal(t, 1, amount.PaddingBottom)
	assert.Equal(t, 2, amount.Style.LineHeight)
	assert.Equal(t, text.CutAndInsertEllipsisBoth, amount.Style.PageBreaking)
	assert.Equal(t, text.BreakWordsAndInsertHyphen, amount.Style.LineBreaking)
	assert.Equal(t, vxpage.IndexColor(4), amount.Style.Text.Background)

	assert.True(t, pars[2].BreakAfter)
	assert.Same(t, &paragraphs.DefaultStyle, pars[2].Style)
	assert.Equal(t, text.AlignCenter, pars[3].Align)
	assert.Equal(t, 2, pars[3].PaddingTop)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{
			name:  "unknown style",
			input: `text heading "Title"`,
			err:   markup.ErrUnknownStyle,
		},
		{
			name:  "style used before declaration",
			input: "text late \"x\"\nstyle late bold",
			err:   markup.ErrUnknownStyle,
		},
		{
			name:  "unknown style option",
			input: `style s blink`,
			err:   markup.ErrInvalidOption,
		},
		{
			name:  "bad line height",
			input: `style s line-height=0`,
			err:   markup.ErrInvalidOption,
		},
		{
			name:  "bad alignment",
			input: `text default align=middle-ish "x"`,
			err:   markup.ErrInvalidOption,
		},
		{
			name:  "missing padding value",
			input: `text default pad-top "x"`,
			err:   markup.ErrInvalidOption,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := markup.ParseString(test.input)
			require.NoError(t, err)
			_, err = doc.Paragraphs()
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := markup.ParseString(`text default`)
	assert.Error(t, err)

	_, err = markup.ParseString(`paragraph "x"`)
	assert.Error(t, err)
}
