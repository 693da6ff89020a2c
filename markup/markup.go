// Package markup parses documents of styled paragraphs.
//
// A document is a list of statements, one per line. Styles are declared
// before use, and each text statement is one paragraph:
//
//	// Comments start with // or #
//	style label bold fg=#a0a0a0
//	style amount line-height=2 ellipsis=both
//	text label no-break "Amount:"
//	text amount align=end pad-bottom=1 "0.001 BTC"
//
// The style named default is always declared.
package markup

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `=`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Document is the root node of a markup file
type Document struct {
	Statements []*Statement `parser:"( Newline | @@ )*"`
}

// Statement declares a style or a paragraph
type Statement struct {
	Style *StyleDecl `parser:"  @@"`
	Text  *TextDecl  `parser:"| @@"`
}

// StyleDecl declares a named text style
type StyleDecl struct {
	Pos     lexer.Position `parser:""`
	Name    string         `parser:"'style' @Ident"`
	Options []*Option      `parser:"@@*"`
}

// TextDecl is one paragraph
type TextDecl struct {
	Pos     lexer.Position `parser:""`
	Style   string         `parser:"'text' @Ident"`
	Options []*Option      `parser:"@@*"`
	Content StringLiteral  `parser:"@String"`
}

// Option is a flag or a key=value pair
type Option struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@Ident"`
	Value *string        `parser:"( '=' @( Ident | Number | Color | String ) )?"`
}

// StringLiteral unquotes Go-style strings on capture
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a document from r
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses a document from input
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
