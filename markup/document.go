package markup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/vxfw/paragraphs"
	"git.sr.ht/~rockorager/vxpage/vxfw/text"
)

var (
	// ErrUnknownStyle is returned for text using a style which wasn't
	// declared
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidOption is returned for options with a missing or
	// malformed value, and for unknown options
	ErrInvalidOption = errors.New("invalid option")
)

// DefaultStyleName is the name of the style declared in every document
const DefaultStyleName = "default"

// Paragraphs returns the paragraphs of d
func (d *Document) Paragraphs() (paragraphs.Slice, error) {
	styles := map[string]*text.Style{
		DefaultStyleName: &paragraphs.DefaultStyle,
	}
	pars := paragraphs.Slice{}
	for _, stmt := range d.Statements {
		switch {
		case stmt.Style != nil:
			style, err := stmt.Style.style()
			if err != nil {
				return nil, err
			}
			styles[stmt.Style.Name] = style
		case stmt.Text != nil:
			style, ok := styles[stmt.Text.Style]
			if !ok {
				return nil, fmt.Errorf("%s: %w %q", stmt.Text.Pos, ErrUnknownStyle, stmt.Text.Style)
			}
			par, err := stmt.Text.paragraph(style)
			if err != nil {
				return nil, err
			}
			pars = append(pars, par)
		}
	}
	return pars, nil
}

func (o *Option) invalid() error {
	if o.Value == nil {
		return fmt.Errorf("%s: %w %s", o.Pos, ErrInvalidOption, o.Key)
	}
	return fmt.Errorf("%s: %w %s=%s", o.Pos, ErrInvalidOption, o.Key, *o.Value)
}

func (o *Option) value() (string, error) {
	if o.Value == nil {
		return "", o.invalid()
	}
	if strings.HasPrefix(*o.Value, `"`) {
		v, err := strconv.Unquote(*o.Value)
		if err != nil {
			return "", o.invalid()
		}
		return v, nil
	}
	return *o.Value, nil
}

func (o *Option) integer() (int, error) {
	v, err := o.value()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, o.invalid()
	}
	return n, nil
}

func (o *Option) color() (vxpage.Color, error) {
	v, err := o.value()
	if err != nil {
		return 0, err
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 8 {
			// Alpha is not drawn
			hex = hex[:6]
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, o.invalid()
		}
		return vxpage.HexColor(uint32(n)), nil
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, o.invalid()
	}
	return vxpage.IndexColor(uint8(n)), nil
}

func (s *StyleDecl) style() (*text.Style, error) {
	style := text.NewStyle(vxpage.Style{})
	var err error
	for _, opt := range s.Options {
		switch opt.Key {
		case "fg":
			style.Text.Foreground, err = opt.color()
		case "bg":
			style.Text.Background, err = opt.color()
		case "bold":
			style.Text.Attribute |= vxpage.AttrBold
		case "dim":
			style.Text.Attribute |= vxpage.AttrDim
		case "italic":
			style.Text.Attribute |= vxpage.AttrItalic
		case "reverse":
			style.Text.Attribute |= vxpage.AttrReverse
		case "strikethrough":
			style.Text.Attribute |= vxpage.AttrStrikethrough
		case "underline":
			style.Text.UnderlineStyle = vxpage.UnderlineSingle
		case "line-height":
			style.LineHeight, err = opt.integer()
			if err == nil && style.LineHeight < 1 {
				err = opt.invalid()
			}
		case "breaking":
			var v string
			v, err = opt.value()
			switch {
			case err != nil:
			case v == "whitespace":
				style.LineBreaking = text.BreakAtWhitespace
			case v == "hyphen":
				style.LineBreaking = text.BreakWordsAndInsertHyphen
			default:
				err = opt.invalid()
			}
		case "ellipsis":
			var v string
			v, err = opt.value()
			switch {
			case err != nil:
			case v == "none":
				style.PageBreaking = text.Cut
			case v == "end":
				style.PageBreaking = text.CutAndInsertEllipsis
			case v == "both":
				style.PageBreaking = text.CutAndInsertEllipsisBoth
			default:
				err = opt.invalid()
			}
		default:
			err = opt.invalid()
		}
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", s.Name, err)
		}
	}
	// Inserted hyphens and ellipses look like the text
	style.Hyphen = style.Text
	style.Ellipsis = style.Text
	return &style, nil
}

func (t *TextDecl) paragraph(style *text.Style) (paragraphs.Paragraph, error) {
	par := paragraphs.NewParagraph(style, string(t.Content))
	var err error
	for _, opt := range t.Options {
		switch opt.Key {
		case "break-after":
			par = par.WithBreakAfter()
		case "no-break":
			par = par.WithNoBreak()
		case "align":
			var v string
			v, err = opt.value()
			if err == nil {
				a, ok := geometry.ParseAlignment(v)
				if !ok {
					err = opt.invalid()
				}
				par = par.WithAlign(a)
			}
		case "pad-top":
			par.PaddingTop, err = opt.integer()
		case "pad-bottom":
			par.PaddingBottom, err = opt.integer()
		default:
			err = opt.invalid()
		}
		if err != nil {
			return paragraphs.Paragraph{}, err
		}
	}
	return par, nil
}
