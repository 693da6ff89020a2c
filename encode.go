package vxpage

import (
	"fmt"
	"io"
	"strings"
)

const (
	sgrReset = "\x1b[m"

	fgReset      = "\x1b[39m"
	bgReset      = "\x1b[49m"
	ulColorReset = "\x1b[59m"

	fgSet        = "\x1b[3%dm"
	fgBrightSet  = "\x1b[9%dm"
	bgSet        = "\x1b[4%dm"
	bgBrightSet  = "\x1b[10%dm"
	ssFgIndexSet = "\x1b[38:5:%dm"
	ssFgRGBSet   = "\x1b[38:2:%d:%d:%dm"
	ssBgIndexSet = "\x1b[48:5:%dm"
	ssBgRGBSet   = "\x1b[48:2:%d:%d:%dm"
	ulIndexSet   = "\x1b[58:5:%dm"
	ulRGBSet     = "\x1b[58:2::%d:%d:%dm"
	ulStyleSet   = "\x1b[4:%dm"

	boldSet          = "\x1b[1m"
	dimSet           = "\x1b[2m"
	italicSet        = "\x1b[3m"
	blinkSet         = "\x1b[5m"
	reverseSet       = "\x1b[7m"
	hiddenSet        = "\x1b[8m"
	strikethroughSet = "\x1b[9m"

	boldDimReset       = "\x1b[22m"
	italicReset        = "\x1b[23m"
	blinkReset         = "\x1b[25m"
	reverseReset       = "\x1b[27m"
	hiddenReset        = "\x1b[28m"
	strikethroughReset = "\x1b[29m"
)

// Encode writes the buffer to w as text styled with SGR sequences, one line
// per row. Unset cells are written as spaces
func (b *Buffer) Encode(w io.Writer) error {
	for row := 0; row < b.rows; row += 1 {
		line := encodeCells(b.Row(row))
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeCells(cells []Cell) string {
	bldr := &strings.Builder{}
	cursor := Style{}
	for col := 0; col < len(cells); {
		next := cells[col]
		writeStyle(bldr, cursor, next.Style)
		cursor = next.Style
		switch {
		case next.Grapheme == "":
			bldr.WriteString(" ")
			col += 1
		case next.Width > 1:
			bldr.WriteString(next.Grapheme)
			col += next.Width
		default:
			bldr.WriteString(next.Grapheme)
			col += 1
		}
	}
	if cursor != (Style{}) {
		bldr.WriteString(sgrReset)
	}
	return bldr.String()
}

// writeStyle writes the sequences to move from the cursor style to next
func writeStyle(bldr *strings.Builder, cursor Style, next Style) {
	if cursor.Foreground != next.Foreground {
		ps := next.Foreground.Params()
		switch len(ps) {
		case 0:
			_, _ = bldr.WriteString(fgReset)
		case 1:
			switch {
			case ps[0] < 8:
				fmt.Fprintf(bldr, fgSet, ps[0])
			case ps[0] < 16:
				fmt.Fprintf(bldr, fgBrightSet, ps[0]-8)
			default:
				fmt.Fprintf(bldr, ssFgIndexSet, ps[0])
			}
		case 3:
			fmt.Fprintf(bldr, ssFgRGBSet, ps[0], ps[1], ps[2])
		}
	}

	if cursor.Background != next.Background {
		ps := next.Background.Params()
		switch len(ps) {
		case 0:
			_, _ = bldr.WriteString(bgReset)
		case 1:
			switch {
			case ps[0] < 8:
				fmt.Fprintf(bldr, bgSet, ps[0])
			case ps[0] < 16:
				fmt.Fprintf(bldr, bgBrightSet, ps[0]-8)
			default:
				fmt.Fprintf(bldr, ssBgIndexSet, ps[0])
			}
		case 3:
			fmt.Fprintf(bldr, ssBgRGBSet, ps[0], ps[1], ps[2])
		}
	}

	if cursor.UnderlineColor != next.UnderlineColor {
		ps := next.UnderlineColor.Params()
		switch len(ps) {
		case 0:
			_, _ = bldr.WriteString(ulColorReset)
		case 1:
			_, _ = fmt.Fprintf(bldr, ulIndexSet, ps[0])
		case 3:
			_, _ = fmt.Fprintf(bldr, ulRGBSet, ps[0], ps[1], ps[2])
		}
	}

	if cursor.Attribute != next.Attribute {
		attr := cursor.Attribute
		// find the ones that have changed
		dAttr := attr ^ next.Attribute
		// If the bit is changed and in next, it was turned on
		on := dAttr & next.Attribute

		if on&AttrBold != 0 {
			_, _ = bldr.WriteString(boldSet)
		}
		if on&AttrDim != 0 {
			_, _ = bldr.WriteString(dimSet)
		}
		if on&AttrItalic != 0 {
			_, _ = bldr.WriteString(italicSet)
		}
		if on&AttrBlink != 0 {
			_, _ = bldr.WriteString(blinkSet)
		}
		if on&AttrReverse != 0 {
			_, _ = bldr.WriteString(reverseSet)
		}
		if on&AttrInvisible != 0 {
			_, _ = bldr.WriteString(hiddenSet)
		}
		if on&AttrStrikethrough != 0 {
			_, _ = bldr.WriteString(strikethroughSet)
		}

		// If the bit is changed and is in previous, it was turned off
		off := dAttr & attr
		if off&AttrBold != 0 {
			_, _ = bldr.WriteString(boldDimReset)
			// Normal intensity turns off dim. If it should be on,
			// let's turn it back on
			if next.Attribute&AttrDim != 0 {
				_, _ = bldr.WriteString(dimSet)
			}
		}
		if off&AttrDim != 0 {
			_, _ = bldr.WriteString(boldDimReset)
			// Normal intensity turns off bold. If it should be on,
			// let's turn it back on
			if next.Attribute&AttrBold != 0 {
				_, _ = bldr.WriteString(boldSet)
			}
		}
		if off&AttrItalic != 0 {
			_, _ = bldr.WriteString(italicReset)
		}
		if off&AttrBlink != 0 {
			_, _ = bldr.WriteString(blinkReset)
		}
		if off&AttrReverse != 0 {
			_, _ = bldr.WriteString(reverseReset)
		}
		if off&AttrInvisible != 0 {
			_, _ = bldr.WriteString(hiddenReset)
		}
		if off&AttrStrikethrough != 0 {
			_, _ = bldr.WriteString(strikethroughReset)
		}
	}

	if cursor.UnderlineStyle != next.UnderlineStyle {
		fmt.Fprintf(bldr, ulStyleSet, next.UnderlineStyle)
	}
}
