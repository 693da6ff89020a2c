package text

import (
	"strings"

	"git.sr.ht/~rockorager/vxpage"
	"github.com/rivo/uniseg"
)

// span is the part of a text drawn on one line
type span struct {
	// bytes of text drawn on the line
	length int
	// cells occupied by the drawn text
	width int
	// bytes skipped after the drawn text, such as the whitespace or line
	// break the line was broken at
	skip int
	// the text continues on another line
	lineBreak bool
	// a hyphen is appended to the drawn text
	hyphen bool
}

func isLineBreak(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n" || cluster == "\r"
}

func isWhitespace(cluster string) bool {
	return cluster == " " || cluster == "\t" || isLineBreak(cluster)
}

func clusterWidth(cluster string) int {
	if cluster == "\t" {
		return 8
	}
	return vxpage.StringWidth(cluster)
}

// fitHorizontally returns the longest span of text fitting maxWidth cells.
// The span always makes progress on non-empty text: a first grapheme wider
// than maxWidth is returned on its own
func fitHorizontally(text string, maxWidth int, breaking LineBreaking) span {
	hyphenWidth := vxpage.StringWidth(hyphen)

	// The span returned when the line has to break. Its initial value is
	// used when no break point was found
	line := span{lineBreak: true}

	var (
		width         int
		anyWhitespace bool
		afterBlank    bool
		i             int
		state         = -1
		cluster       string
	)
	rest := text
	for rest != "" {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := clusterWidth(cluster)
		switch {
		case isLineBreak(cluster):
			if width > maxWidth {
				return line
			}
			return span{
				length:    i,
				width:     width,
				skip:      len(cluster),
				lineBreak: true,
			}
		case isWhitespace(cluster):
			if width > maxWidth {
				return line
			}
			if !afterBlank {
				// Break before the whitespace, without hyphen. The
				// whole run of blanks is skipped
				line = span{
					length:    i,
					width:     width,
					skip:      len(cluster) + len(rest) - len(strings.TrimLeft(rest, " \t")),
					lineBreak: true,
				}
			}
			anyWhitespace = true
		case width+w > maxWidth:
			if line.length == 0 && line.skip == 0 {
				if i == 0 {
					return span{
						length:    len(cluster),
						width:     w,
						lineBreak: rest != "",
					}
				}
				// No room was left for a hyphen
				return span{length: i, width: width, lineBreak: true}
			}
			return line
		default:
			canBreakWord := breaking == BreakWordsAndInsertHyphen || !anyWhitespace
			if canBreakWord && width+w+hyphenWidth <= maxWidth {
				// Break after this grapheme, append hyphen
				line = span{
					length:    i + len(cluster),
					width:     width + w,
					lineBreak: true,
					hyphen:    true,
				}
			}
		}
		afterBlank = isWhitespace(cluster)
		width += w
		i += len(cluster)
	}

	if width > maxWidth {
		// Only trailing whitespace overflows
		return line
	}
	// The whole text fits
	return span{length: len(text), width: width}
}
