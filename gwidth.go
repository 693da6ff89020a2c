package vxpage

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how the width of a grapheme is measured. Terminals
// disagree on this, so the method should match the display the pages are
// laid out for
type WidthMethod int

const (
	// WidthUnicode measures graphemes per the Unicode standard
	WidthUnicode WidthMethod = iota
	// WidthNoZWJ measures like WidthUnicode, but treats zero-width-joiner
	// sequences as separate graphemes
	WidthNoZWJ
	// WidthWcwidth sums the wcwidth of each rune
	WidthWcwidth
)

var widthMethod = WidthUnicode

// SetWidthMethod sets the method used by [StringWidth] and [Characters]
func SetWidthMethod(m WidthMethod) {
	widthMethod = m
}

// ParseWidthMethod parses the name of a width method. Unknown names return
// WidthUnicode and false
func ParseWidthMethod(name string) (WidthMethod, bool) {
	switch strings.ToLower(name) {
	case "", "unicode":
		return WidthUnicode, true
	case "nozwj", "no-zwj":
		return WidthNoZWJ, true
	case "wcwidth":
		return WidthWcwidth, true
	default:
		return WidthUnicode, false
	}
}

// StringWidth returns the number of cells s occupies
func StringWidth(s string) int {
	return gwidth(s, widthMethod)
}

func gwidth(s string, method WidthMethod) int {
	switch method {
	case WidthNoZWJ:
		s = strings.ReplaceAll(s, "\u200D", "")
		return uniseg.StringWidth(s)
	case WidthUnicode:
		return uniseg.StringWidth(s)
	default:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	}
}
