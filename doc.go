// Package vxpage is the cell grid paragraphs are laid out on: styled cells,
// windows into a grid, grapheme widths and an in-memory buffer which encodes
// to text or SGR styled output.
//
// The layout engine lives in [git.sr.ht/~rockorager/vxpage/vxfw/text] (single
// paragraphs) and [git.sr.ht/~rockorager/vxpage/vxfw/paragraphs] (pages of
// paragraphs and checklists).
package vxpage
