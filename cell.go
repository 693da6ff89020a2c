package vxpage

// Cell represents a single cell in a grid: one grapheme and its style
type Cell struct {
	Character
	Style
}
