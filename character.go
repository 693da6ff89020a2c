package vxpage

import "github.com/rivo/uniseg"

// Character is a single extended-grapheme-cluster. It also contains the width
// of the EGC
type Character struct {
	Grapheme string
	Width    int
}

// Characters converts a string into a slice of Characters suitable to assign
// to cells. Tabs are expanded to eight spaces
func Characters(s string) []Character {
	egcs := make([]Character, 0, len(s))
	state := -1
	cluster := ""
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			for i := 0; i < 8; i += 1 {
				egcs = append(egcs, Character{" ", 1})
			}
			continue
		}
		egcs = append(egcs, Character{cluster, StringWidth(cluster)})
	}
	return egcs
}
