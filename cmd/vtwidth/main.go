// vtwidth is a utility to measure the width of a string as it will be laid
// out in pages
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~rockorager/vxpage"
)

func main() {
	var (
		verbose bool
		method  string
	)
	flag.BoolVar(&verbose, "v", false, "print verbose result")
	flag.BoolVar(&verbose, "verbose", false, "print verbose result")
	flag.StringVar(&method, "method", "unicode", "width method: unicode, nozwj or wcwidth")
	flag.Parse()

	m, ok := vxpage.ParseWidthMethod(method)
	if !ok {
		fmt.Printf("unknown width method %q\n", method)
		os.Exit(1)
	}
	vxpage.SetWidthMethod(m)

	var input string
	switch len(flag.Args()) {
	case 0:
		fmt.Print("Enter text: ")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		input = scanner.Text()
	case 1:
		input = flag.Arg(0)
	default:
		fmt.Println("multiple arguments not supported")
		os.Exit(1)
	}
	w := 0
	for _, char := range vxpage.Characters(input) {
		w += char.Width
	}
	fmt.Println(w)
	if verbose {
		out := "|" + strings.Repeat("-", w) + "|"
		fmt.Println(out)
		fmt.Println("|" + input + "|")
		for _, char := range vxpage.Characters(input) {
			fmt.Printf("%q\t%d\n", char.Grapheme, char.Width)
		}
	}
}
