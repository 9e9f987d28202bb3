// Command pluralcheck prints the plural category a language needs for a
// count, or a table of categories for a range of counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	pluralize "github.com/goliatone/go-pluralize"
)

func main() {
	var (
		tag   = flag.String("lang", "en", "language tag, e.g. ru, pt-BR, ar_SA")
		upto  = flag.Int("table", -1, "print categories for counts 0..N instead of a single count")
		count = 1
	)

	flag.Parse()

	if *upto >= 0 {
		printTable(*tag, *upto)
		return
	}

	if args := flag.Args(); len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "pluralcheck: invalid count %q\n", args[0])
			os.Exit(1)
		}
		count = parsed
	}

	fmt.Println(pluralize.ResolveCategory(*tag, count))
}

func printTable(tag string, upto int) {
	family := pluralize.FamilyFor(tag)
	fmt.Printf("%s => %s (forms: %v)\n", tag, family.Name, family.Categories())
	for n := 0; n <= upto; n++ {
		fmt.Printf("%4d  %s\n", n, family.Category(n))
	}
}
