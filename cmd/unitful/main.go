// Package main provides the CLI entrypoint for unitful.
//
// unitful evaluates quantity expressions with dimensional checking:
//
//	unitful 9.81m/s2            canonical display, e.g. 9.81[L/T2]
//	unitful -as .2km/h 30m/s    reformat against another unit
//	unitful -dim 1N             print the dimension's canonical name
package main

import (
	"flag"
	"fmt"
	"os"

	"unitful/dim"
	"unitful/quantity"
)

func main() {
	as := flag.String("as", "", "format spec: fixed-point prefix followed by a unit expression")
	dimOnly := flag.Bool("dim", false, "print the canonical dimension name instead of the value")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: unitful [-as formatspec] [-dim] <expression>")
		os.Exit(2)
	}

	v, err := quantity.Parse(flag.Arg(0))
	if err != nil {
		fail(err)
	}

	if *dimOnly {
		fmt.Println(quantity.DimOf(v, dim.SI).Name())
		return
	}

	out, err := quantity.Format(v, *as)
	if err != nil {
		fail(err)
	}

	fmt.Println(out)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "unitful:", err)
	os.Exit(1)
}
