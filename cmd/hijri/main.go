// Command hijri prints the Hijri date of a Gregorian date.
//
//	hijri                               today
//	hijri 1993-02-01T19:00:00Z          Monday, Sha'aban 8, 1413 7:00 PM
//	hijri 2024-04-09 --locale ar -a 0   الثلاثاء 1 شوّال 1445 00:00
//	hijri --jdn 2460410 --layout 2006-01-02
//	hijri --months --locale ar
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hijri:", err)
		os.Exit(1)
	}
}
