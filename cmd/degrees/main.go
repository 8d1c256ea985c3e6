// Command degrees answers degree-of-separation queries over a PGN game
// database, interactively, from the command line or over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
