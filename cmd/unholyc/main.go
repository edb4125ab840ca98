// Command unholyc is the command-line driver for the Unholy front end: it
// reads a source file, runs it through internal/syntax's scanner and
// parser, and renders the result or its diagnostic.
package main

import (
	"fmt"
	"os"

	"github.com/unholy-lang/unholy/cmd/unholyc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
