// Command gradia is the Gradia language interpreter: run a script file,
// a one-liner, or fall back to an interactive REPL.
package main

import (
	"os"

	"github.com/gradia-lang/gradia/internal/cliapp"
)

func main() {
	os.Exit(cliapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
