// Package cliapp wires together flag parsing, script loading and the
// REPL fallback into the gradia command-line program, in the same
// single-file-main style as tinkerator-algex's algex.go.
package cliapp

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/gradia-lang/gradia/eval"
	"github.com/gradia-lang/gradia/internal/repl"
	"github.com/gradia-lang/gradia/value"
)

// Version is the interpreter's reported version string.
const Version = "0.1.0"

// Run parses argv, runs a script/one-liner if given, or falls back to
// the REPL, and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gradia", flag.ContinueOnError)
	fs.SetOutput(stderr)
	oneLiner := fs.String("l", "", "run CODE and exit")
	fs.StringVar(oneLiner, "one-liner", "", "run CODE and exit")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	sc := eval.Builtins()

	switch {
	case *oneLiner != "":
		return runSource(sc, *oneLiner, stdout, stderr)

	case fs.NArg() > 0:
		path := fs.Arg(0)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(stderr, errors.Wrapf(err, "opening script %q", path))
			return 1
		}
		return runSource(sc, string(data), stdout, stderr)

	default:
		fmt.Fprintf(stdout, "Gradia %s\n", Version)
		repl.Run(sc, stdout)
		return 0
	}
}

// runSource tokenizes and evaluates every top-level line of source
// under sc, stopping and reporting the first error. print is rebound to
// write to stdout rather than the process's standard output. A bare `exit` call
// terminates the process directly via os.Exit, bypassing this return.
// An uncaught error is both reported to stderr for the user and logged
// via the standard `log` package, the way pkelchte-scm logs its own
// eval/apply failures with log.Println.
func runSource(sc value.Scope, source string, stdout, stderr io.Writer) int {
	sc.Set("print", value.NativeFunc(func(args []value.Value, _ value.Scope) (value.Value, error) {
		for _, a := range args {
			fmt.Fprint(stdout, a.GetString())
		}
		return value.Null, nil
	}))
	code := 0
	eval.EvalLines(sc, source, func(_ value.Value, err error) {
		if err != nil {
			log.Println(err.Error())
			fmt.Fprintln(stderr, err.Error())
			code = 1
		}
	})
	return code
}
