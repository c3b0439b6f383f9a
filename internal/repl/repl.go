// Package repl implements Gradia's interactive read-eval-print loop,
// line editing and history courtesy of zappem.net/pub/io/lined, in the
// same shape as tinkerator-algex's interactive algex explorer.
package repl

import (
	"fmt"
	"io"

	"zappem.net/pub/io/lined"

	"github.com/gradia-lang/gradia/eval"
	"github.com/gradia-lang/gradia/value"
)

// Prompt is printed before every line read from the terminal.
const Prompt = "> "

// Run drives the loop: read a line, tokenize and parse it into
// top-level expressions, evaluate each under sc, print results or
// errors, and repeat until EOF. out receives result and error text;
// sc persists bindings across lines, the way a single algex session
// keeps one vars map for its whole lifetime.
func Run(sc value.Scope, out io.Writer) {
	t := lined.NewReader()
	fmt.Fprintln(out, "Gradia REPL. Ctrl-D to exit.")

	for {
		fmt.Fprint(out, Prompt)
		line, err := t.ReadString()
		if err != nil {
			fmt.Fprintln(out, "Bye.")
			return
		}
		if line == "" {
			continue
		}
		evalLine(sc, line, out)
	}
}

func evalLine(sc value.Scope, line string, out io.Writer) {
	eval.EvalLines(sc, line, func(result value.Value, err error) {
		if err != nil {
			fmt.Fprintln(out, err.Error())
			return
		}
		if result.Tag != value.TagNull {
			fmt.Fprintln(out, result.String())
		}
	})
}
