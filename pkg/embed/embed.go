// Package embed lets a host program run Gradia source and capture its
// output without a terminal, the way gradia-wasm's lib.rs rebinds
// `print` to append to a `stdout` scope slot instead of writing to the
// real standard output.
package embed

import (
	"strings"

	"github.com/gradia-lang/gradia/eval"
	"github.com/gradia-lang/gradia/lexer"
	"github.com/gradia-lang/gradia/parser"
	"github.com/gradia-lang/gradia/value"
)

const stdoutSlot = "stdout"

// NewScope returns a fresh builtin scope suitable for Run/Eval.
func NewScope() value.Scope {
	return eval.Builtins()
}

// BindStdout rebinds print so it appends to a "stdout" string binding
// inside sc instead of writing to the process's real stdout, and seeds
// that binding with the empty string.
func BindStdout(sc value.Scope) {
	sc.Set(stdoutSlot, value.String(""))
	sc.Set("print", value.NativeFunc(func(args []value.Value, _ value.Scope) (value.Value, error) {
		var b strings.Builder
		if prior, ok := sc.Get(stdoutSlot); ok {
			b.WriteString(prior.GetString())
		}
		for _, a := range args {
			b.WriteString(a.GetString())
		}
		sc.Set(stdoutSlot, value.String(b.String()))
		return value.Null, nil
	}))
}

// Stdout returns the text accumulated by a print-rebound scope set up
// with BindStdout. It returns the empty string if BindStdout was never
// called on sc.
func Stdout(sc value.Scope) string {
	v, ok := sc.Get(stdoutSlot)
	if !ok {
		return ""
	}
	return v.GetString()
}

// Run tokenizes and evaluates every top-level line of source under sc,
// stopping at the first error.
func Run(sc value.Scope, source string) error {
	lines, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	for _, tok := range lines {
		ae, err := parser.Parse(tok)
		if err != nil {
			return err
		}
		if _, err := eval.Eval(ae, sc); err != nil {
			return err
		}
	}
	return nil
}

// Eval runs source under sc and returns the canonical printable form
// of its final line's result, or the error text if evaluation failed.
func Eval(sc value.Scope, source string) string {
	lines, err := lexer.Tokenize(source)
	if err != nil {
		return err.Error()
	}

	result := value.Null
	for _, tok := range lines {
		ae, err := parser.Parse(tok)
		if err != nil {
			return err.Error()
		}
		r, err := eval.Eval(ae, sc)
		if err != nil {
			return err.Error()
		}
		result = r
	}
	return result.String()
}
