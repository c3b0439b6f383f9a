// Package eval implements the tree-walking evaluator: recursive,
// eager, left-to-right argument evaluation over a mutable binding
// scope, plus the standard library of built-in procedures.
package eval

import (
	"github.com/gradia-lang/gradia/langerr"
	"github.com/gradia-lang/gradia/lexer"
	"github.com/gradia-lang/gradia/parser"
	"github.com/gradia-lang/gradia/value"
)

// Eval evaluates one annotated expression under sc, checking its
// annotation (if any) against the produced result before returning.
func Eval(ae value.AnnotatedExpr, sc value.Scope) (value.Value, error) {
	result, err := evalInner(ae.Value, sc)
	if err != nil {
		return value.Value{}, err
	}

	if ae.Annotation != nil {
		if result.GetType() != ae.Annotation.Name() {
			return value.Value{}, langerr.Type(result.String(), ae.Annotation.Name())
		}
	}
	return result, nil
}

func evalInner(v value.Value, sc value.Scope) (value.Value, error) {
	switch v.Tag {
	case value.TagExpr:
		return evalExpr(v, sc)
	case value.TagSymbol:
		if bound, ok := sc.Get(v.Text); ok {
			return bound, nil
		}
		return v, nil
	default:
		return v, nil
	}
}

// evalExpr evaluates every child left-to-right under sc (mutations by
// one child are visible to the next), then applies the head to the
// remaining results.
func evalExpr(v value.Value, sc value.Scope) (value.Value, error) {
	results := make([]value.Value, 0, len(v.Items))
	for _, item := range v.Items {
		r, err := Eval(item, sc)
		if err != nil {
			return value.Value{}, err
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		return value.Value{}, langerr.Syntax("empty expression has no function to apply")
	}

	head := results[0]
	args := results[1:]

	switch {
	case head.Tag == value.TagFunction && head.Native != nil:
		return head.Native(args, sc)

	case head.Tag == value.TagFunction && head.User != nil:
		return callUser(head.User, args, sc)

	default:
		return value.Value{}, langerr.Syntax("first atom in expression should be function, but provided `%s` is not function", head.String())
	}
}

// callUser binds args into a clone of the caller's current scope and
// runs the function body under that clone. Definitions inside the body
// do not escape back to the caller.
func callUser(fn *value.UserFunction, args []value.Value, sc value.Scope) (value.Value, error) {
	if len(fn.Params) != len(args) {
		return value.Value{}, langerr.Arity(len(args), len(fn.Params))
	}

	callScope := sc.Clone()
	for i, param := range fn.Params {
		arg := args[i]
		if param.Annotation != nil {
			if arg.GetType() != param.Annotation.Name() {
				return value.Value{}, langerr.Type(arg.String(), param.Annotation.Name())
			}
		}
		callScope.Set(param.Value.GetString(), arg)
	}

	result := value.Null
	for _, line := range fn.Body {
		lineValue := line
		if lineValue.Tag == value.TagList {
			lineValue = value.Expr(lineValue.Items)
		}
		r, err := Eval(value.Plain(lineValue), callScope)
		if err != nil {
			return value.Value{}, err
		}
		result = r
	}
	return result, nil
}

// EvalLines tokenizes, parses and evaluates source one top-level line at
// a time under sc, calling visit with each line's result or error, and
// stopping at the first error — the shared loop behind both the REPL
// and the script/one-liner runner.
func EvalLines(sc value.Scope, source string, visit func(value.Value, error)) {
	lines, err := lexer.Tokenize(source)
	if err != nil {
		visit(value.Value{}, err)
		return
	}

	for _, tok := range lines {
		ae, err := parser.Parse(tok)
		if err != nil {
			visit(value.Value{}, err)
			return
		}
		r, err := Eval(ae, sc)
		visit(r, err)
		if err != nil {
			return
		}
	}
}
