// Package langerr defines the language's error taxonomy: Syntax,
// Arity, Type and Runtime errors, each rendering as
// "<Kind> Error! <message>" for REPL and script consumers.
package langerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why evaluation failed.
type Kind int

const (
	KindSyntax Kind = iota
	KindArity
	KindType
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "Syntax"
	case KindArity:
		return "Arity"
	case KindType:
		return "Type"
	case KindRuntime:
		return "Runtime"
	default:
		return "Runtime"
	}
}

// Error is the language's single error type, tagged by Kind.
type Error struct {
	Kind Kind
	Msg  string

	// Arity-specific detail.
	Got, Want int

	// Cause, when this error wraps an underlying Go error (file I/O,
	// stdin reads) via github.com/pkg/errors.
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s Error! %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Syntax builds a Syntax error.
func Syntax(format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf(format, args...)}
}

// Arity builds an Arity error carrying the received and expected
// argument counts.
func Arity(got, want int) *Error {
	return &Error{
		Kind: KindArity,
		Msg:  fmt.Sprintf("the passed arguments length %d is different to expected length %d of the function's arguments", got, want),
		Got:  got,
		Want: want,
	}
}

// Type builds a Type error describing a mismatch between a produced
// value (rendered by the caller as its canonical printable form) and
// the expected class name.
func Type(gotPrintable, wantClass string) *Error {
	return &Error{
		Kind: KindType,
		Msg:  fmt.Sprintf("the result value `%s` is different to expected type `%s`", gotPrintable, wantClass),
	}
}

// Runtime builds a Runtime error from a plain message.
func Runtime(format string, args ...any) *Error {
	return &Error{Kind: KindRuntime, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a Runtime error around an underlying cause, keeping the
// cause reachable via errors.Unwrap. The cause is first annotated with
// errors.Wrapf so a %+v print of Cause carries a stack trace from the
// point of failure, the way db47h-ngaro wraps I/O errors.
func Wrap(cause error, format string, args ...any) *Error {
	wrapped := errors.Wrapf(cause, format, args...)
	return &Error{Kind: KindRuntime, Msg: fmt.Sprintf(format, args...), Cause: wrapped}
}
