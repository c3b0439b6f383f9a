// Package value implements the tagged runtime value model shared by the
// lexer, parser and evaluator: functions, expression trees, quoted
// lists, symbols, numbers, strings, booleans and null.
package value

import (
	"fmt"
	"strings"

	"github.com/gradia-lang/gradia/frac"
)

// Tag identifies which variant a Value holds.
type Tag int

const (
	TagFunction Tag = iota
	TagExpr
	TagList
	TagSymbol
	TagNumber
	TagString
	TagBool
	TagNull
)

// typeName is the canonical runtime type-name string for each Tag, as
// returned by GetType and used by annotation checks.
func (t Tag) typeName() string {
	switch t {
	case TagFunction:
		return "function"
	case TagExpr:
		return "expr"
	case TagList:
		return "list"
	case TagSymbol:
		return "symbol"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagBool:
		return "bool"
	case TagNull:
		return "null"
	default:
		return "null"
	}
}

// Builtin is a native procedure. Scope is passed mutably so built-ins
// such as define and eval can observe and mutate the caller's bindings.
type Builtin func(args []Value, sc Scope) (Value, error)

// Scope is the narrow interface the value package needs from the
// evaluation scope, kept here to avoid an import cycle with package
// scope; scope.Scope satisfies it.
type Scope interface {
	Get(name string) (Value, bool)
	Set(name string, v Value)
	Clone() Scope
}

// UserFunction is a lambda: an ordered list of (possibly annotated)
// parameters and an ordered list of body lines.
type UserFunction struct {
	Params []AnnotatedExpr
	Body   []Value
}

// Value is the tagged sum of every runtime value in the language.
type Value struct {
	Tag Tag

	// Function payload.
	Native Builtin
	User   *UserFunction

	// Expr / List payload: an ordered sequence of annotated sub-expressions.
	Items []AnnotatedExpr

	// Symbol / String payload.
	Text string

	// Number payload.
	Num frac.Fraction

	// Bool payload.
	Bool bool
}

// Null is the zero-ish default value.
var Null = Value{Tag: TagNull}

// Boolean builds a Bool value.
func Boolean(b bool) Value { return Value{Tag: TagBool, Bool: b} }

// String builds a String value.
func String(s string) Value { return Value{Tag: TagString, Text: s} }

// Symbol builds a Symbol value.
func Symbol(s string) Value { return Value{Tag: TagSymbol, Text: s} }

// Number builds a Number value.
func Number(f frac.Fraction) Value { return Value{Tag: TagNumber, Num: f} }

// Expr builds an Expression value (an unevaluated application).
func Expr(items []AnnotatedExpr) Value { return Value{Tag: TagExpr, Items: items} }

// List builds a quoted/data List value.
func List(items []AnnotatedExpr) Value { return Value{Tag: TagList, Items: items} }

// NativeFunc wraps a built-in procedure as a Function value.
func NativeFunc(fn Builtin) Value { return Value{Tag: TagFunction, Native: fn} }

// UserFunc wraps a user-defined lambda as a Function value.
func UserFunc(params []AnnotatedExpr, body []Value) Value {
	return Value{Tag: TagFunction, User: &UserFunction{Params: params, Body: body}}
}

// AnnotatedExpr pairs a Value with an optional run-time type assertion
// on its evaluated result.
type AnnotatedExpr struct {
	Value      Value
	Annotation *Class
}

// Plain wraps a Value with no annotation.
func Plain(v Value) AnnotatedExpr { return AnnotatedExpr{Value: v} }

// GetType returns one of "number", "string", "bool", "expr", "symbol",
// "list", "null" or "function".
func (v Value) GetType() string {
	return v.Tag.typeName()
}

// GetNumber is a total coercion to Fraction.
func (v Value) GetNumber() frac.Fraction {
	switch v.Tag {
	case TagNumber:
		return v.Num
	case TagString, TagSymbol:
		if f, ok := frac.FromText(v.Text); ok {
			return f
		}
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v.Text), "%g", &f); err == nil {
			return frac.FromDecimal(f)
		}
		return frac.Zero
	case TagBool:
		if v.Bool {
			return frac.New(1, 1)
		}
		return frac.Zero
	case TagExpr, TagList:
		if len(v.Items) == 0 {
			return frac.Zero
		}
		return v.Items[0].Value.GetNumber()
	default: // Function, Null
		return frac.Zero
	}
}

// GetString is a total coercion to a displayable string.
func (v Value) GetString() string {
	switch v.Tag {
	case TagNumber:
		return v.Num.Display()
	case TagString, TagSymbol:
		return v.Text
	case TagBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return v.String()
	}
}

// GetBool is a total coercion to a truth value.
func (v Value) GetBool() bool {
	switch v.Tag {
	case TagNumber:
		return !v.Num.Equal(frac.Zero)
	case TagString, TagSymbol:
		return v.Text != ""
	case TagExpr, TagList:
		return len(v.Items) != 0
	case TagBool:
		return v.Bool
	default: // Function, Null
		return false
	}
}

// GetList is a total coercion to an ordered sequence of annotated
// sub-expressions: Expr/List return their contained items, anything
// else is wrapped as a single-element, unannotated list.
func (v Value) GetList() []AnnotatedExpr {
	switch v.Tag {
	case TagExpr, TagList:
		return v.Items
	default:
		return []AnnotatedExpr{Plain(v)}
	}
}

// String renders the canonical printable form. For Number, String,
// Bool, Symbol, List and Null this round-trips through the parser.
func (v Value) String() string {
	switch v.Tag {
	case TagNumber:
		return v.Num.Display()
	case TagString:
		return "\"" + v.Text + "\""
	case TagBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case TagSymbol:
		return v.Text
	case TagList:
		return "'(" + joinItems(v.Items) + ")"
	case TagExpr:
		return "(" + joinItems(v.Items) + ")"
	case TagFunction:
		if v.User != nil {
			params := make([]string, len(v.User.Params))
			for i, p := range v.User.Params {
				params[i] = p.String()
			}
			body := make([]string, len(v.User.Body))
			for i, b := range v.User.Body {
				body[i] = b.String()
			}
			return fmt.Sprintf("(lambda '(%s) %s)", strings.Join(params, " "), strings.Join(body, " "))
		}
		return fmt.Sprintf("function(%p)", v.Native)
	case TagNull:
		return "null"
	default:
		return "null"
	}
}

func joinItems(items []AnnotatedExpr) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}

// String renders "value" or "value:class" when annotated.
func (ae AnnotatedExpr) String() string {
	if ae.Annotation != nil {
		return ae.Value.String() + ":" + ae.Annotation.Name()
	}
	return ae.Value.String()
}
