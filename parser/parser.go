// Package parser lifts a single annotated token from the lexer into a
// value.AnnotatedExpr: a literal, a quoted list, an expression
// (application), a symbol, or a symbol-with-annotation.
package parser

import (
	"strconv"
	"strings"

	"github.com/gradia-lang/gradia/frac"
	"github.com/gradia-lang/gradia/langerr"
	"github.com/gradia-lang/gradia/lexer"
	"github.com/gradia-lang/gradia/value"
)

// Parse classifies one token's text and builds its AnnotatedExpr.
func Parse(tok lexer.Token) (value.AnnotatedExpr, error) {
	var annotation *value.Class
	if tok.Annotation != nil {
		c, err := value.ClassFromName(*tok.Annotation)
		if err != nil {
			return value.AnnotatedExpr{}, langerr.Syntax("%s", err.Error())
		}
		annotation = c
	}

	text := strings.TrimSpace(tok.Text)

	switch {
	case isDecimal(text):
		n, _ := strconv.ParseFloat(text, 64)
		return wrap(value.Number(frac.FromDecimal(n)), annotation), nil

	case isFraction(text):
		f, _ := frac.FromText(text)
		return wrap(value.Number(f), annotation), nil

	case text == "true" || text == "false":
		return wrap(value.Boolean(text == "true"), annotation), nil

	case text == "null":
		return wrap(value.Null, annotation), nil

	case strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) && len(text) >= 2:
		inner := text[1 : len(text)-1]
		return wrap(value.String(inner), annotation), nil

	case strings.HasPrefix(text, "'(") && strings.HasSuffix(text, ")"):
		inner := text[2 : len(text)-1]
		items, err := parseInner(inner)
		if err != nil {
			return value.AnnotatedExpr{}, err
		}
		return wrap(value.List(items), annotation), nil

	case strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")"):
		inner := text[1 : len(text)-1]
		items, err := parseInner(inner)
		if err != nil {
			return value.AnnotatedExpr{}, err
		}
		return wrap(value.Expr(items), annotation), nil

	case strings.HasPrefix(text, "'"):
		return wrap(value.Symbol(text[1:]), annotation), nil

	default:
		return wrap(value.Symbol(text), annotation), nil
	}
}

func wrap(v value.Value, ann *value.Class) value.AnnotatedExpr {
	return value.AnnotatedExpr{Value: v, Annotation: ann}
}

func parseInner(inner string) ([]value.AnnotatedExpr, error) {
	toks, err := lexer.Tokenize(inner)
	if err != nil {
		return nil, err
	}
	items := make([]value.AnnotatedExpr, 0, len(toks))
	for _, t := range toks {
		ae, err := Parse(t)
		if err != nil {
			return nil, err
		}
		items = append(items, ae)
	}
	return items, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isFraction(s string) bool {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return false
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64); err != nil {
		return false
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64); err != nil {
		return false
	}
	return true
}
