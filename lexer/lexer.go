// Package lexer turns source text into a sequence of annotated
// tokens: parenthesized S-expression text plus an optional trailing
// ":class" annotation recognized only at parenthesis depth zero.
package lexer

import (
	"strings"

	"github.com/gradia-lang/gradia/langerr"
)

// Token is one top-level unit of source text together with its
// optional annotation text (the part after an unparenthesized ':').
type Token struct {
	Text       string
	Annotation *string
}

// isSpace reports whether r is one of the token-separating whitespace
// characters: ASCII space/tab/newline/CR, plus the full-width space
// U+3000.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '　':
		return true
	default:
		return false
	}
}

// Tokenize runs the lexer's state machine over one line (or any chunk)
// of source, producing the sequence of annotated tokens it contains.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	var current strings.Builder
	var afterColon strings.Builder
	isColon := false
	parenDepth := 0
	inQuote := false

	emit := func() {
		if isColon {
			ann := afterColon.String()
			tokens = append(tokens, Token{Text: current.String(), Annotation: &ann})
		} else {
			tokens = append(tokens, Token{Text: current.String()})
		}
		current.Reset()
		afterColon.Reset()
		isColon = false
	}

	active := func() *strings.Builder {
		if isColon {
			return &afterColon
		}
		return &current
	}

	for _, c := range input {
		switch {
		case c == '(' && !inQuote:
			active().WriteRune(c)
			parenDepth++
		case c == ')' && !inQuote:
			active().WriteRune(c)
			if parenDepth == 0 {
				return nil, langerr.Syntax("unbalanced closing parenthesis")
			}
			parenDepth--
		case isSpace(c) && !inQuote:
			if parenDepth > 0 {
				active().WriteRune(c)
			} else if current.Len() > 0 {
				emit()
			}
		case c == ':' && !inQuote:
			if parenDepth > 0 {
				active().WriteRune(c)
			} else {
				isColon = true
			}
		case c == '"':
			inQuote = !inQuote
			active().WriteRune(c)
		default:
			active().WriteRune(c)
		}
	}

	if inQuote {
		return nil, langerr.Syntax("unterminated string")
	}
	if parenDepth != 0 {
		return nil, langerr.Syntax("unbalanced opening parenthesis")
	}
	if current.Len() > 0 {
		emit()
	}

	return tokens, nil
}
