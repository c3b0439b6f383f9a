package eval

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gradia-lang/gradia/frac"
	"github.com/gradia-lang/gradia/langerr"
	"github.com/gradia-lang/gradia/scope"
	"github.com/gradia-lang/gradia/value"
)

// stdin is shared across repeated `input` calls within one process, the
// way pkelchte-scm's Repl holds a single bufio.Reader over os.Stdin for
// the whole session rather than constructing one per read.
var stdin = bufio.NewReader(os.Stdin)

// Builtins returns a fresh scope seeded with the standard library: the
// ~35 built-in procedures plus the new-line/double-quote/tab constants.
func Builtins() value.Scope {
	sc := scope.New()
	for name, fn := range table {
		sc.Set(name, value.NativeFunc(fn))
	}
	sc.Set("new-line", value.String("\n"))
	sc.Set("double-quote", value.String("\""))
	sc.Set("tab", value.String("\t"))
	return sc
}

// reinterpretAndEval evaluates v as the taken branch of if/cond/try: a
// List is re-interpreted as an Expression and evaluated now; anything
// else is returned as-is, unevaluated.
func reinterpretAndEval(v value.Value, sc value.Scope) (value.Value, error) {
	if v.Tag == value.TagList {
		return Eval(value.Plain(value.Expr(v.Items)), sc)
	}
	return v, nil
}

func foldNumbers(args []value.Value, want int, fn func(acc, next frac.Fraction) frac.Fraction) (value.Value, error) {
	if len(args) < 1 {
		return value.Value{}, langerr.Arity(len(args), want)
	}
	acc := args[0].GetNumber()
	for _, a := range args[1:] {
		acc = fn(acc, a.GetNumber())
	}
	return value.Number(acc), nil
}

func foldDecimal(args []value.Value, want int, fn func(acc, next float64) float64) (value.Value, error) {
	if len(args) < 1 {
		return value.Value{}, langerr.Arity(len(args), want)
	}
	acc := args[0].GetNumber().ToDecimal()
	for _, a := range args[1:] {
		acc = fn(acc, a.GetNumber().ToDecimal())
	}
	return value.Number(frac.FromDecimal(acc)), nil
}

func comparePairwise(args []value.Value, want int, cmp func(a, b float64) bool) (value.Value, error) {
	if len(args) < 2 {
		return value.Value{}, langerr.Arity(len(args), want)
	}
	nums := make([]float64, len(args))
	for i, a := range args {
		nums[i] = a.GetNumber().ToDecimal()
	}
	for i := 0; i < len(nums)-1; i++ {
		if !cmp(nums[i], nums[i+1]) {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}

var table = map[string]value.Builtin{
	"+": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return foldNumbers(args, 2, func(acc, n frac.Fraction) frac.Fraction { return acc.Add(n) })
	},
	"-": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) < 1 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		if len(args) == 1 {
			return value.Number(frac.Zero.Sub(args[0].GetNumber())), nil
		}
		return foldNumbers(args, 2, func(acc, n frac.Fraction) frac.Fraction { return acc.Sub(n) })
	},
	"*": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return foldNumbers(args, 2, func(acc, n frac.Fraction) frac.Fraction { return acc.Mul(n) })
	},
	"/": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return foldNumbers(args, 2, func(acc, n frac.Fraction) frac.Fraction { return acc.Div(n) })
	},
	"%": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return foldDecimal(args, 2, func(acc, n float64) float64 { return math.Mod(acc, n) })
	},
	"^": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return foldDecimal(args, 2, math.Pow)
	},
	"concat": func(args []value.Value, _ value.Scope) (value.Value, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(a.GetString())
		}
		return value.String(b.String()), nil
	},
	"print": func(args []value.Value, _ value.Scope) (value.Value, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(a.GetString())
		}
		fmt.Print(b.String())
		return value.Null, nil
	},
	"debug": func(args []value.Value, _ value.Scope) (value.Value, error) {
		for _, a := range args {
			fmt.Printf("Debug: %s\n", a.String())
		}
		return value.Null, nil
	},
	"input": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) > 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		if len(args) == 1 {
			fmt.Print(args[0].GetString())
		}
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return value.Value{}, langerr.Wrap(err, "reading line was fault")
		}
		return value.String(strings.TrimRight(line, "\r\n")), nil
	},
	"=": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) < 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		prints := printForms(args)
		for i := 0; i < len(prints)-1; i++ {
			if prints[i] != prints[i+1] {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	},
	"!=": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) < 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		prints := printForms(args)
		for i := 0; i < len(prints)-1; i++ {
			if prints[i] == prints[i+1] {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	},
	">": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return comparePairwise(args, 2, func(a, b float64) bool { return a > b })
	},
	">=": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return comparePairwise(args, 2, func(a, b float64) bool { return a >= b })
	},
	"<": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return comparePairwise(args, 2, func(a, b float64) bool { return a < b })
	},
	// Retained bug-for-bug: "<=" implements strict less-than, identical
	// to "<", per the upstream source's only observable behavior.
	"<=": func(args []value.Value, _ value.Scope) (value.Value, error) {
		return comparePairwise(args, 2, func(a, b float64) bool { return a < b })
	},
	"&": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) < 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		for _, a := range args {
			if !a.GetBool() {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	},
	"|": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) < 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		for _, a := range args {
			if a.GetBool() {
				return value.Boolean(true), nil
			}
		}
		return value.Boolean(false), nil
	},
	"!": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		return value.Boolean(!args[0].GetBool()), nil
	},
	"cast": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		switch args[1].GetString() {
		case "number":
			return value.Number(args[0].GetNumber()), nil
		case "string":
			return value.String(args[0].GetString()), nil
		case "bool":
			return value.Boolean(args[0].GetBool()), nil
		case "list":
			return value.List(args[0].GetList()), nil
		default:
			return value.Value{}, langerr.Runtime("unknown type name `%s`", args[1].GetString())
		}
	},
	"type": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		return value.String(args[0].GetType()), nil
	},
	"eval": func(args []value.Value, sc value.Scope) (value.Value, error) {
		result := value.Null
		for _, a := range args {
			r, err := Eval(value.Plain(value.Expr(a.GetList())), sc)
			if err != nil {
				return value.Value{}, err
			}
			result = r
		}
		return result, nil
	},
	"define": func(args []value.Value, sc value.Scope) (value.Value, error) {
		if len(args) < 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		if args[0].Tag == value.TagList {
			items := args[0].Items
			if len(items) == 0 {
				return value.Value{}, langerr.Runtime("define's function form needs a name")
			}
			name := items[0].Value.GetString()
			params := items[1:]
			body := make([]value.Value, len(args[1:]))
			copy(body, args[1:])
			fn := value.UserFunc(params, body)
			sc.Set(name, fn)
			return fn, nil
		}
		name := args[0].GetString()
		sc.Set(name, args[1])
		return args[1], nil
	},
	"lambda": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) < 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		return value.UserFunc(args[0].GetList(), args[1:]), nil
	},
	"if": func(args []value.Value, sc value.Scope) (value.Value, error) {
		switch len(args) {
		case 3:
			if args[0].GetBool() {
				return reinterpretAndEval(args[1], sc)
			}
			return reinterpretAndEval(args[2], sc)
		case 2:
			if args[0].GetBool() {
				return reinterpretAndEval(args[1], sc)
			}
			return value.Null, nil
		default:
			return value.Value{}, langerr.Arity(len(args), 3)
		}
	},
	"cond": func(args []value.Value, sc value.Scope) (value.Value, error) {
		for _, clause := range args {
			items := clause.GetList()
			if len(items) < 2 {
				return value.Value{}, langerr.Runtime("cond clause must have a test and a body")
			}
			test, err := Eval(items[0], sc)
			if err != nil {
				return value.Value{}, err
			}
			if test.GetBool() {
				body, err := Eval(items[1], sc)
				if err != nil {
					return value.Value{}, err
				}
				return reinterpretAndEval(body, sc)
			}
		}
		return value.Null, nil
	},
	"try": func(args []value.Value, sc value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		result, err := reinterpretAndEval(args[0], sc)
		if err == nil {
			return result, nil
		}
		return reinterpretAndEval(args[1], sc)
	},
	"car": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		list := args[0].GetList()
		if len(list) == 0 {
			return value.Null, nil
		}
		return list[0].Value, nil
	},
	"cdr": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		list := args[0].GetList()
		if len(list) <= 1 {
			return value.List(nil), nil
		}
		return value.List(list[1:]), nil
	},
	"range": func(args []value.Value, _ value.Scope) (value.Value, error) {
		var start, stop, step float64 = 0, 0, 1
		switch len(args) {
		case 1:
			stop = args[0].GetNumber().ToDecimal()
		case 2:
			start = args[0].GetNumber().ToDecimal()
			stop = args[1].GetNumber().ToDecimal()
		case 3:
			start = args[0].GetNumber().ToDecimal()
			stop = args[1].GetNumber().ToDecimal()
			step = args[2].GetNumber().ToDecimal()
		default:
			return value.Value{}, langerr.Arity(len(args), 3)
		}
		var items []value.AnnotatedExpr
		for cur := start; cur < stop; cur += step {
			items = append(items, value.Plain(value.Number(frac.FromDecimal(cur))))
		}
		return value.List(items), nil
	},
	"map": func(args []value.Value, sc value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		fn := args[1]
		var result []value.AnnotatedExpr
		for _, item := range args[0].GetList() {
			r, err := Eval(value.Plain(value.Expr([]value.AnnotatedExpr{value.Plain(fn), item})), sc)
			if err != nil {
				return value.Value{}, err
			}
			result = append(result, value.Plain(r))
		}
		return value.List(result), nil
	},
	"filter": func(args []value.Value, sc value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		fn := args[1]
		var result []value.AnnotatedExpr
		for _, item := range args[0].GetList() {
			r, err := Eval(value.Plain(value.Expr([]value.AnnotatedExpr{value.Plain(fn), item})), sc)
			if err != nil {
				return value.Value{}, err
			}
			if r.GetBool() {
				result = append(result, item)
			}
		}
		return value.List(result), nil
	},
	"reduce": func(args []value.Value, sc value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		fn := args[1]
		list := args[0].GetList()
		if len(list) == 0 {
			return value.Value{}, langerr.Runtime("passed list is empty")
		}
		acc := list[0].Value
		callScope := sc.Clone()
		for _, item := range list[1:] {
			r, err := Eval(value.Plain(value.Expr([]value.AnnotatedExpr{
				value.Plain(fn), value.Plain(acc), item,
			})), callScope)
			if err != nil {
				return value.Value{}, err
			}
			acc = r
		}
		return acc, nil
	},
	"reverse": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		list := args[0].GetList()
		rev := make([]value.AnnotatedExpr, len(list))
		for i, it := range list {
			rev[len(list)-1-i] = it
		}
		return value.List(rev), nil
	},
	"len": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, langerr.Arity(len(args), 1)
		}
		return value.Number(frac.New(int64(len(args[0].GetList())), 1)), nil
	},
	"repeat": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		n := int(args[1].GetNumber().ToDecimal())
		if n < 0 {
			n = 0
		}
		return value.String(strings.Repeat(args[0].GetString(), n)), nil
	},
	"join": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		list := args[0].GetList()
		parts := make([]string, len(list))
		for i, it := range list {
			parts[i] = it.Value.GetString()
		}
		return value.String(strings.Join(parts, args[1].GetString())), nil
	},
	"split": func(args []value.Value, _ value.Scope) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, langerr.Arity(len(args), 2)
		}
		parts := strings.Split(args[0].GetString(), args[1].GetString())
		items := make([]value.AnnotatedExpr, len(parts))
		for i, p := range parts {
			items[i] = value.Plain(value.String(p))
		}
		return value.List(items), nil
	},
	"error": func(args []value.Value, _ value.Scope) (value.Value, error) {
		msg := "Something went wrong"
		if len(args) > 0 {
			msg = args[0].GetString()
		}
		return value.Value{}, langerr.Runtime("%s", msg)
	},
	"exit": func(args []value.Value, _ value.Scope) (value.Value, error) {
		code := 0
		if len(args) > 0 {
			code = int(args[0].GetNumber().ToDecimal())
		}
		os.Exit(code)
		return value.Null, nil
	},
}

func printForms(args []value.Value) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.String()
	}
	return out
}
