/*
File: eval/expr.go
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/nhotyp-run/nhotyp/scope"
	"github.com/nhotyp-run/nhotyp/value"
)

// binaryOps dispatches the two-operand arithmetic, comparison, and
// boolean operators.
var binaryOps = map[string]func(value.Value, value.Value) value.Value{
	"+":   value.Value.Add,
	"-":   value.Value.Sub,
	"*":   value.Value.Mul,
	"%":   value.Value.Mod,
	"/":   value.Value.Div,
	"==":  value.Value.Eq,
	"<":   value.Value.Lt,
	">":   value.Value.Gt,
	"<=":  value.Value.Le,
	">=":  value.Value.Ge,
	"!=":  value.Value.Ne,
	"and": value.Value.And,
	"or":  value.Value.Or,
	"xor": value.Value.Xor,
}

// unaryOps dispatches the single-operand operators.
var unaryOps = map[string]func(value.Value) value.Value{
	"not": value.Value.Not,
}

// Eval evaluates expr against sc, returning the resulting Value.
//
// A prefix expression must consume every one of its tokens exactly once;
// any token left over at the tail (or a recursive call running past the
// end of the token vector) is BadExpression.
func (e *Evaluator) Eval(expr ast.Expr, sc *scope.Scope) (value.Value, error) {
	cur := 0
	v, err := e.evalOne(expr.Tokens, &cur, expr.Line, sc)
	if err != nil {
		return value.Value{}, err
	}
	if cur != len(expr.Tokens) {
		return value.Value{}, nerr.New(nerr.BadExpression, expr.Line, "unconsumed tokens in expression")
	}
	return v, nil
}

// evalOne consumes exactly one sub-expression starting at *cur, advancing
// *cur past it, and returns its value.
func (e *Evaluator) evalOne(tokens []string, cur *int, line int, sc *scope.Scope) (value.Value, error) {
	if *cur >= len(tokens) {
		return value.Value{}, nerr.New(nerr.BadExpression, line, "expression ends unexpectedly")
	}
	tok := tokens[*cur]
	*cur++

	if tok == "scan" {
		return e.scan(line)
	}
	if op, ok := binaryOps[tok]; ok {
		a, err := e.evalOne(tokens, cur, line, sc)
		if err != nil {
			return value.Value{}, err
		}
		b, err := e.evalOne(tokens, cur, line, sc)
		if err != nil {
			return value.Value{}, err
		}
		return op(a, b), nil
	}
	if op, ok := unaryOps[tok]; ok {
		a, err := e.evalOne(tokens, cur, line, sc)
		if err != nil {
			return value.Value{}, err
		}
		return op(a), nil
	}
	return e.evalAtom(tok, tokens, cur, line, sc)
}

// evalAtom resolves a token that is neither `scan` nor an operator: a
// literal, a scoped variable (scope takes precedence over a same-named
// function), or a call to a registered function.
func (e *Evaluator) evalAtom(tok string, tokens []string, cur *int, line int, sc *scope.Scope) (value.Value, error) {
	if n, ok := parseLiteral(tok); ok {
		return value.Of(n), nil
	}
	if v, ok := sc.Lookup(tok); ok {
		return v, nil
	}
	if fn, ok := e.Program.Lookup(tok); ok {
		args := make([]value.Value, len(fn.Params))
		for i := range fn.Params {
			v, err := e.evalOne(tokens, cur, line, sc)
			if err != nil {
				return value.Value{}, err
			}
			args[i] = v
		}
		return e.Call(fn, args, line)
	}
	return value.Value{}, nerr.New(nerr.UndeclaredToken, line, "undeclared identifier %q", tok)
}

func parseLiteral(tok string) (int64, bool) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// scan reads one line from standard input and parses it as a signed
// decimal integer, prompting "  > " first.
func (e *Evaluator) scan(line int) (value.Value, error) {
	e.Writer.Write([]byte("  > "))
	e.flush()
	text, err := e.ScanLine()
	if err != nil && text == "" {
		return value.Value{}, nerr.New(nerr.InputError, line, "scan: unexpected end of input")
	}
	text = strings.TrimSpace(text)
	n, perr := strconv.ParseInt(text, 10, 64)
	if perr != nil {
		return value.Value{}, nerr.New(nerr.InputError, line, "scan: %q is not an integer", text)
	}
	return value.Of(n), nil
}
