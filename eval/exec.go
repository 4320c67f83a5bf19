/*
File: eval/exec.go
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

// Exec runs a single statement against sc.
//
// Ret and Func are only legal in the special positions their callers
// handle directly (the terminal statement of a function body, and the
// top level of a Program respectively); encountering either one here,
// in ordinary statement position, is fatal.
func (e *Evaluator) Exec(stmt ast.Stmt, sc *scope.Scope) error {
	switch stmt.Kind {
	case ast.AssignKind:
		return e.execAssign(stmt, sc)
	case ast.CondKind:
		return e.execCond(stmt, sc)
	case ast.LoopKind:
		return e.execLoop(stmt, sc)
	case ast.PrintKind:
		return e.execPrint(stmt, sc)
	case ast.RetKind:
		return nerr.New(nerr.MisplacedRet, stmt.Line, "'return' is only valid as a function's last statement")
	case ast.FuncKind:
		return nerr.New(nerr.WildFunction, stmt.Line, "'function' may not be nested inside another statement")
	default:
		return nerr.New(nerr.UnknownToken, stmt.Line, "unrecognized statement")
	}
}

// ExecAll runs every statement in block in order, stopping at the first
// error.
func (e *Evaluator) ExecAll(block ast.Block, sc *scope.Scope) error {
	for _, stmt := range block {
		if err := e.Exec(stmt, sc); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execAssign(stmt ast.Stmt, sc *scope.Scope) error {
	if ast.Reserved[stmt.Name] {
		return nerr.New(nerr.DuplicateToken, stmt.Line, "%q is a reserved word and cannot be assigned", stmt.Name)
	}
	if e.Program.Has(stmt.Name) {
		return nerr.New(nerr.DuplicateToken, stmt.Line, "%q shadows a defined function", stmt.Name)
	}
	v, err := e.Eval(stmt.Expr, sc)
	if err != nil {
		return err
	}
	sc.Set(stmt.Name, v)
	return nil
}

func (e *Evaluator) execCond(stmt ast.Stmt, sc *scope.Scope) error {
	v, err := e.Eval(stmt.Cond, sc)
	if err != nil {
		return err
	}
	if v.Truthy() {
		return e.ExecAll(stmt.Body, sc)
	}
	return nil
}

func (e *Evaluator) execLoop(stmt ast.Stmt, sc *scope.Scope) error {
	for {
		v, err := e.Eval(stmt.Cond, sc)
		if err != nil {
			return err
		}
		if !v.Truthy() {
			return nil
		}
		if err := e.ExecAll(stmt.Body, sc); err != nil {
			return err
		}
	}
}

func (e *Evaluator) execPrint(stmt ast.Stmt, sc *scope.Scope) error {
	var b strings.Builder
	b.WriteString("  .")
	for _, name := range stmt.Names {
		v, ok := sc.Lookup(name)
		if !ok {
			return nerr.New(nerr.UndeclaredToken, stmt.Line, "undeclared identifier %q", name)
		}
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(v.Int, 10))
	}
	b.WriteByte('\n')
	e.Writer.Write([]byte(b.String()))
	e.flush()
	return nil
}

// Call invokes fn with the already-evaluated argument values. Each call
// gets a fresh, empty scope: there is no lexical capture and no access
// to the caller's scope.
func (e *Evaluator) Call(fn *ast.Function, args []value.Value, callLine int) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return value.Value{}, nerr.New(nerr.BadExpression, callLine, "function %q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	frame := scope.New()
	for i, param := range fn.Params {
		if e.Program.Has(param) {
			return value.Value{}, nerr.New(nerr.DuplicateToken, fn.DefinedLine, "parameter %q shadows a defined function", param)
		}
		frame.Set(param, args[i])
	}

	if len(fn.Body) == 0 {
		return value.Value{}, nerr.New(nerr.MisplacedRet, fn.DefinedLine, "function %q has an empty body", fn.Name)
	}

	last := fn.Body[len(fn.Body)-1]
	if err := e.ExecAll(fn.Body[:len(fn.Body)-1], frame); err != nil {
		return value.Value{}, err
	}
	if last.Kind != ast.RetKind {
		return value.Value{}, nerr.New(nerr.MisplacedRet, last.Line, "function %q does not end in 'return'", fn.Name)
	}
	return e.Eval(last.Expr, frame)
}

// CallNamed looks up name in the registry and invokes it with no
// arguments, as main() is invoked.
func (e *Evaluator) CallNamed(name string, line int) (value.Value, error) {
	fn, ok := e.Program.Lookup(name)
	if !ok {
		return value.Value{}, nerr.New(nerr.UndeclaredToken, line, "undeclared function %q", name)
	}
	return e.Call(fn, nil, line)
}
