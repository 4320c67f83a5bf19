/*
File: program/program.go

Package program builds a function registry from a parsed top-level
block.

Construction is the single place that enforces the registry's two
invariants: names are globally unique, and disjoint from reserved words.
`main` is deliberately not required at build time; its absence only
surfaces as UndeclaredToken("main") when invocation is attempted, so a
file or REPL session may define helper functions without ever defining
`main`.
*/
package program

import (
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
)

// Build assembles a Program from block, rejecting collisions with
// reserved words or existing registrations. Non-Func statements at the
// top level are WildStatement, which file mode treats as fatal. The REPL
// passes only Func statements to Merge and executes the others itself.
func Build(block ast.Block) (*ast.Program, error) {
	p := ast.NewProgram()
	if err := Merge(p, block); err != nil {
		return nil, err
	}
	return p, nil
}

// Merge folds the Func statements in block into the existing registry
// p, leaving p untouched if any statement is rejected. This is what lets
// the REPL assimilate new function definitions line-by-line without ever
// inserting a partial registration.
func Merge(p *ast.Program, block ast.Block) error {
	fresh := make([]*ast.Function, 0, len(block))
	seen := make(map[string]bool, len(block))
	for _, stmt := range block {
		if stmt.Kind != ast.FuncKind {
			return nerr.New(nerr.WildStatement, stmt.Line, "statement outside of any function")
		}
		if ast.Reserved[stmt.FuncName] {
			return nerr.New(nerr.DuplicateToken, stmt.Line, "function name %q is reserved", stmt.FuncName)
		}
		if p.Has(stmt.FuncName) || seen[stmt.FuncName] {
			return nerr.New(nerr.DuplicateToken, stmt.Line, "function %q is already defined", stmt.FuncName)
		}
		seen[stmt.FuncName] = true
		fresh = append(fresh, &ast.Function{
			Name:        stmt.FuncName,
			Params:      stmt.Params,
			Body:        stmt.Body,
			DefinedLine: stmt.Line,
		})
	}
	for _, fn := range fresh {
		p.Define(fn)
	}
	return nil
}
