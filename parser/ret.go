/*
File: parser/ret.go
*/
package parser

import (
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
)

// parseRet parses `return E...`: at least 2 fields.
//
// Whether this Ret sits in a legal terminal position is not a parser
// concern: that invariant (MisplacedRet) is enforced when the function is
// called (eval.Call), and at REPL top level (as WildStatement there),
// since it depends on where the statement ends up, not its shape.
func (p *Parser) parseRet(ln int, fields []string) (*ast.Stmt, error) {
	if len(fields) < 2 {
		return nil, nerr.New(nerr.MalformedRet, ln, "malformed 'return' statement")
	}
	exprTokens, err := validateAny(fields[1:], ln)
	if err != nil {
		return nil, err
	}
	p.Ptr++
	return &ast.Stmt{
		Kind: ast.RetKind,
		Line: ln,
		Expr: ast.Expr{Tokens: exprTokens, Line: ln},
	}, nil
}
