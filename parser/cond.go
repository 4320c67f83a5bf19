/*
File: parser/cond.go
*/
package parser

import (
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
)

// parseCond parses `if E... then` plus its body, terminated by `end if`.
func (p *Parser) parseCond(ln int, fields []string) (*ast.Stmt, error) {
	n := len(fields)
	if n < 3 || fields[n-1] != "then" {
		return nil, nerr.New(nerr.MalformedCond, ln, "malformed 'if' statement, expected trailing 'then'")
	}
	exprTokens, err := validateAny(fields[1:n-1], ln)
	if err != nil {
		return nil, err
	}
	p.Ptr++
	body, err := p.ParseBlock("if")
	if err != nil {
		return nil, err
	}
	return &ast.Stmt{
		Kind: ast.CondKind,
		Line: ln,
		Cond: ast.Expr{Tokens: exprTokens, Line: ln},
		Body: body,
	}, nil
}
