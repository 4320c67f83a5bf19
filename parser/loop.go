/*
File: parser/loop.go
*/
package parser

import (
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
)

// parseLoop parses `while E... do` plus its body, terminated by
// `end while`.
func (p *Parser) parseLoop(ln int, fields []string) (*ast.Stmt, error) {
	n := len(fields)
	if n < 3 || fields[n-1] != "do" {
		return nil, nerr.New(nerr.MalformedLoop, ln, "malformed 'while' statement, expected trailing 'do'")
	}
	exprTokens, err := validateAny(fields[1:n-1], ln)
	if err != nil {
		return nil, err
	}
	p.Ptr++
	body, err := p.ParseBlock("while")
	if err != nil {
		return nil, err
	}
	return &ast.Stmt{
		Kind: ast.LoopKind,
		Line: ln,
		Cond: ast.Expr{Tokens: exprTokens, Line: ln},
		Body: body,
	}, nil
}
