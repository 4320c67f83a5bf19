/*
File: parser/assign.go
*/
package parser

import (
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/nhotyp-run/nhotyp/token"
)

// parseAssign parses `let V = E...`: at least 4 fields, V an identifier,
// and tokens[3:] forming the right-hand expression.
func (p *Parser) parseAssign(ln int, fields []string) (*ast.Stmt, error) {
	if len(fields) < 4 {
		return nil, nerr.New(nerr.MalformedAssign, ln, "malformed 'let' statement")
	}
	if fields[2] != "=" {
		return nil, nerr.New(nerr.MalformedAssign, ln, "expected '=' after assignment target")
	}
	name, err := token.New(fields[1], ln)
	if err != nil {
		return nil, err
	}
	exprTokens, err := validateAny(fields[3:], ln)
	if err != nil {
		return nil, err
	}
	p.Ptr++
	return &ast.Stmt{
		Kind: ast.AssignKind,
		Line: ln,
		Name: name.String(),
		Expr: ast.Expr{Tokens: exprTokens, Line: ln},
	}, nil
}
