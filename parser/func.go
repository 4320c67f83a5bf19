/*
File: parser/func.go
*/
package parser

import (
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/nhotyp-run/nhotyp/token"
)

// parseFunc parses `function N P... as` plus its body, terminated by
// `end function`. Whether N itself collides with a reserved word or an
// existing function is checked at registry-build time; this parser only
// enforces the header shape, the parameter count ceiling, and that no
// parameter shadows a reserved word.
func (p *Parser) parseFunc(ln int, fields []string) (*ast.Stmt, error) {
	n := len(fields)
	if n < 3 || fields[n-1] != "as" {
		return nil, nerr.New(nerr.MalformedFunc, ln, "malformed 'function' statement, expected trailing 'as'")
	}
	name, err := token.New(fields[1], ln)
	if err != nil {
		return nil, err
	}
	paramFields := fields[2 : n-1]
	if len(paramFields) > ast.MaxParams {
		return nil, nerr.New(nerr.MalformedFunc, ln, "function %q declares more than %d parameters", name, ast.MaxParams)
	}
	params := make([]string, 0, len(paramFields))
	for _, pf := range paramFields {
		tok, err := token.New(pf, ln)
		if err != nil {
			return nil, err
		}
		if ast.Reserved[tok.String()] {
			return nil, nerr.New(nerr.DuplicateToken, ln, "parameter %q shadows a reserved word", tok.String())
		}
		params = append(params, tok.String())
	}
	p.Ptr++
	body, err := p.ParseBlock("function")
	if err != nil {
		return nil, err
	}
	return &ast.Stmt{
		Kind:     ast.FuncKind,
		Line:     ln,
		FuncName: name.String(),
		Params:   params,
		Body:     body,
	}, nil
}
