/*
File: parser/print.go
*/
package parser

import (
	"github.com/nhotyp-run/nhotyp/ast"
)

// parsePrint parses `print V...`, zero or more identifier arguments.
func (p *Parser) parsePrint(ln int, fields []string) (*ast.Stmt, error) {
	names, err := validateIdent(fields[1:], ln)
	if err != nil {
		return nil, err
	}
	p.Ptr++
	return &ast.Stmt{
		Kind:  ast.PrintKind,
		Line:  ln,
		Names: names,
	}, nil
}
