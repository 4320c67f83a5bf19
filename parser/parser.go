/*
File: parser/parser.go

Package parser turns Nhotyp's line array into an AST.

The parser is line-oriented and indentation-free: it advances a single
monotonic line cursor through the source, recognizing one statement per
non-blank, non-comment line, and recursing into ParseBlock whenever a
`then`/`do`/`as` header opens a nested block. There is no tokenizer pass
separate from parsing: each line's fields are split and validated as
tokens inline, the same flat, line-at-a-time approach the evaluator
takes to expressions, rather than building a pre-tokenized stream.
*/
package parser

import (
	"strings"

	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/nhotyp-run/nhotyp/token"
)

// Parser holds the line array and the cursor driving ParseBlock.
//
// LineOffset converts a raw array index into the line number reported in
// errors: file mode uses +1 (1-based), REPL mode uses -1 (0-based,
// compensating for the sentinel first entry in its line log).
type Parser struct {
	Lines      []string
	Ptr        int
	LineOffset int
}

// New creates a Parser over lines, starting at the beginning.
func New(lines []string, lineOffset int) *Parser {
	return &Parser{Lines: lines, Ptr: 0, LineOffset: lineOffset}
}

// lineNo returns the reportable line number for the line currently under
// the cursor.
func (p *Parser) lineNo() int {
	return p.Ptr + p.LineOffset
}

// CurrentLine returns the raw source text of the line the cursor is on,
// or "" if the cursor has run past the end of the array.
func (p *Parser) CurrentLine() string {
	if p.Ptr < 0 || p.Ptr >= len(p.Lines) {
		return ""
	}
	return p.Lines[p.Ptr]
}

// LineAt returns the raw source text at reportable line number ln, or ""
// if out of range. Used by callers to recover the offending source line
// for error formatting.
func (p *Parser) LineAt(ln int) string {
	idx := ln - p.LineOffset
	if idx < 0 || idx >= len(p.Lines) {
		return ""
	}
	return p.Lines[idx]
}

// stripComment removes everything from the first '#' to end-of-line.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// splitFields splits on spaces and drops empty fields, so repeated or
// leading/trailing spaces are tolerated.
func splitFields(line string) []string {
	return strings.Fields(line)
}

// ParseBlock reads lines from p.Ptr until either the cursor exhausts the
// input or a matching `end <terminator>` line is reached.
//
// terminator == "" denotes the top level: `end` is illegal there
// (MalformedEnd), and reaching EOF is a graceful close rather than
// UnclosedBlock. For any non-empty terminator, reaching EOF before the
// matching `end` line is UnclosedBlock.
func (p *Parser) ParseBlock(terminator string) (ast.Block, error) {
	var block ast.Block
	for p.Ptr < len(p.Lines) {
		ln := p.lineNo()
		fields := splitFields(stripComment(p.Lines[p.Ptr]))
		if len(fields) == 0 {
			p.Ptr++
			continue
		}
		if fields[0] == "end" {
			if terminator == "" {
				return nil, nerr.New(nerr.MalformedEnd, ln, "'end' is not valid at top level")
			}
			if len(fields) != 2 || fields[1] != terminator {
				return nil, nerr.New(nerr.MalformedEnd, ln, "expected 'end %s'", terminator)
			}
			p.Ptr++
			return block, nil
		}

		stmt, err := p.parseLine(ln, fields)
		if err != nil {
			return nil, err
		}
		block = append(block, *stmt)
	}
	if terminator == "" {
		return block, nil
	}
	return nil, nerr.New(nerr.UnclosedBlock, 0, "unexpected end of input, expected 'end %s'", terminator)
}

// parseLine dispatches on the statement head and advances p.Ptr past
// whatever lines the statement (and any nested block) consumes.
func (p *Parser) parseLine(ln int, fields []string) (*ast.Stmt, error) {
	switch fields[0] {
	case "let":
		return p.parseAssign(ln, fields)
	case "if":
		return p.parseCond(ln, fields)
	case "while":
		return p.parseLoop(ln, fields)
	case "print":
		return p.parsePrint(ln, fields)
	case "return":
		return p.parseRet(ln, fields)
	case "function":
		return p.parseFunc(ln, fields)
	default:
		return nil, nerr.New(nerr.UnknownToken, ln, "unexpected statement head %q", fields[0])
	}
}

// validateAny wraps token.NewAny across a slice of raw fields.
func validateAny(fields []string, ln int) ([]string, error) {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		tok, err := token.NewAny(f, ln)
		if err != nil {
			return nil, err
		}
		out = append(out, tok.String())
	}
	return out, nil
}

// validateIdent wraps token.New across a slice of raw fields.
func validateIdent(fields []string, ln int) ([]string, error) {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		tok, err := token.New(f, ln)
		if err != nil {
			return nil, err
		}
		out = append(out, tok.String())
	}
	return out, nil
}
