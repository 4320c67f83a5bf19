/*
File: repl/repl.go

Package repl implements Nhotyp's incremental read-eval-print loop: the
state machine that feeds stdin to the parser and evaluator one line at a
time while preserving the AST cursor, the function registry, the
top-level statement buffer, and the variable scope across iterations.

The central invariant is transactional: every line fed to Feed is either
fully absorbed (parsed, merged into the registry, and executed) or it
leaves no trace beyond the error line printed to the writer. Repl
implements this with a snapshot/restore strategy rather than
materializing a tree of alternate states: before each attempt it
captures the pieces of mutable state that matter (the registry's name
table, the scope's bindings, the statement buffer's length, and the
parse cursor) and restores them verbatim if the attempt fails.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/eval"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/nhotyp-run/nhotyp/parser"
	"github.com/nhotyp-run/nhotyp/program"
	"github.com/nhotyp-run/nhotyp/scope"
)

const (
	readyPrompt      = ">>> "
	bufferingPrompt  = "... "
	lineOffset       = -1 // REPL lines are reported 0-based
	copyrightCommand = "copyright"
	licenseCommand   = "license"
)

// Repl is a single interactive session's persistent state: the line log,
// the parser cursor, the function registry, the committed top-level
// statements, the execution cursor, the top-level scope, and the last
// known-good cursor position.
type Repl struct {
	Lines       []string  // sentinel first entry, then one entry per fed line
	Ptr         int       // parser cursor; equals LastSafePtr between attempts
	LastSafePtr int       // last cursor position known to be fully committed
	Program     *ast.Program
	Stmts       ast.Block // committed top-level statements (S)
	ExecPtr     int       // next index in Stmts to execute
	Scope       *scope.Scope
	Buffering   bool // true while inside an unclosed block (prompt "... ")

	Writer io.Writer
	eval   *eval.Evaluator

	// OnError, if set, is called with the formatted two-line message for
	// every non-UnclosedBlock error a Feed produces. Left nil by callers
	// that only care about the resulting state (e.g. tests).
	OnError func(string)
}

// New creates a fresh REPL session. w receives print/scan output;
// scanLine supplies scan's input (see eval.LineReader: in interactive
// use this should read through the same line editor driving the prompt
// loop, not a second buffered reader racing it on the same descriptor).
func New(w io.Writer, scanLine eval.LineReader) *Repl {
	prog := ast.NewProgram()
	r := &Repl{
		Lines:   []string{""},
		Program: prog,
		Scope:   scope.New(),
		Writer:  w,
	}
	r.eval = eval.New(prog, w, scanLine)
	return r
}

// Prompt returns the prompt the next line should be read under.
func (r *Repl) Prompt() string {
	if r.Buffering {
		return bufferingPrompt
	}
	return readyPrompt
}

// Feed absorbs one line of input: it intercepts copyright/license,
// otherwise appends the line and attempts
// to parse-merge-execute everything from the cursor forward, committing
// on success and rolling back to the pre-attempt state on any failure
// other than UnclosedBlock.
func (r *Repl) Feed(line string) {
	if !r.Buffering {
		switch strings.TrimSpace(line) {
		case copyrightCommand:
			r.Writer.Write([]byte(copyrightText))
			return
		case licenseCommand:
			r.Writer.Write([]byte(licenseText))
			return
		}
	}

	r.Lines = append(r.Lines, line)
	r.attempt()
}

// attempt parses, merges, and executes everything from the cursor
// forward, committing on success and rolling back on any failure.
//
// A panic during parse or execution is recovered here rather than
// crashing the session: the attempt is rolled back exactly as it would
// be for a typed error, and the recovered value is reported through
// OnError as a runtime error, so a single malformed line can't take
// down an otherwise healthy REPL.
func (r *Repl) attempt() {
	ptrSnap := r.Ptr
	stmtLenSnap := len(r.Stmts)
	execPtrSnap := r.ExecPtr
	progSnap := r.Program.Snapshot()
	scopeSnap := r.Scope.Snapshot()

	rollback := func() {
		keep := ptrSnap
		if keep < 1 {
			keep = 1 // the sentinel entry is never trimmed
		}
		r.Lines = r.Lines[:keep]
		r.Ptr = ptrSnap
		r.Stmts = r.Stmts[:stmtLenSnap]
		r.ExecPtr = execPtrSnap
		r.Program.Restore(progSnap)
		r.Scope.Restore(scopeSnap)
		r.Buffering = false
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			rollback()
			if r.OnError != nil {
				r.OnError(fmt.Sprintf("stdin:%d: runtime error: %v", ptrSnap, recovered))
			}
		}
	}()

	p := parser.New(r.Lines, lineOffset)
	p.Ptr = r.Ptr
	block, err := p.ParseBlock("")
	if err != nil {
		if nerr.IsKind(err, nerr.UnclosedBlock) {
			r.Ptr = ptrSnap
			r.Buffering = true
			return
		}
		r.reportError(err)
		rollback()
		return
	}
	r.Ptr = p.Ptr

	var funcs ast.Block
	var stmts ast.Block
	for _, stmt := range block {
		switch stmt.Kind {
		case ast.FuncKind:
			funcs = append(funcs, stmt)
		case ast.RetKind:
			r.reportError(nerr.New(nerr.WildStatement, stmt.Line, "'return' is not valid at top level"))
			rollback()
			return
		default:
			stmts = append(stmts, stmt)
		}
	}

	if len(funcs) > 0 {
		if err := program.Merge(r.Program, funcs); err != nil {
			r.reportError(err)
			rollback()
			return
		}
	}

	r.Stmts = append(r.Stmts, stmts...)
	if err := r.eval.ExecAll(r.Stmts[r.ExecPtr:], r.Scope); err != nil {
		r.reportError(err)
		rollback()
		return
	}

	r.ExecPtr = len(r.Stmts)
	r.LastSafePtr = r.Ptr
	r.Buffering = false
}

func (r *Repl) reportError(err error) {
	e, ok := nerr.As(err)
	if !ok || r.OnError == nil {
		return
	}
	var line string
	if e.Kind != nerr.UnclosedBlock {
		line = r.sourceLine(e.Line)
	}
	r.OnError(e.Format("stdin", line))
}

// sourceLine recovers the raw text of REPL line number ln (0-based).
func (r *Repl) sourceLine(ln int) string {
	idx := ln - lineOffset
	if idx < 0 || idx >= len(r.Lines) {
		return ""
	}
	return r.Lines[idx]
}
