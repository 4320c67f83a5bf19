/*
File: eval/evaluator.go

Package eval is Nhotyp's tree-walking evaluator and statement executor,
treated as one coherent subsystem alongside the parser and the REPL
driver.

An Evaluator carries no program state of its own beyond the function
registry and the I/O streams `scan` and `print` talk to; all variable
state lives in the caller-supplied scope.Scope for the duration of one
call frame: scopes are created at each call and destroyed on return.
*/
package eval

import (
	"bufio"
	"io"

	"github.com/nhotyp-run/nhotyp/ast"
)

// flusher is implemented by writers (like bufio.Writer) that need an
// explicit Flush after a prompt or print line, since stdout is flushed
// after every prompt and print.
type flusher interface {
	Flush() error
}

// LineReader supplies one line of input for `scan`. It is a
// function rather than a bare io.Reader so that REPL mode can route
// `scan` through the same line-editing reader that drives the REPL
// prompt itself (see the repl package), instead of racing a second
// buffered reader against readline's terminal handling on the same file
// descriptor.
type LineReader func() (string, error)

// Evaluator walks a Program's ASTs against caller-provided scopes.
type Evaluator struct {
	Program  *ast.Program
	Writer   io.Writer
	ScanLine LineReader
}

// New creates an Evaluator bound to program, writing print/scan-prompt
// output to w and reading scan input via scanLine.
func New(program *ast.Program, w io.Writer, scanLine LineReader) *Evaluator {
	return &Evaluator{
		Program:  program,
		Writer:   w,
		ScanLine: scanLine,
	}
}

// NewFromReader is a convenience constructor for non-interactive
// contexts (file execution, tests): scan input is read line-by-line
// from r via a bufio.Reader.
func NewFromReader(program *ast.Program, w io.Writer, r io.Reader) *Evaluator {
	br := bufio.NewReader(r)
	return New(program, w, func() (string, error) {
		return br.ReadString('\n')
	})
}

func (e *Evaluator) flush() {
	if f, ok := e.Writer.(flusher); ok {
		f.Flush()
	}
}
