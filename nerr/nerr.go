/*
File: nerr/nerr.go

Package nerr defines Nhotyp's typed failure taxonomy.

Every stage of the interpreter, from lexical validation through parsing,
program construction, expression evaluation, and statement execution,
raises one of the Kind values below instead of a bare error string. Each
carries the 1-based source line on which the offending construct
appeared in file mode, or the 0-based REPL line in interactive mode,
except UnclosedBlock, which by construction has no single offending
line.
*/
package nerr

import "fmt"

// Kind identifies a failure category from Nhotyp's error taxonomy.
type Kind int

const (
	IllegalChar Kind = iota
	TokenTooLong
	UnknownToken
	MalformedAssign
	MalformedCond
	MalformedLoop
	MalformedRet
	MalformedFunc
	MalformedEnd
	UnclosedBlock
	DuplicateToken
	WildStatement
	WildFunction
	MisplacedRet
	UndeclaredToken
	BadExpression
	InputError
)

var kindNames = map[Kind]string{
	IllegalChar:     "IllegalChar",
	TokenTooLong:    "TokenTooLong",
	UnknownToken:    "UnknownToken",
	MalformedAssign: "MalformedAssign",
	MalformedCond:   "MalformedCond",
	MalformedLoop:   "MalformedLoop",
	MalformedRet:    "MalformedRet",
	MalformedFunc:   "MalformedFunc",
	MalformedEnd:    "MalformedEnd",
	UnclosedBlock:   "UnclosedBlock",
	DuplicateToken:  "DuplicateToken",
	WildStatement:   "WildStatement",
	WildFunction:    "WildFunction",
	MisplacedRet:    "MisplacedRet",
	UndeclaredToken: "UndeclaredToken",
	BadExpression:   "BadExpression",
	InputError:      "InputError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownKind"
}

// Error is the concrete error value raised by every interpreter stage.
// Line is 0 for UnclosedBlock, which has no single attributable line.
type Error struct {
	Kind Kind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// New builds an *Error with a formatted message.
func New(kind Kind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// As reports whether err is an *Error and, if so, returns it.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// Format renders the two-line runtime error format:
//
//	<source>:<line>: error: <human message>
//	  > <offending source line, trimmed>
//
// sourceLine is the raw offending line of source text (may be empty, e.g.
// for UnclosedBlock, in which case the second line is omitted).
func (e *Error) Format(source string, sourceLine string) string {
	head := fmt.Sprintf("%s:%d: error: %s", source, e.Line, e.Msg)
	if e.Kind == UnclosedBlock {
		return head
	}
	return fmt.Sprintf("%s\n  > %s", head, trim(sourceLine))
}

func trim(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
