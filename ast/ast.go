/*
File: ast/ast.go

Package ast defines Nhotyp's data model: expressions, the tagged
statement variants, blocks, functions, and the program registry they
are assembled into.

The AST is intentionally flat: an Expr is an ordered token vector rather
than a pre-built expression tree. Prefix evaluation recurses over that
flat vector with a shared cursor instead of walking a pre-built tree;
an eager tree build during parsing would work too, but a flat vector is
what the parser below produces and what eval walks.
*/
package ast

// MaxParams is the maximum number of parameters a function may declare.
const MaxParams = 16

// Reserved is the set of words that may never be used as a variable or
// function name.
var Reserved = map[string]bool{
	"let": true, "if": true, "then": true, "while": true, "do": true,
	"function": true, "as": true, "return": true, "end": true,
	"print": true, "and": true, "or": true, "xor": true, "not": true,
	"scan": true,
}

// Expr is an ordered sequence of validated tokens in prefix (Polish)
// form. Line records the source line the expression was parsed from, for
// error attribution during evaluation.
type Expr struct {
	Tokens []string
	Line   int
}

// Kind tags the variant a Stmt holds.
type Kind int

const (
	// AssignKind: let NAME = EXPR
	AssignKind Kind = iota
	// CondKind: if EXPR then ... end if
	CondKind
	// LoopKind: while EXPR do ... end while
	LoopKind
	// PrintKind: print NAME...
	PrintKind
	// RetKind: return EXPR
	RetKind
	// FuncKind: function NAME PARAM... as ... end function (top level only)
	FuncKind
)

// Stmt is a single statement, tagged by Kind. Only the fields relevant to
// the tag are populated; this mirrors the source's tagged-union shape
// without requiring a Go sum type.
type Stmt struct {
	Kind Kind
	Line int

	// AssignKind
	Name string
	Expr Expr

	// CondKind / LoopKind
	Cond Expr
	Body Block

	// PrintKind
	Names []string

	// FuncKind
	FuncName string
	Params   []string

	// FuncKind body reuses Body above.
}

// Block is an ordered list of statements.
type Block []Stmt

// Function is a registered, callable function definition.
type Function struct {
	Name        string
	Params      []string
	Body        Block
	DefinedLine int
}

// Program is the function registry built from a file or REPL session's
// top-level Func statements. Names are globally unique. The only removal
// is Restore, which discards entries merged after a Snapshot.
type Program struct {
	Functions map[string]*Function
}

// NewProgram returns an empty, ready-to-use registry.
func NewProgram() *Program {
	return &Program{Functions: make(map[string]*Function)}
}

// Lookup returns the function named name, if registered.
func (p *Program) Lookup(name string) (*Function, bool) {
	f, ok := p.Functions[name]
	return f, ok
}

// Has reports whether name collides with an already-registered function.
func (p *Program) Has(name string) bool {
	_, ok := p.Functions[name]
	return ok
}

// Define inserts fn into the registry. The caller is responsible for the
// reserved-word and duplicate-name checks; Define itself only
// performs the insertion.
func (p *Program) Define(fn *Function) {
	p.Functions[fn.Name] = fn
}

// Snapshot returns a shallow copy of the registry's name table, suitable
// for restoring with Restore. Function values themselves are immutable
// once defined, so only the map needs copying.
func (p *Program) Snapshot() map[string]*Function {
	cp := make(map[string]*Function, len(p.Functions))
	for k, v := range p.Functions {
		cp[k] = v
	}
	return cp
}

// Restore replaces the registry's name table with snap, discarding any
// functions merged in since the snapshot was taken.
func (p *Program) Restore(snap map[string]*Function) {
	p.Functions = snap
}
