/*
File: ast/ast_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_DefineAndLookup(t *testing.T) {
	p := NewProgram()
	assert.False(t, p.Has("f"))

	fn := &Function{Name: "f", Body: Block{{Kind: RetKind}}}
	p.Define(fn)

	got, ok := p.Lookup("f")
	assert.True(t, ok)
	assert.Same(t, fn, got)
}

func TestProgram_SnapshotAndRestore(t *testing.T) {
	p := NewProgram()
	p.Define(&Function{Name: "f"})
	snap := p.Snapshot()

	p.Define(&Function{Name: "g"})
	assert.True(t, p.Has("g"))

	p.Restore(snap)
	assert.False(t, p.Has("g"), "restore must discard functions defined after the snapshot")
	assert.True(t, p.Has("f"))
}
