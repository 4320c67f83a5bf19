/*
File: parser/parser_test.go
*/
package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nhotyp-run/nhotyp/ast"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(src string) (ast.Block, error) {
	lines := strings.Split(src, "\n")
	p := New(lines, 1)
	return p.ParseBlock("")
}

func TestParseBlock_IdentityMain(t *testing.T) {
	block, err := parseSource("function main as\n return 42\nend function")
	require.NoError(t, err)
	require.Len(t, block, 1)
	fn := block[0]
	assert.Equal(t, ast.FuncKind, fn.Kind)
	assert.Equal(t, "main", fn.FuncName)
	require.Len(t, fn.Body, 1)
	assert.Equal(t, ast.RetKind, fn.Body[0].Kind)
	assert.Equal(t, []string{"42"}, fn.Body[0].Expr.Tokens)
}

func TestParseBlock_Arithmetic(t *testing.T) {
	src := "function main as\n let r = + 2 * 3 4\n print r\n return r\nend function"
	block, err := parseSource(src)
	require.NoError(t, err)
	body := block[0].Body
	require.Len(t, body, 3)
	assert.Equal(t, ast.AssignKind, body[0].Kind)
	assert.Equal(t, "r", body[0].Name)
	assert.Equal(t, []string{"+", "2", "*", "3", "4"}, body[0].Expr.Tokens)
	assert.Equal(t, ast.PrintKind, body[1].Kind)
	assert.Equal(t, []string{"r"}, body[1].Names)
}

func TestParseBlock_LoopAndCondition(t *testing.T) {
	src := "function main as\n let i = 0\n while < i 5 do\n  let i = + i 1\n end while\n return i\nend function"
	block, err := parseSource(src)
	require.NoError(t, err)
	body := block[0].Body
	require.Len(t, body, 3)
	loop := body[1]
	assert.Equal(t, ast.LoopKind, loop.Kind)
	assert.Equal(t, []string{"<", "i", "5"}, loop.Cond.Tokens)
	require.Len(t, loop.Body, 1)
}

func TestParseBlock_CommentsAreStripped(t *testing.T) {
	withComment, err := parseSource("function main as # entry point\n return 1 # the answer\nend function")
	require.NoError(t, err)
	withoutComment, err2 := parseSource("function main as\n return 1\nend function")
	require.NoError(t, err2)
	if diff := cmp.Diff(withoutComment, withComment); diff != "" {
		t.Errorf("comment stripping changed the AST (-without +with):\n%s", diff)
	}
}

func TestParseBlock_WhitespaceIsIdempotent(t *testing.T) {
	spaced, err := parseSource("function main  as\n   return   1\nend function")
	require.NoError(t, err)
	tight, err2 := parseSource("function main as\n return 1\nend function")
	require.NoError(t, err2)
	if diff := cmp.Diff(tight, spaced); diff != "" {
		t.Errorf("extra whitespace changed the AST (-tight +spaced):\n%s", diff)
	}
}

func TestParseBlock_UnclosedBlockHasNoLine(t *testing.T) {
	_, err := parseSource("function main as\n return 1")
	e, ok := nerr.As(err)
	require.True(t, ok)
	assert.Equal(t, nerr.UnclosedBlock, e.Kind)
	assert.Equal(t, 0, e.Line)
}

func TestParseBlock_EndAtTopLevelIsMalformed(t *testing.T) {
	_, err := parseSource("end function")
	e, ok := nerr.As(err)
	require.True(t, ok)
	assert.Equal(t, nerr.MalformedEnd, e.Kind)
}

func TestParseBlock_UnknownHead(t *testing.T) {
	_, err := parseSource("frobnicate 1 2 3")
	e, ok := nerr.As(err)
	require.True(t, ok)
	assert.Equal(t, nerr.UnknownToken, e.Kind)
	assert.Equal(t, 1, e.Line)
}

func TestParseBlock_TooManyParams(t *testing.T) {
	params := strings.Repeat("p ", ast.MaxParams+1)
	_, err := parseSource("function f " + params + "as\n return 1\nend function")
	e, ok := nerr.As(err)
	require.True(t, ok)
	assert.Equal(t, nerr.MalformedFunc, e.Kind)
}

func TestParseBlock_ReservedParam(t *testing.T) {
	_, err := parseSource("function f if as\n return 1\nend function")
	e, ok := nerr.As(err)
	require.True(t, ok)
	assert.Equal(t, nerr.DuplicateToken, e.Kind)
}
