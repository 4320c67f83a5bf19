/*
File: repl/repl_test.go
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepl(t *testing.T) (*Repl, *bytes.Buffer, *[]string) {
	t.Helper()
	var out bytes.Buffer
	var errs []string
	r := New(&out, func() (string, error) { return "", nil })
	r.OnError = func(msg string) { errs = append(errs, msg) }
	return r, &out, &errs
}

func TestFeed_MultiLineFunctionDefinition(t *testing.T) {
	r, _, errs := newTestRepl(t)

	r.Feed("function g as")
	assert.True(t, r.Buffering)
	assert.Empty(t, *errs)

	r.Feed("return 1")
	assert.True(t, r.Buffering)
	assert.Empty(t, *errs)

	r.Feed("end function")
	assert.False(t, r.Buffering)
	assert.Empty(t, *errs)
	assert.True(t, r.Program.Has("g"))
}

func TestFeed_TopLevelAssignCommits(t *testing.T) {
	r, out, errs := newTestRepl(t)

	r.Feed("let x = 5")
	require.Empty(t, *errs)
	v, ok := r.Scope.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, int64(5), v.Int)

	r.Feed("print x")
	require.Empty(t, *errs)
	assert.Equal(t, "  . 5\n", out.String())
}

func TestFeed_ErrorRollsBackWithoutDisturbingPriorState(t *testing.T) {
	r, out, errs := newTestRepl(t)

	r.Feed("let x = 5")
	require.Empty(t, *errs)
	stmtsBefore := len(r.Stmts)

	r.Feed("print y") // y is undeclared
	require.Len(t, *errs, 1)
	assert.Contains(t, (*errs)[0], "error:")
	assert.Equal(t, stmtsBefore, len(r.Stmts), "the failed print must not remain in the statement buffer")

	v, ok := r.Scope.Lookup("x")
	require.True(t, ok, "earlier committed assignment must survive the rollback")
	assert.Equal(t, int64(5), v.Int)
	assert.Equal(t, "", out.String(), "the failed print must not have produced output")
}

func TestFeed_ReturnAtTopLevelIsWildStatement(t *testing.T) {
	r, _, errs := newTestRepl(t)

	r.Feed("return 1")
	require.Len(t, *errs, 1)
	assert.Equal(t, 0, len(r.Stmts))
}

func TestFeed_VariableShadowsFunctionLeavesNoTrace(t *testing.T) {
	r, _, errs := newTestRepl(t)

	r.Feed("function f as")
	r.Feed("return 1")
	r.Feed("end function")
	require.Empty(t, *errs)

	r.Feed("let f = 2")
	require.Len(t, *errs, 1)
	_, ok := r.Scope.Lookup("f")
	assert.False(t, ok, "the rejected assignment must not bind f")
}

func TestPrompt_SwitchesToBufferingInsideOpenBlock(t *testing.T) {
	r, _, _ := newTestRepl(t)
	assert.Equal(t, readyPrompt, r.Prompt())
	r.Feed("if == 1 1 then")
	assert.Equal(t, bufferingPrompt, r.Prompt())
}

func TestFeed_CopyrightAndLicenseDoNotAffectState(t *testing.T) {
	r, out, errs := newTestRepl(t)
	ptrBefore := r.Ptr

	r.Feed("copyright")
	r.Feed("license")

	assert.Empty(t, *errs)
	assert.Equal(t, ptrBefore, r.Ptr)
	assert.Contains(t, out.String(), "Copyright")
	assert.Contains(t, out.String(), "license")
}
