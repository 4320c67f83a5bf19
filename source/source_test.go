/*
File: source/source_test.go
*/
package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SplitsOnNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.nho")
	require.NoError(t, os.WriteFile(path, []byte("function main as\n return 1\nend function"), 0o644))

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"function main as", " return 1", "end function"}, lines)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.nho"))
	assert.Error(t, err)
}

func TestFatalCannotRead_Wording(t *testing.T) {
	var buf bytes.Buffer
	FatalCannotRead(&buf, "foo.nho")
	assert.Equal(t, "nhotyp: fatal error: foo.nho: cannot read file\nnhotyp: fatal error: no input files\ninterpretation terminated.\n", buf.String())
}

func TestFatalNoInputFiles_Wording(t *testing.T) {
	var buf bytes.Buffer
	FatalNoInputFiles(&buf)
	assert.Equal(t, "nhotyp: fatal error: no input files\ninterpretation terminated.\n", buf.String())
}
