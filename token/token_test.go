/*
File: token/token_test.go
*/
package token

import (
	"strings"
	"testing"

	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/stretchr/testify/assert"
)

func TestNew_Identifier(t *testing.T) {
	tok, err := New("my_var", 1)
	assert.NoError(t, err)
	assert.Equal(t, "my_var", tok.String())
}

func TestNew_RejectsDigitsAndOperators(t *testing.T) {
	_, err := New("x1", 3)
	e, ok := nerr.As(err)
	assert.True(t, ok)
	assert.Equal(t, nerr.IllegalChar, e.Kind)
	assert.Equal(t, 3, e.Line)
}

func TestNewAny_AcceptsLiteralsAndOperators(t *testing.T) {
	for _, text := range []string{"42", "-7", "+", "<=", "!=", "scan"} {
		_, err := NewAny(text, 1)
		assert.NoError(t, err, text)
	}
}

func TestNewAny_RejectsOverlongToken(t *testing.T) {
	_, err := NewAny(strings.Repeat("a", MaxLength+1), 5)
	e, ok := nerr.As(err)
	assert.True(t, ok)
	assert.Equal(t, nerr.TokenTooLong, e.Kind)
}

func TestNewAny_RejectsIllegalChar(t *testing.T) {
	_, err := NewAny("a@b", 2)
	e, ok := nerr.As(err)
	assert.True(t, ok)
	assert.Equal(t, nerr.IllegalChar, e.Kind)
}
