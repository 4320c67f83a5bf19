/*
File: token/token.go

Package token implements Nhotyp's lexical validation.

Nhotyp performs no scanning beyond whitespace splitting: a "token" is
just a substring of a source line that has already been isolated by the
parser. This package's only job is to validate that substring against one
of two character classes and wrap it for use in an expression or as an
identifier.
*/
package token

import (
	"github.com/nhotyp-run/nhotyp/nerr"
)

// MaxLength is the longest a single token may be.
const MaxLength = 63

// Token is a validated, non-empty piece of source text.
type Token struct {
	Text string
}

// identifierChar reports whether c is legal in an identifier token:
// lowercase letters and underscore.
func identifierChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == '_'
}

// anyChar reports whether c is legal in an expression-position ("any")
// token: everything identifierChar allows, plus decimal digits and the
// arithmetic/comparison operator glyphs.
func anyChar(c byte) bool {
	if identifierChar(c) {
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	switch c {
	case '<', '=', '>', '!', '+', '-', '*', '%', '/':
		return true
	}
	return false
}

// New validates text as an identifier token: characters drawn from
// [a-z_]. Used for variable and function names.
func New(text string, line int) (Token, error) {
	return validate(text, line, identifierChar)
}

// NewAny validates text as an expression-position token: identifier
// characters plus digits and operator glyphs. Used for numeric literals,
// operators, comparisons, and identifiers that appear inside an
// expression.
func NewAny(text string, line int) (Token, error) {
	return validate(text, line, anyChar)
}

func validate(text string, line int, allowed func(byte) bool) (Token, error) {
	if len(text) > MaxLength {
		return Token{}, nerr.New(nerr.TokenTooLong, line, "token %q is longer than %d characters", text, MaxLength)
	}
	for i := 0; i < len(text); i++ {
		if !allowed(text[i]) {
			return Token{}, nerr.New(nerr.IllegalChar, line, "unexpected character %q in token %q", text[i], text)
		}
	}
	return Token{Text: text}, nil
}

// String returns the token's underlying text.
func (t Token) String() string {
	return t.Text
}
