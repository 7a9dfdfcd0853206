package lex

import "fmt"

// Error is a LexError: an invalid character or malformed token at a given
// line and byte offset.
type Error struct {
	Lexeme string
	Line   int
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at line %d (byte %d): invalid token %q", e.Line, e.Offset, e.Lexeme)
}
