// Errors in this package, plus lex.Error (LexError), escape.Error
// (EscapeError), and iri.Error (IriResolutionError), form the closed error
// taxonomy: every one of them is fatal and aborts the parse at the
// current position, carrying enough information (line, offending token)
// for a caller to build a diagnostic.
package parser

import (
	"fmt"

	"github.com/aleksaelezovic/turtlecore/internal/lex"
)

// ParseError is an LL(1) table miss not resolved by the FOLLOW/ε rule.
type ParseError struct {
	Expected []string
	Actual   lex.Token
	Line     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: expected one of %v, got %s", e.Line, e.Expected, e.Actual)
}

// UndefinedPrefixError is use of a prefix not bound by any earlier
// @prefix/PREFIX directive.
type UndefinedPrefixError struct {
	Prefix string
	Line   int
}

func (e *UndefinedPrefixError) Error() string {
	return fmt.Sprintf("undefined prefix %q at line %d", e.Prefix, e.Line)
}

// InternalError indicates an invariant (e.g. value-stack layout) was
// violated: a bug in the parse table or semantic actions, not a malformed
// document.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal parser error: %s", e.Detail)
}
