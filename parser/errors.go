package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors matching spec.md §7's error-kind taxonomy. Callers
// branch with errors.Is; cmd/lcsfe maps each to an exit code.
var (
	// ErrParse indicates source text that does not match the grammar.
	ErrParse = errors.New("parser: syntax error")

	// ErrReference indicates an equation, move, or basis reference to
	// a name not declared in the arity list, the equation set, or the
	// basis.
	ErrReference = errors.New("parser: undeclared reference")

	// ErrIndex indicates an out-of-range numeric index (an atom's
	// equation index, or the debug command's <index> argument).
	ErrIndex = errors.New("parser: index out of range")

	// ErrIO indicates a failure reading the underlying io.Reader.
	ErrIO = errors.New("parser: I/O error")
)

// ParseError carries the source position of a syntax error, the
// offending token's text, and the underlying reason.
type ParseError struct {
	Line, Col int
	Token     string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: unexpected %q: %v", e.Line, e.Col, e.Token, e.Err)
}

// Unwrap exposes the wrapped reason (typically ErrParse or ErrReference)
// for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrf builds a *ParseError anchored at tok, wrapping ErrParse.
func parseErrf(tok Token, format string, args ...any) error {
	return &ParseError{Line: tok.Line, Col: tok.Col, Token: tok.Text, Err: fmt.Errorf(format+": %w", append(args, ErrParse)...)}
}

// refErrf builds a *ParseError anchored at tok, wrapping ErrReference.
func refErrf(tok Token, format string, args ...any) error {
	return &ParseError{Line: tok.Line, Col: tok.Col, Token: tok.Text, Err: fmt.Errorf(format+": %w", append(args, ErrReference)...)}
}
