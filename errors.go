package rbsparse

import "fmt"

// SyntaxError is returned by every parse_* operation the first time
// the input fails to match the grammar. It is recoverable by the
// caller, never by the parser itself — see Parser.setError.
type SyntaxError struct {
	Message   string
	TokenType TokenType
	Token     string
	Range     Range
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: Syntax error: %s, token=%q (%s)", e.Range, e.Message, e.Token, e.TokenType)
}

// RuntimeError marks a programming error: misuse of the allocator,
// the constant pool, the type-variable table, or a Location's child
// map. These are never expected from well-formed input and are
// raised as panics rather than threaded through the error return,
// mirroring the assertion-style failures in the source parser
// (RBS_ASSERT / CHECK_PARSE).
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return "rbsparse: " + e.Message }

func panicRuntime(format string, args ...any) {
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...)})
}
