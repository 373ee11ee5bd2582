package symbolic

import "fmt"

// ParseError is returned when input text is not a valid expression.
type ParseError struct {
	Input string
	Pos   int // byte offset of the offending token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s at position %d", e.Input, e.Msg, e.Pos)
}

// UnsupportedError is returned when no rule covers an operation on an
// expression, e.g. an integral without an elementary antiderivative.
type UnsupportedError struct {
	Op   string
	Expr string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: no rule for %s", e.Op, e.Expr)
}

// EvalError is returned when an expression cannot be evaluated numerically
// over a single variable.
type EvalError struct {
	Expr   string
	Symbol string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate %s: unbound symbol %q", e.Expr, e.Symbol)
}
