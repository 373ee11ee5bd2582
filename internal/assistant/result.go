package assistant

import (
	"errors"
	"fmt"

	"github.com/abhisek/calctutor/internal/symbolic"
)

// ErrKind classifies a failed computation.
type ErrKind string

const (
	// ErrKindParse means the expression or variable could not be parsed.
	ErrKindParse ErrKind = "parse"

	// ErrKindEvaluation means the expression parsed but the operation
	// could not be carried out (no integration rule, unbound symbol).
	ErrKindEvaluation ErrKind = "evaluation"
)

// CalcError is the failure reason carried by a Result.
type CalcError struct {
	Kind ErrKind
	Op   string // "differentiate", "integrate", "plot"
	Err  error
}

func (e *CalcError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *CalcError) Unwrap() error { return e.Err }

// newCalcError classifies err by its symbolic error type.
func newCalcError(op string, err error) *CalcError {
	kind := ErrKindEvaluation
	var pe *symbolic.ParseError
	if errors.As(err, &pe) {
		kind = ErrKindParse
	}
	return &CalcError{Kind: kind, Op: op, Err: err}
}

// Result is the outcome of Differentiate or Integrate: either a formatted
// Value or a non-nil Err of type *CalcError.
type Result struct {
	Value string
	Err   error
}

// OK reports whether the computation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Kind returns the failure kind, or "" on success.
func (r Result) Kind() ErrKind {
	var ce *CalcError
	if errors.As(r.Err, &ce) {
		return ce.Kind
	}
	return ""
}

// Text renders the result for display. Failures start with "error: ".
func (r Result) Text() string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return r.Value
}
