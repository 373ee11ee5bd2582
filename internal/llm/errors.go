package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies a provider failure.
type ErrorKind string

const (
	// KindRateLimit is an HTTP 429 from the provider.
	KindRateLimit ErrorKind = "rate_limit"

	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable ErrorKind = "unavailable"

	// KindInvalidResponse means the reply was missing or did not match the
	// requested schema.
	KindInvalidResponse ErrorKind = "invalid_response"

	// KindMaxTokens means the reply was cut off at MaxTokens.
	KindMaxTokens ErrorKind = "max_tokens"
)

// Error is returned by every provider in this package.
type Error struct {
	Kind       ErrorKind
	RetryAfter time.Duration   // set for KindRateLimit when the provider says so
	Content    json.RawMessage // the offending reply, if any
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRateLimit && e.RetryAfter > 0:
		return fmt.Sprintf("llm %s (retry after %s): %v", e.Kind, e.RetryAfter, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("llm %s", e.Kind)
	}
	return fmt.Sprintf("llm %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// fromStatus maps an HTTP status from a provider API error.
func fromStatus(status int, err error) *Error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimit, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

func invalidResponse(content json.RawMessage, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidResponse, Content: content, Err: fmt.Errorf(format, args...)}
}
