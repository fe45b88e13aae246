package llm

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindRateLimited     Kind = "rate_limited"
	KindUpstream        Kind = "upstream"
	KindMalformedOutput Kind = "malformed_output"
)

// Error is the only error type backends return. Retryable is decided where
// the failure is observed, from the status code the provider reported.
type Error struct {
	Kind       Kind
	Retryable  bool
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusError classifies a provider failure by HTTP status.
func statusError(status int, err error) *Error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimited, Retryable: true, StatusCode: status, Err: err}
	}
	return &Error{Kind: KindUpstream, StatusCode: status, Err: err}
}

func upstream(err error) *Error {
	return &Error{Kind: KindUpstream, Err: err}
}

func malformed(format string, args ...any) *Error {
	return &Error{Kind: KindMalformedOutput, Err: fmt.Errorf(format, args...)}
}

// IsRetryable reports whether err carries a retryable *Error.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
