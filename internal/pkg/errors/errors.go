package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for retry and logging decisions. Only
// transport faults are retryable; provider faults need caller
// intervention (bad key, rate limit) and parse faults are defects.
type Kind string

const (
	KindNotFound  Kind = "not_found"
	KindTransport Kind = "transport"
	KindProvider  Kind = "provider"
	KindParse     Kind = "parse"
	KindInternal  Kind = "internal"
	KindInvalid   Kind = "invalid_input"
)

type AppError struct {
	Kind       Kind                   `json:"-"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code, message string, statusCode int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Wrap attaches an underlying cause without mutating the sentinel.
func (e *AppError) Wrap(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// KindOf extracts the taxonomy kind; unknown errors are internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsRetryable reports whether a retry can help. True only for transport
// faults: provider errors need caller intervention and parse errors are
// deterministic.
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransport
}
