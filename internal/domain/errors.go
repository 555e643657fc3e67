package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Validation kinds. Each wraps ErrValidation so callers that only care about
// "the request was invalid" can match the umbrella sentinel.
var (
	ErrMissingField      = fmt.Errorf("missing field: %w", ErrValidation)
	ErrTypeMismatch      = fmt.Errorf("type mismatch: %w", ErrValidation)
	ErrBlankValue        = fmt.Errorf("blank value: %w", ErrValidation)
	ErrLengthExceeded    = fmt.Errorf("length exceeded: %w", ErrValidation)
	ErrNothingToUpdate   = fmt.Errorf("nothing to update: %w", ErrValidation)
	ErrInvalidIdentifier = fmt.Errorf("invalid identifier: %w", ErrValidation)
	ErrQueryParam        = fmt.Errorf("invalid query parameter: %w", ErrValidation)
	ErrInvalidBody       = fmt.Errorf("invalid request body: %w", ErrValidation)
)

// Error is a typed failure carrying a single human-readable detail message.
// Use errors.Is(err, ErrTypeMismatch) (or any other kind) for programmatic
// checks, or errors.As(err, &derr) to read the offending field.
type Error struct {
	Kind   error
	Field  string
	Detail string
}

// NewError builds an *Error of the given kind.
func NewError(kind error, field, detail string) *Error {
	return &Error{Kind: kind, Field: field, Detail: detail}
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// DetailOf returns the client-facing detail message carried by err, and false
// when err is not a domain error.
func DetailOf(err error) (string, bool) {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Detail, true
	}
	return "", false
}
