package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransaction indicates a ledger posting or query that is malformed or not allowed by
// ledger rules. It wraps ErrValidation so callers matching on ErrValidation still see it.
var ErrInvalidTransaction = fmt.Errorf("invalid transaction: %w", ErrValidation)

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the acting user may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a state conflict.
var ErrConflict = errors.New("conflict")

// AppError carries an HTTP-ish status code alongside an underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message naming what was missing.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewForbiddenError wraps ErrForbidden with a message.
func NewForbiddenError(message string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, message)
}

// NewInvalidTransactionError wraps ErrInvalidTransaction with a message.
func NewInvalidTransactionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransaction, fmt.Sprintf(format, args...))
}

// Message returns the human-readable part of a wrapped sentinel error, i.e. the text after the
// last sentinel prefix. Falls back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	msg := err.Error()
	for _, sentinel := range []error{ErrInvalidTransaction, ErrValidation, ErrForbidden, ErrNotFound, ErrDuplicate, ErrConflict} {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
