package domain

import (
	"errors"

	"github.com/hearthsure/policyadmin/internal/apperrors"
)

// Error is a business-rule violation raised by the domain layer.
// Code is a stable, machine-readable identifier (e.g. "policy.invalid_state")
// that callers branch on; Message is human-readable only.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Unwrap lets errors.Is treat every domain error as a validation failure,
// so handlers can fall back to the generic apperrors mapping.
func (e *Error) Unwrap() error {
	return apperrors.ErrValidation
}

// NewError creates a domain error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ErrorCode extracts the domain error code from err, or "" if err does not
// carry one.
func ErrorCode(err error) string {
	var domErr *Error
	if errors.As(err, &domErr) {
		return domErr.Code
	}
	return ""
}
