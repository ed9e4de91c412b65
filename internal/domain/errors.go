package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers classify with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrInvariantViolation = errors.New("invariant violation")
)

// Error is a classified error whose message is safe to show to API clients.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func Conflictf(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func InvariantViolationf(format string, args ...any) error {
	return newError(ErrInvariantViolation, format, args...)
}

// PublicMessage returns the client-facing message of a classified error.
func PublicMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg, true
	}
	return "", false
}
