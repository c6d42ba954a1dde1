package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Handlers map each kind to exactly one HTTP status,
// everything unclassified is treated as ErrInternal.
var (
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
	ErrInternal     = errors.New("internal error")
)

type AppError struct {
	Kind    error  // one of the sentinels above
	Message string // human-readable, safe to return to the caller
	Cause   error  // underlying error, diagnostics only
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *AppError) Unwrap() error { return e.Kind }

func Conflict(msg string) *AppError {
	return &AppError{Kind: ErrConflict, Message: msg}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Kind: ErrUnauthorized, Message: msg}
}

func Validation(msg string) *AppError {
	return &AppError{Kind: ErrValidation, Message: msg}
}

func Internal(msg string, cause error) *AppError {
	return &AppError{Kind: ErrInternal, Message: msg, Cause: cause}
}

// Classified reports whether err already carries one of the non-internal
// kinds, so callers don't re-wrap a Conflict/NotFound into Internal.
func Classified(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrValidation)
}
