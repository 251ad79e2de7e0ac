// File: internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation   ErrorType = "VALIDATION"
	ErrTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrTypeConflict     ErrorType = "CONFLICT"
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInternal     ErrorType = "INTERNAL"
)

// AppError carries a user-facing Message; Cause is for logs only.
type AppError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error in %s: %s (caused by: %v)", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(operation, msg string) *AppError {
	return &AppError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewUnauthorizedError(operation, msg string) *AppError {
	return &AppError{Type: ErrTypeUnauthorized, Operation: operation, Message: msg}
}

func NewConflictError(operation, msg string) *AppError {
	return &AppError{Type: ErrTypeConflict, Operation: operation, Message: msg}
}

func NewNotFoundError(operation, msg string) *AppError {
	return &AppError{Type: ErrTypeNotFound, Operation: operation, Message: msg}
}

func NewInternalError(operation, msg string, cause error) *AppError {
	return &AppError{Type: ErrTypeInternal, Operation: operation, Message: msg, Cause: cause}
}

// ErrorTypeOf returns the type of the first AppError in err's chain, or
// ErrTypeInternal for anything else.
func ErrorTypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrTypeInternal
}
