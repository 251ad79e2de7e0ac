package ai

import (
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeRateLimit  ErrorType = "RATE_LIMIT"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type AIError struct {
	Type      ErrorType
	Code      int
	Message   string
	Model     string
	Operation string
	Cause     error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error { return e.Cause }

// Retryable reports whether the request may succeed if sent again.
func (e *AIError) Retryable() bool {
	switch e.Type {
	case ErrTypeNetwork, ErrTypeRateLimit:
		return true
	case ErrTypeProvider:
		return e.Code >= http.StatusInternalServerError
	}
	return false
}

func NewConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeConfig, Message: msg, Operation: "config"}
}

func NewValidationError(operation, msg string) *AIError {
	return &AIError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

// NewProviderError classifies a client error by the upstream status code.
func NewProviderError(operation, model string, cause error) *AIError {
	e := &AIError{Type: ErrTypeProvider, Operation: operation, Model: model, Message: "provider request failed", Cause: cause}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(cause, &apiErr):
		e.Code = apiErr.HTTPStatusCode
	case errors.As(cause, &reqErr):
		e.Code = reqErr.HTTPStatusCode
	default:
		e.Type = ErrTypeNetwork
		e.Message = "provider unreachable"
		return e
	}
	if e.Code == http.StatusTooManyRequests {
		e.Type = ErrTypeRateLimit
		e.Message = "provider rate limit exceeded"
	}
	return e
}
