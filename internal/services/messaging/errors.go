package messaging

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeRateLimit  ErrorType = "RATE_LIMIT"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type RelayError struct {
	Type    ErrorType
	Relay   string
	Code    int
	Message string
	Cause   error
}

func (e *RelayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s relay %s error: %s (caused by: %v)", e.Relay, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s relay %s error: %s", e.Relay, e.Type, e.Message)
}

func (e *RelayError) Unwrap() error { return e.Cause }

// retryable is false for errors that repeat identically on every attempt.
func (e *RelayError) retryable() bool {
	switch e.Type {
	case ErrTypeConfig, ErrTypeValidation:
		return false
	case ErrTypeProvider:
		return e.Code >= 500
	}
	return true
}
