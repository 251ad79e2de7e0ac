package messaging

import (
	"context"
	"errors"
	"time"
)

// RetryConfig defines simple retry behavior
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 1,
		Delay:       500 * time.Millisecond,
	}
}

// RetryWithBackoff executes fn until it succeeds, fails permanently or runs
// out of attempts. The wait grows linearly with the attempt number.
func RetryWithBackoff(ctx context.Context, config *RetryConfig, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		var relayErr *RelayError
		if errors.As(err, &relayErr) && !relayErr.retryable() {
			return err
		}

		if attempt < config.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.Delay * time.Duration(attempt+1)):
			}
		}
	}

	return lastErr
}
