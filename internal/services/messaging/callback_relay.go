package messaging

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// CallbackRelay posts {to, response} to an n8n webhook that forwards it to WhatsApp.
type CallbackRelay struct {
	config *CallbackConfig
	client *resty.Client
}

func NewCallbackRelay(config *CallbackConfig) (*CallbackRelay, error) {
	if err := config.Validate(); err != nil {
		return nil, &RelayError{Type: ErrTypeConfig, Relay: "n8n", Message: err.Error()}
	}

	client := resty.New().
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json")

	return &CallbackRelay{config: config, client: client}, nil
}

func (r *CallbackRelay) Name() string { return "n8n" }

func (r *CallbackRelay) Send(ctx context.Context, to, text string) error {
	if to == "" || strings.TrimSpace(text) == "" {
		return &RelayError{Type: ErrTypeValidation, Relay: r.Name(), Message: "recipient and text are required"}
	}

	return RetryWithBackoff(ctx, r.config.retry(), func(ctx context.Context) error {
		resp, err := r.client.R().
			SetContext(ctx).
			SetBody(map[string]string{"to": to, "response": text}).
			Post(r.config.URL)
		if err != nil {
			return &RelayError{Type: ErrTypeNetwork, Relay: r.Name(), Message: "request failed", Cause: err}
		}
		if resp.StatusCode() == http.StatusTooManyRequests {
			return &RelayError{Type: ErrTypeRateLimit, Relay: r.Name(), Code: resp.StatusCode(), Message: "rate limit exceeded"}
		}
		if resp.IsError() {
			return &RelayError{Type: ErrTypeProvider, Relay: r.Name(), Code: resp.StatusCode(), Message: resp.String()}
		}
		return nil
	})
}
