package messaging

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxTelegramMessage is the Bot API limit for one sendMessage text, in characters.
const maxTelegramMessage = 4096

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

type TelegramRelay struct {
	config *TelegramConfig
	client *resty.Client
}

func NewTelegramRelay(config *TelegramConfig) (*TelegramRelay, error) {
	if err := config.Validate(); err != nil {
		return nil, &RelayError{Type: ErrTypeConfig, Relay: "telegram", Message: err.Error()}
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(config.APIURL, "/")).
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json")

	return &TelegramRelay{config: config, client: client}, nil
}

func (r *TelegramRelay) Name() string { return "telegram" }

// Send posts text to chatID, split into as many messages as the API limit requires.
func (r *TelegramRelay) Send(ctx context.Context, chatID, text string) error {
	if chatID == "" || strings.TrimSpace(text) == "" {
		return &RelayError{Type: ErrTypeValidation, Relay: r.Name(), Message: "chat id and text are required"}
	}

	for _, part := range splitMessage(text, maxTelegramMessage) {
		err := RetryWithBackoff(ctx, r.config.retry(), func(ctx context.Context) error {
			return r.sendMessage(ctx, chatID, part)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TelegramRelay) sendMessage(ctx context.Context, chatID, text string) error {
	var result telegramResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("token", r.config.BotToken).
		SetBody(map[string]string{"chat_id": chatID, "text": text}).
		SetResult(&result).
		SetError(&result).
		Post("/bot{token}/sendMessage")
	if err != nil {
		return &RelayError{Type: ErrTypeNetwork, Relay: r.Name(), Message: "request failed", Cause: err}
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return &RelayError{Type: ErrTypeRateLimit, Relay: r.Name(), Code: resp.StatusCode(), Message: "rate limit exceeded"}
	}
	if resp.IsError() || !result.OK {
		return &RelayError{
			Type:    ErrTypeProvider,
			Relay:   r.Name(),
			Code:    resp.StatusCode(),
			Message: fmt.Sprintf("sendMessage rejected: %s", result.Description),
		}
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit characters, preferring
// to break on a newline or space.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i] == '\n' || runes[i] == ' ' {
				cut = i
				break
			}
		}
		parts = append(parts, strings.TrimRight(string(runes[:cut]), " \n"))
		runes = runes[cut:]
		for len(runes) > 0 && (runes[0] == '\n' || runes[0] == ' ') {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
