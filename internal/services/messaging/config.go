package messaging

import (
	"fmt"
	"time"
)

const DefaultTelegramAPIURL = "https://api.telegram.org"

type TelegramConfig struct {
	BotToken   string
	APIURL     string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func (c *TelegramConfig) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("TELEGRAM_API_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

type CallbackConfig struct {
	URL        string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func (c *CallbackConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("N8N_CALLBACK_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func (c *TelegramConfig) retry() *RetryConfig {
	return retryConfig(c.MaxRetries, c.RetryDelay)
}

func (c *CallbackConfig) retry() *RetryConfig {
	return retryConfig(c.MaxRetries, c.RetryDelay)
}

func retryConfig(attempts int, delay time.Duration) *RetryConfig {
	cfg := DefaultRetryConfig()
	if attempts > 0 {
		cfg.MaxAttempts = attempts
	}
	if delay > 0 {
		cfg.Delay = delay
	}
	return cfg
}
