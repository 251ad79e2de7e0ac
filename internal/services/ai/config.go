package ai

import (
	"fmt"
	"time"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

type Config struct {
	APIKey  string
	BaseURL string

	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	Temperature float32
	TopP        float32
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     60 * time.Second,
		MaxRetries:  1,
		RetryDelay:  time.Second,
		Temperature: 0.7,
		TopP:        1,
	}
}
