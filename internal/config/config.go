// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN" envDefault:"gestorai.db"`

	JWTSecret       string        `env:"JWT_SECRET"`
	SessionTokenTTL time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"1h"`
	ServiceTokenTTL time.Duration `env:"SERVICE_TOKEN_TTL" envDefault:"5m"`

	// Completion provider. Any OpenAI-compatible endpoint works; Groq is the default.
	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`

	ChatModel            string `env:"CHAT_MODEL" envDefault:"openai/gpt-oss-20b"`
	ChatContextWindow    int    `env:"CHAT_CONTEXT_WINDOW" envDefault:"10"`
	ChatSystemPrompt     string `env:"CHAT_SYSTEM_PROMPT"`
	ChatFallbackReply    string `env:"CHAT_FALLBACK_REPLY"`
	ConversationPageSize int    `env:"CONVERSATION_PAGE_SIZE" envDefault:"10"`

	TelegramBotToken      string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIURL        string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	TelegramWebhookSecret string        `env:"TELEGRAM_WEBHOOK_SECRET"`
	N8NCallbackURL        string        `env:"N8N_CALLBACK_URL"`
	RelayTimeout          time.Duration `env:"RELAY_TIMEOUT" envDefault:"15s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AuthRateLimitAttempts int           `env:"AUTH_RATE_LIMIT_ATTEMPTS" envDefault:"5"`
	AuthRateLimitWindow   time.Duration `env:"AUTH_RATE_LIMIT_WINDOW" envDefault:"15m"`
}

// Load reads configuration from environment variables, preceded by a .env file
// outside production.
func Load() (*Config, error) {
	if !isProduction(os.Getenv("ENV")) {
		// A missing .env is normal when variables come from the process environment.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.LLMAPIKey = strings.TrimSpace(cfg.LLMAPIKey)
	cfg.TelegramBotToken = strings.TrimSpace(cfg.TelegramBotToken)
	if cfg.ChatContextWindow < 0 {
		cfg.ChatContextWindow = 0
	}
	if cfg.ConversationPageSize <= 0 {
		cfg.ConversationPageSize = 10
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the variables that must be present in production.
func (c *Config) Validate() error {
	switch strings.ToLower(c.DBDriver) {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if !c.IsProduction() {
		return nil
	}
	missing := []string{}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.LLMAPIKey == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required production environment variables: %v", missing)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return isProduction(c.Environment)
}

func isProduction(env string) bool {
	return strings.ToLower(env) == "production"
}
