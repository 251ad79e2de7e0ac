// File: cmd/server/providers.go
package main

import (
	"net/http"
	"time"

	"github.com/gestorai/gestorai/internal/auth"
	"github.com/gestorai/gestorai/internal/config"
	"github.com/gestorai/gestorai/internal/handlers"
	"github.com/gestorai/gestorai/internal/ratelimit"
	"github.com/gestorai/gestorai/internal/repository/conversation"
	"github.com/gestorai/gestorai/internal/repository/message"
	"github.com/gestorai/gestorai/internal/repository/task"
	"github.com/gestorai/gestorai/internal/repository/user"
	"github.com/gestorai/gestorai/internal/services"
	"github.com/gestorai/gestorai/internal/services/ai"
	"github.com/gestorai/gestorai/internal/services/chat"
	"github.com/gestorai/gestorai/internal/services/messaging"
	"github.com/gestorai/gestorai/internal/services/task_services"
	"github.com/gestorai/gestorai/internal/services/user_services"
	"github.com/gestorai/gestorai/internal/services/webhook"
)

// devJWTSecret signs tokens when JWT_SECRET is unset outside production.
const devJWTSecret = "gestorai-development-secret"

// Application aggregates what main needs to serve and shut down.
type Application struct {
	Handler http.Handler
	Limiter *ratelimit.MemoryRateLimiter
}

// Wrapper types to avoid ambiguity between values of the same type
type SessionTTL time.Duration
type TelegramSecret string

// Each package declares the slice of Logger it needs; the shared logger
// satisfies all of them.
func ProvideUserRepositoryLogger(logger services.Logger) user.Logger {
	return logger
}

func ProvideConversationRepositoryLogger(logger services.Logger) conversation.Logger {
	return logger
}

func ProvideMessageRepositoryLogger(logger services.Logger) message.Logger {
	return logger
}

func ProvideTaskRepositoryLogger(logger services.Logger) task.Logger {
	return logger
}

func ProvideChatLogger(logger services.Logger) chat.Logger {
	return logger
}

func ProvideUserServicesLogger(logger services.Logger) user_services.Logger {
	return logger
}

func ProvideTaskServicesLogger(logger services.Logger) task_services.Logger {
	return logger
}

func ProvideHandlersLogger(logger services.Logger) handlers.Logger {
	return logger
}

func ProvideSessionTTL(cfg *config.Config) SessionTTL {
	return SessionTTL(cfg.SessionTokenTTL)
}

func ProvideTelegramSecret(cfg *config.Config) TelegramSecret {
	return TelegramSecret(cfg.TelegramWebhookSecret)
}

func ProvideTokenManager(cfg *config.Config, logger services.Logger) (*auth.TokenManager, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		logger.Warn("JWT_SECRET not set, using the development secret")
		secret = devJWTSecret
	}
	return auth.NewTokenManager(secret)
}

func ProvideRateLimiter(cfg *config.Config) *ratelimit.MemoryRateLimiter {
	return ratelimit.NewMemoryRateLimiter(ratelimit.AuthConfig(cfg.AuthRateLimitAttempts, cfg.AuthRateLimitWindow))
}

func ProvideChatConfig(cfg *config.Config) *chat.Config {
	chatConfig := chat.DefaultConfig()
	chatConfig.Model = cfg.ChatModel
	chatConfig.ContextWindow = cfg.ChatContextWindow
	chatConfig.PageSize = cfg.ConversationPageSize
	if cfg.ChatSystemPrompt != "" {
		chatConfig.SystemPrompt = cfg.ChatSystemPrompt
	}
	if cfg.ChatFallbackReply != "" {
		chatConfig.FallbackReply = cfg.ChatFallbackReply
	}
	return chatConfig
}

func ProvideAIConfig(cfg *config.Config) *ai.Config {
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.LLMAPIKey
	if cfg.LLMBaseURL != "" {
		aiConfig.BaseURL = cfg.LLMBaseURL
	}
	return aiConfig
}

func ProvideCompletionProvider(aiConfig *ai.Config, logger services.Logger) (ai.CompletionProvider, error) {
	if aiConfig.APIKey == "" {
		logger.Warn("LLM_API_KEY not set, completions will fail until it is configured")
	}
	provider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func NewAuthServiceWrapped(repo user.UserRepository, tokens *auth.TokenManager, ttl SessionTTL, logger user_services.Logger) *user_services.AuthService {
	return user_services.NewAuthService(repo, tokens, time.Duration(ttl), logger)
}

// ProvideWebhookService attaches only the relays that are configured.
func ProvideWebhookService(
	cfg *config.Config,
	users *user_services.AuthService,
	chatService chat.Service,
	tokens *auth.TokenManager,
	logger services.Logger,
) (*webhook.Service, error) {
	var telegram, callback messaging.Relay

	if cfg.TelegramBotToken != "" {
		relay, err := messaging.NewTelegramRelay(&messaging.TelegramConfig{
			BotToken: cfg.TelegramBotToken,
			APIURL:   cfg.TelegramAPIURL,
			Timeout:  cfg.RelayTimeout,
		})
		if err != nil {
			return nil, err
		}
		telegram = relay
	}

	if cfg.N8NCallbackURL != "" {
		relay, err := messaging.NewCallbackRelay(&messaging.CallbackConfig{
			URL:     cfg.N8NCallbackURL,
			Timeout: cfg.RelayTimeout,
		})
		if err != nil {
			return nil, err
		}
		callback = relay
	}

	return webhook.NewService(users, chatService, tokens, cfg.ServiceTokenTTL, telegram, callback, logger), nil
}

func NewWebhookHandlerWrapped(webhookService *webhook.Service, secret TelegramSecret, logger handlers.Logger) *handlers.WebhookHandler {
	return handlers.NewWebhookHandler(webhookService, string(secret), logger)
}

func ProvideRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	taskHandler *handlers.TaskHandler,
	webhookHandler *handlers.WebhookHandler,
	logHandler *handlers.LogHandler,
	healthHandler *handlers.HealthHandler,
	tokens *auth.TokenManager,
	limiter *ratelimit.MemoryRateLimiter,
	logger handlers.Logger,
) http.Handler {
	return handlers.NewRouter(handlers.Router{
		Auth:        authHandler,
		Chat:        chatHandler,
		Tasks:       taskHandler,
		Webhooks:    webhookHandler,
		Logs:        logHandler,
		Health:      healthHandler,
		Tokens:      tokens,
		Limiter:     limiter,
		CORSOrigins: cfg.CORSAllowedOrigins,
		Logger:      logger,
	})
}
