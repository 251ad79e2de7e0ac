//go:build wireinject
// +build wireinject

// File: cmd/server/wire.go
package main

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/gestorai/gestorai/internal/config"
	"github.com/gestorai/gestorai/internal/handlers"
	"github.com/gestorai/gestorai/internal/repository/conversation"
	"github.com/gestorai/gestorai/internal/repository/message"
	"github.com/gestorai/gestorai/internal/repository/task"
	"github.com/gestorai/gestorai/internal/repository/user"
	"github.com/gestorai/gestorai/internal/services"
	"github.com/gestorai/gestorai/internal/services/chat"
	"github.com/gestorai/gestorai/internal/services/task_services"
)

func InitializeApplication(cfg *config.Config, logger services.Logger, db *gorm.DB) (*Application, error) {
	wire.Build(
		// Loggers
		ProvideUserRepositoryLogger,
		ProvideConversationRepositoryLogger,
		ProvideMessageRepositoryLogger,
		ProvideTaskRepositoryLogger,
		ProvideChatLogger,
		ProvideUserServicesLogger,
		ProvideTaskServicesLogger,
		ProvideHandlersLogger,

		// Configuration
		ProvideSessionTTL,
		ProvideTelegramSecret,
		ProvideChatConfig,
		ProvideAIConfig,
		ProvideTokenManager,
		ProvideRateLimiter,

		// Repositories
		user.NewGormUserRepository,
		conversation.NewConversationRepository,
		message.NewMessageRepository,
		task.NewTaskRepository,

		// Services
		ProvideCompletionProvider,
		chat.NewService,
		NewAuthServiceWrapped,
		task_services.NewTaskService,
		ProvideWebhookService,

		// Handlers
		handlers.NewAuthHandler,
		handlers.NewChatHandler,
		handlers.NewTaskHandler,
		NewWebhookHandlerWrapped,
		handlers.NewLogHandler,
		handlers.NewHealthHandler,
		ProvideRouter,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
