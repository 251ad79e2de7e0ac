// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/gestorai/gestorai/internal/domain"
)

// MessageRepository stores the append-only chat log.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	// FindByConversationID returns every message oldest first.
	FindByConversationID(ctx context.Context, conversationID uint) ([]domain.ChatMessage, error)
	// FindRecentByConversationID returns at most limit of the newest messages,
	// still oldest first. limit <= 0 means no cap.
	FindRecentByConversationID(ctx context.Context, conversationID uint, limit int) ([]domain.ChatMessage, error)
	CountByConversationID(ctx context.Context, conversationID uint) (int64, error)
}
