package conversation

import (
	"context"

	"github.com/gestorai/gestorai/internal/domain"
)

// ConversationRepository handles conversation data operations.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) (*domain.Conversation, error)
	FindByIDAndUserID(ctx context.Context, conversationID, userID uint) (*domain.Conversation, error)
	FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]domain.Conversation, error)
	FindLatestByUserID(ctx context.Context, userID uint) (*domain.Conversation, error)
}
