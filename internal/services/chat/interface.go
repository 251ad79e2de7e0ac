package chat

import (
	"context"

	"github.com/gestorai/gestorai/internal/domain"
)

// Service is the chat pipeline plus the conversation reads it backs.
type Service interface {
	// Send stores message as the user's turn, asks the provider for a reply
	// over the recent history and stores that reply.
	Send(ctx context.Context, userID, conversationID uint, message string) (*Reply, error)
	ListConversations(ctx context.Context, userID uint) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, userID uint, summary, origin string) (*domain.Conversation, error)
	GetConversation(ctx context.Context, userID, conversationID uint) (*domain.Conversation, error)
	// LatestConversation returns the user's newest conversation, creating one
	// titled after message when none exists.
	LatestConversation(ctx context.Context, userID uint, message, origin string) (*domain.Conversation, error)
}
