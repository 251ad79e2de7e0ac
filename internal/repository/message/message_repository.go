// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestorai/gestorai/internal/domain"
)

type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type gormMessageRepository struct {
	db     *gorm.DB
	logger Logger
}

func NewMessageRepository(db *gorm.DB, logger Logger) MessageRepository {
	return &gormMessageRepository{db: db, logger: logger}
}

func (r *gormMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := validateMessageInput(message); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		// Message text is never logged.
		r.logger.Error("database error during message creation", "conversation_id", message.ConversationID, "error", err)
		return nil, fmt.Errorf("database error creating message: %w", err)
	}
	return message, nil
}

func (r *gormMessageRepository) FindByConversationID(ctx context.Context, conversationID uint) ([]domain.ChatMessage, error) {
	return r.FindRecentByConversationID(ctx, conversationID, 0)
}

func (r *gormMessageRepository) FindRecentByConversationID(ctx context.Context, conversationID uint, limit int) ([]domain.ChatMessage, error) {
	if conversationID == 0 {
		return nil, errors.New("invalid conversation ID")
	}

	messages := []domain.ChatMessage{}
	query := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID)
	if limit > 0 {
		query = query.Order("created_at DESC, id DESC").Limit(limit)
	} else {
		query = query.Order("created_at ASC, id ASC")
	}

	if err := query.Find(&messages).Error; err != nil {
		r.logger.Error("database error fetching messages", "conversation_id", conversationID, "error", err)
		return nil, fmt.Errorf("database error fetching messages: %w", err)
	}

	if limit > 0 {
		reverse(messages)
	}
	return messages, nil
}

func (r *gormMessageRepository) CountByConversationID(ctx context.Context, conversationID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).Where("conversation_id = ?", conversationID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("database error counting messages: %w", err)
	}
	return count, nil
}

func validateMessageInput(message *domain.ChatMessage) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}
	if message.ConversationID == 0 {
		return errors.New("conversation ID is required")
	}
	if message.Sender != domain.SenderUser && message.Sender != domain.SenderAssistant {
		return fmt.Errorf("invalid sender %q", message.Sender)
	}
	if message.Text == "" {
		return errors.New("message text cannot be empty")
	}
	return nil
}

func reverse(messages []domain.ChatMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
