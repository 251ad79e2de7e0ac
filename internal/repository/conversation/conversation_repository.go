package conversation

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestorai/gestorai/internal/domain"
)

// ErrConversationNotFound covers both a missing row and a row owned by someone else.
var ErrConversationNotFound = errors.New("conversation not found")

type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type gormConversationRepository struct {
	db     *gorm.DB
	logger Logger
}

func NewConversationRepository(db *gorm.DB, logger Logger) ConversationRepository {
	return &gormConversationRepository{db: db, logger: logger}
}

func (r *gormConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) (*domain.Conversation, error) {
	if conversation == nil || conversation.UserID == 0 {
		return nil, errors.New("user ID is required")
	}

	if err := r.db.WithContext(ctx).Create(conversation).Error; err != nil {
		r.logger.Error("database error during conversation creation", "user_id", conversation.UserID, "error", err)
		return nil, fmt.Errorf("database error creating conversation: %w", err)
	}

	r.logger.Info("conversation created", "conversation_id", conversation.ID, "user_id", conversation.UserID)
	return conversation, nil
}

// FindByIDAndUserID returns the conversation only when userID owns it.
func (r *gormConversationRepository) FindByIDAndUserID(ctx context.Context, conversationID, userID uint) (*domain.Conversation, error) {
	if conversationID == 0 || userID == 0 {
		return nil, ErrConversationNotFound
	}

	var conversation domain.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", conversationID, userID).
		First(&conversation).Error
	return r.handleFindError(err, &conversation, "FindByIDAndUserID")
}

// FindRecentByUserID lists the newest conversations first.
func (r *gormConversationRepository) FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]domain.Conversation, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	conversations := []domain.Conversation{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&conversations).Error
	if err != nil {
		r.logger.Error("database error listing conversations", "user_id", userID, "error", err)
		return nil, fmt.Errorf("database error listing conversations: %w", err)
	}
	return conversations, nil
}

func (r *gormConversationRepository) FindLatestByUserID(ctx context.Context, userID uint) (*domain.Conversation, error) {
	if userID == 0 {
		return nil, ErrConversationNotFound
	}

	var conversation domain.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&conversation).Error
	return r.handleFindError(err, &conversation, "FindLatestByUserID")
}

func (r *gormConversationRepository) handleFindError(err error, conversation *domain.Conversation, operation string) (*domain.Conversation, error) {
	if err == nil {
		return conversation, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	r.logger.Error("conversation query failed", "operation", operation, "error", err)
	return nil, fmt.Errorf("database query failed: %w", err)
}
