package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/metrics"
	"github.com/gestorai/gestorai/internal/repository/conversation"
	"github.com/gestorai/gestorai/internal/repository/message"
	"github.com/gestorai/gestorai/internal/services/ai"
)

type service struct {
	config           Config
	conversationRepo conversation.ConversationRepository
	messageRepo      message.MessageRepository
	provider         ai.CompletionProvider
	logger           Logger
}

func NewService(
	config *Config,
	conversationRepo conversation.ConversationRepository,
	messageRepo message.MessageRepository,
	provider ai.CompletionProvider,
	logger Logger,
) (Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, domain.NewInternalError("chat_config", "configuração de chat inválida", err)
	}
	if conversationRepo == nil || messageRepo == nil {
		return nil, domain.NewInternalError("chat_config", "repositórios de chat ausentes", nil)
	}
	if provider == nil {
		return nil, domain.NewInternalError("chat_config", "provedor de IA ausente", nil)
	}

	return &service{
		config:           config.withDefaults(),
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		provider:         provider,
		logger:           logger,
	}, nil
}

func (s *service) Send(ctx context.Context, userID, conversationID uint, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" || conversationID == 0 {
		return nil, domain.NewValidationError("send", "Faltando conversationId ou message.")
	}

	if _, err := s.ownedConversation(ctx, "send", userID, conversationID); err != nil {
		return nil, err
	}

	// The user turn is committed on its own and survives a later provider failure.
	if _, err := s.messageRepo.Create(ctx, &domain.ChatMessage{
		ConversationID: conversationID,
		Sender:         domain.SenderUser,
		Text:           text,
	}); err != nil {
		s.logger.Error("failed to store user message", "conversation_id", conversationID, "error", err)
		return nil, domain.NewInternalError("send", "Erro interno no servidor.", err)
	}

	history, err := s.messageRepo.FindRecentByConversationID(ctx, conversationID, s.config.ContextWindow)
	if err != nil {
		s.logger.Error("failed to load history", "conversation_id", conversationID, "error", err)
		return nil, domain.NewInternalError("send", "Erro interno no servidor.", err)
	}

	prompt := BuildPrompt(s.config.SystemPrompt, history)

	start := time.Now()
	completion, err := s.provider.Complete(ctx, s.config.Model, prompt)
	if err != nil {
		metrics.RecordCompletion(s.config.Model, metrics.OutcomeError, time.Since(start))
		s.logger.Error("completion failed",
			"conversation_id", conversationID,
			"model", s.config.Model,
			"history_size", len(history),
			"error", err,
		)
		return nil, domain.NewInternalError("send", "Erro interno no servidor.", err)
	}

	reply := &Reply{ConversationID: conversationID, Text: completion}
	if strings.TrimSpace(completion) == "" {
		metrics.RecordCompletion(s.config.Model, metrics.OutcomeEmpty, time.Since(start))
		s.logger.Warn("empty completion, storing fallback reply", "conversation_id", conversationID)
		reply.Text = s.config.FallbackReply
		reply.Fallback = true
	} else {
		metrics.RecordCompletion(s.config.Model, metrics.OutcomeSuccess, time.Since(start))
	}

	if _, err := s.messageRepo.Create(ctx, &domain.ChatMessage{
		ConversationID: conversationID,
		Sender:         domain.SenderAssistant,
		Text:           reply.Text,
	}); err != nil {
		s.logger.Error("failed to store assistant message", "conversation_id", conversationID, "error", err)
		return nil, domain.NewInternalError("send", "Erro interno no servidor.", err)
	}

	s.logger.Debug("chat turn completed",
		"conversation_id", conversationID,
		"user_id", userID,
		"history_size", len(history),
		"fallback", reply.Fallback,
	)
	return reply, nil
}

func (s *service) ListConversations(ctx context.Context, userID uint) ([]domain.Conversation, error) {
	conversations, err := s.conversationRepo.FindRecentByUserID(ctx, userID, s.config.PageSize)
	if err != nil {
		s.logger.Error("failed to list conversations", "user_id", userID, "error", err)
		return nil, domain.NewInternalError("list_conversations", "Erro ao buscar conversas.", err)
	}
	return conversations, nil
}

func (s *service) CreateConversation(ctx context.Context, userID uint, summary, origin string) (*domain.Conversation, error) {
	created, err := s.conversationRepo.Create(ctx, &domain.Conversation{
		UserID:  userID,
		Summary: NormalizeSummary(summary),
	})
	if err != nil {
		s.logger.Error("failed to create conversation", "user_id", userID, "error", err)
		return nil, domain.NewInternalError("create_conversation", "Erro ao criar conversa.", err)
	}

	metrics.RecordConversationCreated(origin)
	s.logger.Info("conversation created", "conversation_id", created.ID, "user_id", userID, "origin", origin)
	return created, nil
}

func (s *service) GetConversation(ctx context.Context, userID, conversationID uint) (*domain.Conversation, error) {
	found, err := s.ownedConversation(ctx, "get_conversation", userID, conversationID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByConversationID(ctx, conversationID)
	if err != nil {
		s.logger.Error("failed to load messages", "conversation_id", conversationID, "error", err)
		return nil, domain.NewInternalError("get_conversation", "Erro ao buscar conversa.", err)
	}
	found.Messages = messages
	return found, nil
}

func (s *service) LatestConversation(ctx context.Context, userID uint, text, origin string) (*domain.Conversation, error) {
	latest, err := s.conversationRepo.FindLatestByUserID(ctx, userID)
	if err == nil {
		return latest, nil
	}
	if !errors.Is(err, conversation.ErrConversationNotFound) {
		s.logger.Error("failed to resolve latest conversation", "user_id", userID, "error", err)
		return nil, domain.NewInternalError("latest_conversation", "Erro ao buscar conversa.", err)
	}
	return s.CreateConversation(ctx, userID, SummaryFromMessage(text), origin)
}

// ownedConversation hides conversations of other users behind the same not-found error.
func (s *service) ownedConversation(ctx context.Context, op string, userID, conversationID uint) (*domain.Conversation, error) {
	found, err := s.conversationRepo.FindByIDAndUserID(ctx, conversationID, userID)
	if err == nil {
		return found, nil
	}
	if errors.Is(err, conversation.ErrConversationNotFound) {
		return nil, domain.NewNotFoundError(op, "Conversa não encontrada.")
	}
	s.logger.Error("failed to load conversation", "conversation_id", conversationID, "error", err)
	return nil, domain.NewInternalError(op, "Erro interno no servidor.", err)
}
