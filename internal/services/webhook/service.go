package webhook

import (
	"context"
	"time"

	"github.com/gestorai/gestorai/internal/auth"
	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/metrics"
	"github.com/gestorai/gestorai/internal/services/chat"
	"github.com/gestorai/gestorai/internal/services/messaging"
)

const (
	PlatformTelegram = "telegram"
	PlatformWhatsApp = "whatsapp"

	apologyText = "Desculpe, não consegui processar sua mensagem agora. Tente novamente em instantes."
)

// Logger interface for webhook adapters
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// UserResolver maps an external chat onto a local account.
type UserResolver interface {
	EnsureWebhookUser(ctx context.Context, platform, chatID string) (*domain.User, error)
}

type Service struct {
	users      UserResolver
	chat       chat.Service
	tokens     *auth.TokenManager
	serviceTTL time.Duration
	telegram   messaging.Relay
	callback   messaging.Relay
	logger     Logger
}

// NewService builds the adapter. Either relay may be nil, in which case the
// reply is only returned in the HTTP response.
func NewService(
	users UserResolver,
	chatService chat.Service,
	tokens *auth.TokenManager,
	serviceTTL time.Duration,
	telegram messaging.Relay,
	callback messaging.Relay,
	logger Logger,
) *Service {
	if serviceTTL <= 0 {
		serviceTTL = 5 * time.Minute
	}
	return &Service{
		users:      users,
		chat:       chatService,
		tokens:     tokens,
		serviceTTL: serviceTTL,
		telegram:   telegram,
		callback:   callback,
		logger:     logger,
	}
}

// HandleTelegram runs text through the chat pipeline for chatID and relays the
// reply through the Bot API when configured.
func (s *Service) HandleTelegram(ctx context.Context, text, chatID string) (string, error) {
	if text == "" || chatID == "" {
		metrics.RecordWebhook(PlatformTelegram, metrics.OutcomeRejected)
		return "", domain.NewValidationError("telegram_webhook", "Payload inválido: mensagem ou chatId ausente.")
	}

	reply, err := s.process(ctx, PlatformTelegram, chatID, text)
	if err != nil {
		metrics.RecordWebhook(PlatformTelegram, metrics.OutcomeError)
		if s.telegram != nil {
			if notifyErr := s.telegram.Send(ctx, chatID, apologyText); notifyErr != nil {
				s.logger.Warn("telegram apology not delivered", "chat_id", chatID, "error", notifyErr)
			}
		}
		return "", err
	}

	if err := s.relay(ctx, s.telegram, chatID, reply); err != nil {
		metrics.RecordWebhook(PlatformTelegram, metrics.OutcomeError)
		return "", err
	}

	metrics.RecordWebhook(PlatformTelegram, metrics.OutcomeSuccess)
	return reply, nil
}

// HandleWhatsApp runs text through the chat pipeline for fromNumber and posts
// the reply to the n8n callback when configured.
func (s *Service) HandleWhatsApp(ctx context.Context, text, fromNumber string) (string, error) {
	if text == "" || fromNumber == "" {
		metrics.RecordWebhook(PlatformWhatsApp, metrics.OutcomeRejected)
		return "", domain.NewValidationError("whatsapp_webhook", "Faltando message ou fromNumber.")
	}

	reply, err := s.process(ctx, PlatformWhatsApp, fromNumber, text)
	if err != nil {
		metrics.RecordWebhook(PlatformWhatsApp, metrics.OutcomeError)
		return "", err
	}

	if err := s.relay(ctx, s.callback, fromNumber, reply); err != nil {
		metrics.RecordWebhook(PlatformWhatsApp, metrics.OutcomeError)
		return "", err
	}

	metrics.RecordWebhook(PlatformWhatsApp, metrics.OutcomeSuccess)
	return reply, nil
}

// process resolves the caller, proves it with a short-lived service token and
// sends the message as that identity.
func (s *Service) process(ctx context.Context, platform, chatID, text string) (string, error) {
	op := platform + "_webhook"

	user, err := s.users.EnsureWebhookUser(ctx, platform, chatID)
	if err != nil {
		return "", err
	}

	conversation, err := s.chat.LatestConversation(ctx, user.ID, text, platform)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(auth.Identity{UserID: user.ID, Name: user.Name, Email: user.Email, Service: true}, s.serviceTTL)
	if err != nil {
		s.logger.Error("service token issue failed", "platform", platform, "error", err)
		return "", domain.NewInternalError(op, "Falha interna na API de Chat.", err)
	}
	identity, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Error("service token rejected", "platform", platform, "error", err)
		return "", domain.NewInternalError(op, "Falha interna na API de Chat.", err)
	}

	reply, err := s.chat.Send(ctx, identity.UserID, conversation.ID, text)
	if err != nil {
		s.logger.Error("chat pipeline failed", "platform", platform, "conversation_id", conversation.ID, "error", err)
		return "", err
	}

	s.logger.Info("webhook message answered", "platform", platform, "user_id", user.ID, "conversation_id", conversation.ID)
	return reply.Text, nil
}

func (s *Service) relay(ctx context.Context, relay messaging.Relay, to, reply string) error {
	if relay == nil {
		return nil
	}
	if err := relay.Send(ctx, to, reply); err != nil {
		s.logger.Error("reply relay failed", "relay", relay.Name(), "to", to, "error", err)
		return domain.NewInternalError("relay", "Falha ao enviar a resposta.", err)
	}
	return nil
}
