package user_services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gestorai/gestorai/internal/auth"
	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/dtos"
	"github.com/gestorai/gestorai/internal/metrics"
	"github.com/gestorai/gestorai/internal/repository/user"
	"github.com/gestorai/gestorai/internal/services"
)

type AuthService struct {
	userRepo   user.UserRepository
	tokens     *auth.TokenManager
	sessionTTL time.Duration
	logger     Logger
}

func NewAuthService(userRepo user.UserRepository, tokens *auth.TokenManager, sessionTTL time.Duration, logger Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register creates an interactive account and returns it without its hash.
func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequestDTO) (*domain.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = user.NormalizeEmail(req.Email)

	if err := dtos.Validate(req); err != nil {
		metrics.RecordAuth("register", "invalid")
		return nil, domain.NewValidationError("register", err.Error())
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("email lookup failed during registration", "email", services.MaskEmail(req.Email), "error", err)
		return nil, domain.NewInternalError("register", msgInternal, err)
	}
	if exists {
		metrics.RecordAuth("register", "conflict")
		return nil, domain.NewConflictError("register", msgEmailTaken)
	}

	newUser := &domain.User{Name: req.Name, Email: req.Email, Interactive: true}
	if err := newUser.HashPassword(req.Password); err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, domain.NewInternalError("register", msgInternal, err)
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, user.ErrEmailTaken) {
			metrics.RecordAuth("register", "conflict")
			return nil, domain.NewConflictError("register", msgEmailTaken)
		}
		s.logger.Error("user creation failed", "email", services.MaskEmail(req.Email), "error", err)
		return nil, domain.NewInternalError("register", msgInternal, err)
	}

	metrics.RecordAuth("register", "success")
	s.logger.Info("user registered", "user_id", created.ID, "email", services.MaskEmail(created.Email))
	return created, nil
}

// Login authenticates a user and returns a session token. Unknown email, wrong
// password and webhook-only accounts all yield the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = user.NormalizeEmail(email)
	if err := dtos.Validate(dtos.LoginRequestDTO{Email: email, Password: password}); err != nil {
		metrics.RecordAuth("login", "invalid")
		return nil, "", domain.NewValidationError("login", err.Error())
	}

	found, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			s.logger.Error("user lookup failed during login", "email", services.MaskEmail(email), "error", err)
			return nil, "", domain.NewInternalError("login", msgInternal, err)
		}
		s.logger.Warn("login failed", "email", services.MaskEmail(email), "reason", "user_not_found")
		metrics.RecordAuth("login", "rejected")
		return nil, "", domain.NewUnauthorizedError("login", msgInvalidCredentials)
	}

	if err := found.ValidatePassword(password); err != nil {
		s.logger.Warn("login failed", "user_id", found.ID, "interactive", found.Interactive, "reason", "invalid_password")
		metrics.RecordAuth("login", "rejected")
		return nil, "", domain.NewUnauthorizedError("login", msgInvalidCredentials)
	}

	token, err := s.tokens.Issue(auth.Identity{UserID: found.ID, Name: found.Name, Email: found.Email}, s.sessionTTL)
	if err != nil {
		s.logger.Error("token issue failed", "user_id", found.ID, "error", err)
		return nil, "", domain.NewInternalError("login", msgInternal, err)
	}

	metrics.RecordAuth("login", "success")
	s.logger.Info("user logged in", "user_id", found.ID)
	return found, token, nil
}

// EnsureWebhookUser returns the non-interactive account for an external chat,
// creating it on first contact.
func (s *AuthService) EnsureWebhookUser(ctx context.Context, platform, chatID string) (*domain.User, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	chatID = strings.TrimSpace(chatID)
	if platform == "" || chatID == "" {
		return nil, domain.NewValidationError("webhook_user", "plataforma e chatId são obrigatórios")
	}

	email := WebhookEmail(platform, chatID)
	found, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		s.logger.Error("webhook user lookup failed", "platform", platform, "error", err)
		return nil, domain.NewInternalError("webhook_user", msgInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Name:           fmt.Sprintf("%s %s", platformLabel(platform), chatID),
		Email:          email,
		Interactive:    false,
		ExternalSource: platform,
	})
	if errors.Is(err, user.ErrEmailTaken) {
		// A concurrent message from the same chat created it first.
		return s.userRepo.FindByEmail(ctx, email)
	}
	if err != nil {
		s.logger.Error("webhook user creation failed", "platform", platform, "error", err)
		return nil, domain.NewInternalError("webhook_user", msgInternal, err)
	}

	s.logger.Info("webhook user created", "user_id", created.ID, "platform", platform)
	return created, nil
}

// WebhookEmail is the synthetic address that keys an external chat to a user.
func WebhookEmail(platform, chatID string) string {
	return user.NormalizeEmail(fmt.Sprintf("%s-%s@%s", platform, chatID, webhookEmailDomain))
}

func platformLabel(platform string) string {
	switch platform {
	case "telegram":
		return "Telegram"
	case "whatsapp":
		return "WhatsApp"
	}
	return platform
}
