package user_services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorai/gestorai/internal/auth"
	"github.com/gestorai/gestorai/internal/database"
	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/dtos"
	"github.com/gestorai/gestorai/internal/repository/user"
	"github.com/gestorai/gestorai/internal/services"
)

func newAuthService(t *testing.T) (*AuthService, *auth.TokenManager, user.UserRepository) {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	tokens, err := auth.NewTokenManager("test-secret")
	require.NoError(t, err)
	repo := user.NewGormUserRepository(db, &services.NoOpLogger{})
	return NewAuthService(repo, tokens, time.Hour, &services.NoOpLogger{}), tokens, repo
}

func validRegistration() dtos.RegisterRequestDTO {
	return dtos.RegisterRequestDTO{
		Name:            "Ana Souza",
		Email:           "Ana@Example.com",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc, tokens, _ := newAuthService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.True(t, created.Interactive)
	assert.NotEqual(t, "segredo123", created.PasswordHash)

	logged, token, err := svc.Login(ctx, "ANA@example.com ", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, identity.UserID)
	assert.Equal(t, "Ana Souza", identity.Name)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.False(t, identity.Service)
}

func TestRegister_Failures(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	mismatch := validRegistration()
	mismatch.ConfirmPassword = "diferente"
	_, err := svc.Register(ctx, mismatch)
	assert.Equal(t, domain.ErrTypeValidation, domain.ErrorTypeOf(err))

	_, err = svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "ana@example.com"
	_, err = svc.Register(ctx, dup)
	assert.Equal(t, domain.ErrTypeConflict, domain.ErrorTypeOf(err))
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	_, err = svc.EnsureWebhookUser(ctx, "telegram", "42")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "ana@example.com", "errada")
	_, _, unknownEmail := svc.Login(ctx, "ninguem@example.com", "segredo123")
	_, _, webhookAccount := svc.Login(ctx, WebhookEmail("telegram", "42"), "")
	_, _, webhookGuess := svc.Login(ctx, WebhookEmail("telegram", "42"), "qualquer")

	for _, err := range []error{wrongPassword, unknownEmail, webhookGuess} {
		require.Error(t, err)
		assert.Equal(t, domain.ErrTypeUnauthorized, domain.ErrorTypeOf(err))
		assert.Equal(t, wrongPassword.Error(), err.Error())
	}
	// an empty password is rejected before any lookup
	assert.Equal(t, domain.ErrTypeValidation, domain.ErrorTypeOf(webhookAccount))
}

func TestEnsureWebhookUser_Idempotent(t *testing.T) {
	svc, _, repo := newAuthService(t)
	ctx := context.Background()

	first, err := svc.EnsureWebhookUser(ctx, "whatsapp", "5511999999999")
	require.NoError(t, err)
	assert.False(t, first.Interactive)
	assert.Empty(t, first.PasswordHash)
	assert.Equal(t, "whatsapp-5511999999999@webhook.gestorai.local", first.Email)
	assert.Equal(t, "whatsapp", first.ExternalSource)

	second, err := svc.EnsureWebhookUser(ctx, "whatsapp", "5511999999999")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, stored.Interactive)
}
