package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorai/gestorai/internal/database"
	"github.com/gestorai/gestorai/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo(t *testing.T) UserRepository {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return NewGormUserRepository(db, nopLogger{})
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Name: "Ana", Email: "  Ana@Example.com ", Interactive: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "ana@example.com", created.Email)

	byEmail, err := repo.FindByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.True(t, byEmail.Interactive)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Name)

	exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Ana", Email: "ana@example.com", Interactive: true})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Name: "Outra", Email: "ANA@example.com", Interactive: true})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepository_NonInteractivePersists(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Name: "Telegram 1", Email: "telegram-1@webhook.gestorai.local", ExternalSource: "telegram"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.Interactive)
	assert.Equal(t, "telegram", found.ExternalSource)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "ninguem@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
