package message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorai/gestorai/internal/database"
	"github.com/gestorai/gestorai/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo(t *testing.T) MessageRepository {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return NewMessageRepository(db, nopLogger{})
}

func seed(t *testing.T, repo MessageRepository, conversationID uint, n int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		sender := domain.SenderUser
		if i%2 == 1 {
			sender = domain.SenderAssistant
		}
		_, err := repo.Create(context.Background(), &domain.ChatMessage{
			ConversationID: conversationID,
			Sender:         sender,
			Text:           fmt.Sprintf("m%d", i),
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
}

func TestMessageRepository_AllAscending(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo, 1, 5)
	seed(t, repo, 2, 3)

	got, err := repo.FindByConversationID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, m := range got {
		assert.Equal(t, fmt.Sprintf("m%d", i), m.Text)
	}
}

func TestMessageRepository_RecentWindowIsChronological(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo, 1, 14)

	got, err := repo.FindRecentByConversationID(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, "m4", got[0].Text)
	assert.Equal(t, "m13", got[9].Text)
}

func TestMessageRepository_OutOfOrderInsertsReadInTimeOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now()

	for _, offset := range []int{3, 1, 2, 0} {
		_, err := repo.Create(ctx, &domain.ChatMessage{
			ConversationID: 1,
			Sender:         domain.SenderUser,
			Text:           fmt.Sprintf("t%d", offset),
			CreatedAt:      now.Add(time.Duration(offset) * time.Second),
		})
		require.NoError(t, err)
	}

	got, err := repo.FindByConversationID(ctx, 1)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
}

func TestMessageRepository_RejectsInvalid(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.ChatMessage{ConversationID: 1, Sender: "system", Text: "x"})
	assert.Error(t, err)
	_, err = repo.Create(ctx, &domain.ChatMessage{ConversationID: 1, Sender: domain.SenderUser})
	assert.Error(t, err)
	_, err = repo.Create(ctx, &domain.ChatMessage{Sender: domain.SenderUser, Text: "x"})
	assert.Error(t, err)

	count, err := repo.CountByConversationID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}
