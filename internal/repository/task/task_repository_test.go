package task

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

func newRepo(t *testing.T) TaskRepository {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return NewTaskRepository(db, nopLogger{})
}

func TestTaskRepository_CreateAndList(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Task{UserID: 1, Title: "Pagar contas"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Task{UserID: 2, Title: "Outro usuário"})
	require.NoError(t, err)

	tasks, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Pagar contas", tasks[0].Title)
	assert.False(t, tasks[0].IsCompleted)
}

func TestTaskRepository_BatchIsAllOrNothing(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	err := repo.CreateInBatch(ctx, []*domain.Task{
		{UserID: 1, Title: "a"},
		{UserID: 1, Title: "  "},
	}, 10)
	assert.Error(t, err)

	tasks, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, repo.CreateInBatch(ctx, []*domain.Task{
		{UserID: 1, Title: "a", IsCompleted: true},
		{UserID: 1, Title: "b"},
	}, 1))

	tasks, err = repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
