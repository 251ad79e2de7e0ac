package task_services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorai/gestorai/internal/database"
	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/repository/task"
	"github.com/gestorai/gestorai/internal/services"
)

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return NewTaskService(task.NewTaskRepository(db, &services.NoOpLogger{}), &services.NoOpLogger{})
}

func TestCreateTask(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, 1, "   ")
	assert.Equal(t, domain.ErrTypeValidation, domain.ErrorTypeOf(err))

	created, err := svc.CreateTask(ctx, 1, " Revisar relatório ")
	require.NoError(t, err)
	assert.Equal(t, "Revisar relatório", created.Title)
	assert.False(t, created.IsCompleted)
	assert.NotZero(t, created.ID)
}

func TestImportCSV(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	input := "title,isCompleted\nComprar pão,true\n,true\nLigar para João,0\nEnviar email,1\nOutra,yes\n"
	n, err := svc.ImportCSV(ctx, 1, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	tasks, err := svc.ListTasks(ctx, 1)
	require.NoError(t, err)
	completed := map[string]bool{}
	for _, task := range tasks {
		completed[task.Title] = task.IsCompleted
	}
	assert.Equal(t, map[string]bool{
		"Comprar pão":     true,
		"Ligar para João": false,
		"Enviar email":    true,
		"Outra":           false,
	}, completed)
}

func TestImportCSV_Malformed(t *testing.T) {
	svc := newTaskService(t)

	_, err := svc.ImportCSV(context.Background(), 1, strings.NewReader(""))
	assert.Equal(t, domain.ErrTypeValidation, domain.ErrorTypeOf(err))

	_, err = svc.ImportCSV(context.Background(), 1, strings.NewReader("title\n\"unterminated\n"))
	assert.Equal(t, domain.ErrTypeValidation, domain.ErrorTypeOf(err))
}

func TestExportImportRoundTrip(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, 1, "Pagar boleto, urgente")
	require.NoError(t, err)
	_, err = svc.ImportCSV(ctx, 1, strings.NewReader("title,isCompleted\nFeita,true\n"))
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx, 1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,title,isCompleted,createdAt\n"))

	n, err := svc.ImportCSV(ctx, 2, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	original, err := svc.ListTasks(ctx, 1)
	require.NoError(t, err)
	copied, err := svc.ListTasks(ctx, 2)
	require.NoError(t, err)

	flags := func(tasks []domain.Task) map[string]bool {
		out := map[string]bool{}
		for _, t := range tasks {
			out[t.Title] = t.IsCompleted
		}
		return out
	}
	assert.Equal(t, flags(original), flags(copied))
}

func TestEncodeTasksCSV(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data, err := EncodeTasksCSV([]domain.Task{{ID: 7, Title: "a", IsCompleted: true, CreatedAt: created}})
	require.NoError(t, err)
	assert.Equal(t, "id,title,isCompleted,createdAt\n7,a,true,2024-05-01T12:00:00Z\n", string(data))

	empty, err := EncodeTasksCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "id,title,isCompleted,createdAt\n", string(empty))
}
