package task_services

import (
	"context"
	"io"
	"strings"

	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/metrics"
	"github.com/gestorai/gestorai/internal/repository/task"
)

// Logger interface for task services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

const importBatchSize = 100

type TaskService struct {
	taskRepo task.TaskRepository
	logger   Logger
}

func NewTaskService(taskRepo task.TaskRepository, logger Logger) *TaskService {
	return &TaskService{taskRepo: taskRepo, logger: logger}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewValidationError("create_task", "O título da tarefa é obrigatório.")
	}

	created, err := s.taskRepo.Create(ctx, &domain.Task{UserID: userID, Title: title})
	if err != nil {
		s.logger.Error("task creation failed", "user_id", userID, "error", err)
		return nil, domain.NewInternalError("create_task", "Erro interno do servidor ao criar a tarefa.", err)
	}
	return created, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("task listing failed", "user_id", userID, "error", err)
		return nil, domain.NewInternalError("list_tasks", "Erro ao buscar tarefas.", err)
	}
	return tasks, nil
}

// ImportCSV stores every titled row of r in one batch and reports how many were stored.
func (s *TaskService) ImportCSV(ctx context.Context, userID uint, r io.Reader) (int, error) {
	tasks, err := DecodeTasksCSV(r, userID)
	if err != nil {
		s.logger.Warn("rejected task csv", "user_id", userID, "error", err)
		return 0, domain.NewValidationError("import_tasks", "Arquivo CSV inválido.")
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	if err := s.taskRepo.CreateInBatch(ctx, tasks, importBatchSize); err != nil {
		s.logger.Error("task import failed", "user_id", userID, "rows", len(tasks), "error", err)
		return 0, domain.NewInternalError("import_tasks", "Erro interno no servidor.", err)
	}

	metrics.RecordTasksImported(len(tasks))
	s.logger.Info("tasks imported", "user_id", userID, "count", len(tasks))
	return len(tasks), nil
}

func (s *TaskService) ExportCSV(ctx context.Context, userID uint) ([]byte, error) {
	tasks, err := s.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := EncodeTasksCSV(tasks)
	if err != nil {
		s.logger.Error("task export failed", "user_id", userID, "error", err)
		return nil, domain.NewInternalError("export_tasks", "Erro interno no servidor.", err)
	}
	return data, nil
}
