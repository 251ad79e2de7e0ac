package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gestorai/gestorai/internal/domain"
)

type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type gormTaskRepository struct {
	db     *gorm.DB
	logger Logger
}

func NewTaskRepository(db *gorm.DB, logger Logger) TaskRepository {
	return &gormTaskRepository{db: db, logger: logger}
}

func (r *gormTaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validateTaskInput(task); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.logger.Error("database error during task creation", "user_id", task.UserID, "error", err)
		return nil, fmt.Errorf("database error creating task: %w", err)
	}
	return task, nil
}

// CreateInBatch inserts all tasks in one transaction; either every row lands or none.
func (r *gormTaskRepository) CreateInBatch(ctx context.Context, tasks []*domain.Task, batchSize int) error {
	if len(tasks) == 0 {
		return nil
	}
	if batchSize <= 0 || batchSize > 1000 {
		batchSize = 100
	}

	for i, task := range tasks {
		if err := validateTaskInput(task); err != nil {
			return fmt.Errorf("validation failed for task %d: %w", i, err)
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(tasks, batchSize).Error
	})
	if err != nil {
		r.logger.Error("batch task creation failed", "count", len(tasks), "error", err)
		return fmt.Errorf("database error creating tasks: %w", err)
	}

	r.logger.Info("tasks created in batch", "count", len(tasks), "user_id", tasks[0].UserID)
	return nil
}

// FindByUserID lists the user's tasks, newest first.
func (r *gormTaskRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Task, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	tasks := []domain.Task{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	if err != nil {
		r.logger.Error("database error listing tasks", "user_id", userID, "error", err)
		return nil, fmt.Errorf("database error listing tasks: %w", err)
	}
	return tasks, nil
}

func validateTaskInput(task *domain.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}
	if task.UserID == 0 {
		return errors.New("user ID is required")
	}
	if strings.TrimSpace(task.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}
