package task

import (
	"context"

	"github.com/gestorai/gestorai/internal/domain"
)

// TaskRepository handles task data operations.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	CreateInBatch(ctx context.Context, tasks []*domain.Task, batchSize int) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Task, error)
}
