package repository

import (
	"context"

	"tasktrack/internal/domain"
)

// Repository defines the interface for task persistence operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *domain.Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *domain.Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}
