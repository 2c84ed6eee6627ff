package api

import (
	"context"
	"time"

	"tasktrack/internal/domain"
	"tasktrack/internal/repository"
	"tasktrack/internal/validation"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// API defines the interface for all task operations.
type API interface {
	// Task operations
	AddTask(ctx context.Context, name string, dueDate time.Time, priority domain.Priority) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, fields domain.UpdateFields) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Task, error)

	// Queries
	QueryTasks(ctx context.Context, opts domain.QueryOptions) ([]*domain.Task, error)
	OverdueTasks(ctx context.Context) ([]*domain.Task, error)
	CountTasks(ctx context.Context) (*TaskCounts, error)
}

type apiImpl struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo repository.Repository) API {
	return &apiImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
	}
}

// AddTask validates the input and creates a new incomplete task
func (a *apiImpl) AddTask(ctx context.Context, name string, dueDate time.Time, priority domain.Priority) (*domain.Task, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskForCreation(name, dueDate, priority); err != nil {
		return nil, err
	}

	// Get cleaned name
	cleanedName, err := a.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(cleanedName, dueDate, priority)
	task.CreatedAt = timeNow()
	if err := a.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	return a.repo.GetTask(ctx, id)
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return a.repo.ListTasks(ctx)
}

// UpdateTask applies the set fields of the update to an existing task.
// Unset fields keep their current values. The task is fetched first so
// a failed validation or a missing ID never touches the store.
func (a *apiImpl) UpdateTask(ctx context.Context, id int64, fields domain.UpdateFields) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskForUpdate(id, fields); err != nil {
		return nil, err
	}

	task, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil {
		cleanedName, err := a.taskValidator.GetValidTaskName(*fields.Name)
		if err != nil {
			return nil, err
		}
		task.Name = cleanedName
	}
	if fields.DueDate != nil {
		task.DueDate = domain.Day(*fields.DueDate)
	}
	if fields.Priority != nil {
		task.Priority = *fields.Priority
	}
	if fields.Completed != nil {
		task.Completed = *fields.Completed
	}

	if err := a.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	// Validate input
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	return a.repo.DeleteTask(ctx, id)
}

// SetCompleted sets the completion flag of a task. Setting the flag to
// its current value is a no-op that still succeeds.
func (a *apiImpl) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	task, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.Completed == completed {
		return task, nil
	}

	task.Completed = completed
	if err := a.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
