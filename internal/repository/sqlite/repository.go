package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
	"tasktrack/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository.Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance. Pass ":memory:" for an
// ephemeral database.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and sets its assigned ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	query := `
	INSERT INTO tasks (name, due_date, priority, completed, created_at)
	VALUES (?, ?, ?, ?, ?)`

	completed := 0
	if task.Completed {
		completed = 1
	}

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Name,
		FormatDateForDB(task.DueDate),
		string(task.Priority),
		completed,
		FormatTimeForDB(task.CreatedAt),
	)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
	SELECT id, name, due_date, priority, completed, created_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by due date
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT id, name, due_date, priority, completed, created_at
	FROM tasks
	ORDER BY due_date ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	query := `
	UPDATE tasks
	SET name = ?, due_date = ?, priority = ?, completed = ?
	WHERE id = ?`

	completed := 0
	if task.Completed {
		completed = 1
	}

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Name,
		FormatDateForDB(task.DueDate),
		string(task.Priority),
		completed,
		task.ID,
	)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
