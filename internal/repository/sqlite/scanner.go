package sqlite

import (
	"fmt"

	"tasktrack/internal/domain"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*domain.Task, error) {
	var row taskRow
	err := scanner.Scan(
		&row.ID,
		&row.Name,
		&row.DueDate,
		&row.Priority,
		&row.Completed,
		&row.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	dueDate, err := ParseDateFromDB(row.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", row.DueDate, err)
	}

	priority, ok := domain.ParsePriority(row.Priority)
	if !ok {
		return nil, fmt.Errorf("invalid priority %q", row.Priority)
	}

	task := &domain.Task{
		ID:        row.ID,
		Name:      row.Name,
		DueDate:   dueDate,
		Priority:  priority,
		Completed: row.Completed != 0,
	}
	if row.CreatedAt != "" {
		createdAt, err := ParseTimeFromDB(row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at %q: %w", row.CreatedAt, err)
		}
		task.CreatedAt = createdAt
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
