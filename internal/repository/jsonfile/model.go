package jsonfile

import (
	"time"

	"tasktrack/internal/domain"
)

// taskRecord is the on-disk shape of a task. Dates are stored as
// strings so the file stays readable and editable by hand.
type taskRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at,omitempty"`
}

// toRecord converts a domain task into its on-disk representation
func toRecord(task *domain.Task) taskRecord {
	rec := taskRecord{
		ID:        task.ID,
		Name:      task.Name,
		DueDate:   task.DueDate.Format(domain.DateFormat),
		Priority:  string(task.Priority),
		Completed: task.Completed,
	}
	if !task.CreatedAt.IsZero() {
		rec.CreatedAt = task.CreatedAt.Format(time.RFC3339)
	}
	return rec
}

// fromRecord converts an on-disk record back into a domain task.
// Records with an unparseable due date or unknown priority are
// rejected so the caller can skip them.
func fromRecord(rec taskRecord) (*domain.Task, bool) {
	if rec.ID <= 0 || rec.Name == "" {
		return nil, false
	}

	dueDate, err := time.Parse(domain.DateFormat, rec.DueDate)
	if err != nil {
		return nil, false
	}

	priority, ok := domain.ParsePriority(rec.Priority)
	if !ok {
		return nil, false
	}

	task := &domain.Task{
		ID:        rec.ID,
		Name:      rec.Name,
		DueDate:   dueDate,
		Priority:  priority,
		Completed: rec.Completed,
	}
	if rec.CreatedAt != "" {
		if createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
			task.CreatedAt = createdAt
		}
	}
	return task, true
}
