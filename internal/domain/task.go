package domain

import "time"

// DateFormat is the calendar-date layout used everywhere a due date is
// rendered or persisted.
const DateFormat = "2006-01-02"

// Priority represents a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists all recognized priority levels in rank order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority parses a priority value, returning false if the value is
// not one of the recognized levels.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), true
	default:
		return "", false
	}
}

// IsValid checks if the priority is one of the recognized levels.
func (p Priority) IsValid() bool {
	_, ok := ParsePriority(string(p))
	return ok
}

// Rank returns the sort rank of the priority: High sorts before Medium,
// Medium before Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// String returns the priority level for display purposes.
func (p Priority) String() string {
	return string(p)
}

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        int64
	Name      string
	DueDate   time.Time
	Priority  Priority
	Completed bool
	CreatedAt time.Time
}

// NewTask creates a new Task with the given name, due date and priority.
// The due date is truncated to day precision.
func NewTask(name string, dueDate time.Time, priority Priority) *Task {
	return &Task{
		Name:     name,
		DueDate:  Day(dueDate),
		Priority: priority,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.Priority.IsValid() && !t.DueDate.IsZero()
}

// IsOverdue reports whether the task is incomplete with a due date before
// the given day.
func (t Task) IsOverdue(today time.Time) bool {
	return !t.Completed && Day(t.DueDate).Before(Day(today))
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// Day truncates a time to calendar-day precision in UTC. Due dates are
// compared at day granularity only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
