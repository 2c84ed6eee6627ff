package validation

import (
	"time"

	"tasktrack/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmedName := tv.validator.TrimAndValidateString(name)

	// Check if name is empty
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	// Check length constraints (1-255 characters)
	if !tv.validator.IsValidStringLength(trimmedName, 1, 255) {
		validationError.AddInvalidLengthError("task_name", trimmedName, 1, 255)
	}

	// Check for valid characters
	if !tv.validator.IsValidTaskName(trimmedName) {
		validationError.AddInvalidCharacterError("task_name", trimmedName)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriority validates a priority level
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !priority.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", string(priority), "must be one of High, Medium, Low")
		return validationError
	}
	return nil
}

// ValidateDueDate validates a due date
func (tv *TaskValidator) ValidateDueDate(dueDate time.Time) error {
	validationError := NewValidationError()

	if dueDate.IsZero() {
		validationError.AddRequiredError("due_date")
		return validationError
	}

	if !tv.validator.IsReasonableDate(dueDate) {
		validationError.AddInvalidValueError("due_date", dueDate.Format(domain.DateFormat), "must be within ten years of today")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates the inputs of a task creation
func (tv *TaskValidator) ValidateTaskForCreation(name string, dueDate time.Time, priority domain.Priority) error {
	validationError := NewValidationError()

	tv.collect(validationError, tv.ValidateTaskName(name))
	tv.collect(validationError, tv.ValidateDueDate(dueDate))
	tv.collect(validationError, tv.ValidatePriority(priority))

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForUpdate validates a field-mask update
func (tv *TaskValidator) ValidateTaskForUpdate(id int64, fields domain.UpdateFields) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(id) {
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
	}

	if fields.IsEmpty() {
		validationError.AddInvalidValueError("fields", nil, "at least one field must be set")
	}

	if fields.Name != nil {
		tv.collect(validationError, tv.ValidateTaskName(*fields.Name))
	}
	if fields.DueDate != nil {
		tv.collect(validationError, tv.ValidateDueDate(*fields.DueDate))
	}
	if fields.Priority != nil {
		tv.collect(validationError, tv.ValidatePriority(*fields.Priority))
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	tv.collect(validationError, tv.ValidateTaskName(task.Name))
	tv.collect(validationError, tv.ValidateDueDate(task.DueDate))
	tv.collect(validationError, tv.ValidatePriority(task.Priority))

	// If task has an ID, validate it
	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}

// collect appends the field errors of a nested validation result
func (tv *TaskValidator) collect(dst *ValidationError, err error) {
	if err == nil {
		return
	}
	if nested, ok := err.(*ValidationError); ok {
		dst.Errors = append(dst.Errors, nested.Errors...)
	}
}
