package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"tasktrack/internal/domain"
)

func validDueDate() time.Time {
	return domain.Day(time.Now().AddDate(0, 0, 7))
}

func TestTaskValidator_ValidateTaskName(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid name", "Buy groceries", false},
		{"Trimmed valid name", "  Buy groceries  ", false},
		{"Empty name", "", true},
		{"Whitespace only", "   ", true},
		{"Too long", strings.Repeat("a", 256), true},
		{"Control characters", "bad\nname", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTaskName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_ValidatePriority(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidatePriority(domain.PriorityHigh))
	assert.NoError(t, tv.ValidatePriority(domain.PriorityMedium))
	assert.NoError(t, tv.ValidatePriority(domain.PriorityLow))

	err := tv.ValidatePriority(domain.Priority("Urgent"))
	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestTaskValidator_ValidateDueDate(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateDueDate(validDueDate()))
	assert.Error(t, tv.ValidateDueDate(time.Time{}))
	assert.Error(t, tv.ValidateDueDate(time.Now().AddDate(-30, 0, 0)))
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTaskForCreation("Write report", validDueDate(), domain.PriorityMedium))

	// All failing fields are reported together
	err := tv.ValidateTaskForCreation("", time.Time{}, domain.Priority("nope"))
	assert.Error(t, err)
	ve, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.NotEmpty(t, ve.GetFieldErrors("task_name"))
	assert.NotEmpty(t, ve.GetFieldErrors("due_date"))
	assert.NotEmpty(t, ve.GetFieldErrors("priority"))
}

func TestTaskValidator_ValidateTaskForUpdate(t *testing.T) {
	tv := NewTaskValidator()
	name := "Renamed"
	due := validDueDate()
	prio := domain.PriorityLow

	assert.NoError(t, tv.ValidateTaskForUpdate(1, domain.UpdateFields{Name: &name}))
	assert.NoError(t, tv.ValidateTaskForUpdate(1, domain.UpdateFields{DueDate: &due, Priority: &prio}))

	// Empty field mask is rejected
	assert.Error(t, tv.ValidateTaskForUpdate(1, domain.UpdateFields{}))

	// Invalid ID is rejected
	assert.Error(t, tv.ValidateTaskForUpdate(0, domain.UpdateFields{Name: &name}))

	// Invalid field value is rejected
	empty := ""
	assert.Error(t, tv.ValidateTaskForUpdate(1, domain.UpdateFields{Name: &empty}))
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	tv := NewTaskValidator()

	task := domain.NewTask("Plan trip", validDueDate(), domain.PriorityHigh)
	assert.NoError(t, tv.ValidateTask(*task))

	task.ID = -1
	assert.Error(t, tv.ValidateTask(*task))
}

func TestTaskValidator_GetValidTaskName(t *testing.T) {
	tv := NewTaskValidator()

	name, err := tv.GetValidTaskName("  Water plants  ")
	assert.NoError(t, err)
	assert.Equal(t, "Water plants", name)

	_, err = tv.GetValidTaskName("   ")
	assert.Error(t, err)
}
