package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		ok       bool
	}{
		{"High", "High", PriorityHigh, true},
		{"Medium", "Medium", PriorityMedium, true},
		{"Low", "Low", PriorityLow, true},
		{"Empty", "", "", false},
		{"Lowercase", "high", "", false},
		{"Unknown", "Urgent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePriority(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, Priority("bogus").Rank(), PriorityLow.Rank())
}

func TestNewTask(t *testing.T) {
	due := time.Date(2024, 3, 15, 17, 30, 0, 0, time.Local)
	task := NewTask("Write report", due, PriorityHigh)

	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.False(t, task.Completed)
	// Due dates carry day precision only.
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), task.DueDate)
}

func TestTask_IsValid(t *testing.T) {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"Valid", Task{Name: "a", DueDate: due, Priority: PriorityLow}, true},
		{"Empty name", Task{Name: "", DueDate: due, Priority: PriorityLow}, false},
		{"Bad priority", Task{Name: "a", DueDate: due, Priority: "Urgent"}, false},
		{"Zero due date", Task{Name: "a", Priority: PriorityLow}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "Past due and incomplete",
			task:     Task{DueDate: today.AddDate(0, 0, -1)},
			expected: true,
		},
		{
			name:     "Past due but completed",
			task:     Task{DueDate: today.AddDate(0, 0, -1), Completed: true},
			expected: false,
		},
		{
			name:     "Due today",
			task:     Task{DueDate: today},
			expected: false,
		},
		{
			name:     "Due in the future",
			task:     Task{DueDate: today.AddDate(0, 0, 3)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsOverdue(today))
		})
	}
}

func TestDay(t *testing.T) {
	ts := time.Date(2024, 6, 2, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Day(ts))
	// Already truncated times pass through unchanged.
	assert.Equal(t, Day(ts), Day(Day(ts)))
}

func TestParseDateFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected DateFilter
		ok       bool
	}{
		{"all", DateFilterAll, true},
		{"today", DateFilterToday, true},
		{"this-week", DateFilterThisWeek, true},
		{"overdue", DateFilterOverdue, true},
		{"", DateFilterAll, true},
		{"yesterday", "", false},
	}

	for _, tt := range tests {
		f, ok := ParseDateFilter(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, f, "input %q", tt.input)
	}
}

func TestUpdateFields_IsEmpty(t *testing.T) {
	assert.True(t, UpdateFields{}.IsEmpty())

	name := "renamed"
	assert.False(t, UpdateFields{Name: &name}.IsEmpty())

	completed := true
	assert.False(t, UpdateFields{Completed: &completed}.IsEmpty())
}
