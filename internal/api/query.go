package api

import (
	"context"
	"sort"
	"time"

	"tasktrack/internal/domain"
)

// TaskCounts summarizes the store by completion state
type TaskCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// QueryTasks returns the tasks matching the given filters, sorted by
// due date ascending with priority breaking ties (High before Medium
// before Low) and ID as the final tiebreaker.
func (a *apiImpl) QueryTasks(ctx context.Context, opts domain.QueryOptions) ([]*domain.Task, error) {
	tasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.Day(timeNow())
	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !opts.IncludeCompleted && task.Completed {
			continue
		}
		if opts.Priority != nil && task.Priority != *opts.Priority {
			continue
		}
		if !matchesDateFilter(task, opts.Date, today) {
			continue
		}
		filtered = append(filtered, task)
	}

	sortTasks(filtered)
	return filtered, nil
}

// OverdueTasks returns incomplete tasks whose due date is strictly
// before today, in the same order as QueryTasks.
func (a *apiImpl) OverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	return a.QueryTasks(ctx, domain.QueryOptions{Date: domain.DateFilterOverdue})
}

// CountTasks reports how many tasks are active and completed
func (a *apiImpl) CountTasks(ctx context.Context) (*TaskCounts, error) {
	tasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	counts := &TaskCounts{}
	for _, task := range tasks {
		if task.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
	}
	return counts, nil
}

func matchesDateFilter(task *domain.Task, filter domain.DateFilter, today time.Time) bool {
	due := domain.Day(task.DueDate)
	switch filter {
	case domain.DateFilterToday:
		return due.Equal(today)
	case domain.DateFilterThisWeek:
		// Window is today through seven days out, inclusive
		end := today.AddDate(0, 0, 7)
		return !due.Before(today) && !due.After(end)
	case domain.DateFilterOverdue:
		// Pure date window; completion is handled by the
		// include-completed option like every other filter
		return due.Before(today)
	default:
		return true
	}
}

func sortTasks(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		if tasks[i].Priority.Rank() != tasks[j].Priority.Rank() {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		}
		return tasks[i].ID < tasks[j].ID
	})
}
