package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tasktrack/internal/api"
	"tasktrack/internal/config"
	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// parseTaskID parses a task ID argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}

// parseDueDate parses a due date argument in YYYY-MM-DD form
func parseDueDate(arg string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(arg))
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("due date", arg, "must use format YYYY-MM-DD")
	}
	return date, nil
}

// parsePriority parses a priority argument, accepting any case
func parsePriority(arg string) (domain.Priority, error) {
	trimmed := strings.TrimSpace(arg)
	for _, p := range domain.Priorities {
		if strings.EqualFold(trimmed, string(p)) {
			return p, nil
		}
	}
	return "", errors.NewInvalidInputError("priority", arg, "must be High, Medium or Low")
}

// formatTask renders one task as a display line
func (a *App) formatTask(task *domain.Task) string {
	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	line := fmt.Sprintf("%4d. %s %s (due %s, %s)",
		task.ID, checkbox, task.Name,
		task.DueDate.Format(a.config.Display.DateFormat), task.Priority)

	if task.IsOverdue(timeNow()) {
		line += " " + a.config.Display.OverdueMarker
	}
	return line
}

// printTasks prints tasks one per line, or a placeholder when empty
func (a *App) printTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return
	}
	for _, task := range tasks {
		fmt.Println(a.formatTask(task))
	}
}
