package cli

import (
	"context"
	"fmt"

	"tasktrack/internal/api"
	"tasktrack/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{api: app.api, app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the add command: add <name> <due date> [priority]
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	name := args[0]
	dueDate, err := parseDueDate(args[1])
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	priority := domain.PriorityMedium
	if len(args) > 2 {
		priority, err = parsePriority(args[2])
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
	}

	task, err := c.api.AddTask(ctx, name, dueDate, priority)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.Name)
	return nil
}
