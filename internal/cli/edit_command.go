package cli

import (
	"context"
	"fmt"

	"tasktrack/internal/api"
	"tasktrack/internal/domain"
)

// EditOptions carries the flag values for the edit command. Empty
// strings mean the field is left unchanged.
type EditOptions struct {
	Name     string
	DueDate  string
	Priority string
}

// EditCommand handles the edit command
type EditCommand struct {
	api          api.API
	app          *App
	opts         EditOptions
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, opts EditOptions) *EditCommand {
	return &EditCommand{api: app.api, app: app, opts: opts, errorHandler: NewErrorHandler()}
}

// Execute runs the edit command: edit <id> [--name ...] [--due ...] [--priority ...]
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	var fields domain.UpdateFields
	if c.opts.Name != "" {
		name := c.opts.Name
		fields.Name = &name
	}
	if c.opts.DueDate != "" {
		dueDate, err := parseDueDate(c.opts.DueDate)
		if err != nil {
			return c.errorHandler.Handle("edit task", err)
		}
		fields.DueDate = &dueDate
	}
	if c.opts.Priority != "" {
		priority, err := parsePriority(c.opts.Priority)
		if err != nil {
			return c.errorHandler.Handle("edit task", err)
		}
		fields.Priority = &priority
	}

	task, err := c.api.UpdateTask(ctx, id, fields)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task %d\n", task.ID)
	fmt.Println(c.app.formatTask(task))
	return nil
}
