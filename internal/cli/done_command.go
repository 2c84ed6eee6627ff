package cli

import (
	"context"
	"fmt"

	"tasktrack/internal/api"
)

// DoneCommand handles the done and undone commands
type DoneCommand struct {
	api          api.API
	completed    bool
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a handler that marks tasks completed or not
func NewDoneCommand(app *App, completed bool) *DoneCommand {
	return &DoneCommand{api: app.api, completed: completed, errorHandler: NewErrorHandler()}
}

// Execute runs the done/undone command: done <id>
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	operation := "complete task"
	if !c.completed {
		operation = "reopen task"
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle(operation, err)
	}

	task, err := c.api.SetCompleted(ctx, id, c.completed)
	if err != nil {
		return c.errorHandler.Handle(operation, err)
	}

	if c.completed {
		fmt.Printf("Completed task %d: %s\n", task.ID, task.Name)
	} else {
		fmt.Printf("Reopened task %d: %s\n", task.ID, task.Name)
	}
	return nil
}
