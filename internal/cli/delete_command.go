package cli

import (
	"context"
	"fmt"

	"tasktrack/internal/api"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the delete command: delete <id>
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}
