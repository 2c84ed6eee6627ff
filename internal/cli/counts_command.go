package cli

import (
	"context"
	"fmt"

	"tasktrack/internal/api"
)

// CountsCommand handles the counts command
type CountsCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCountsCommand creates a new counts command handler
func NewCountsCommand(app *App) *CountsCommand {
	return &CountsCommand{api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the counts command
func (c *CountsCommand) Execute(ctx context.Context, args []string) error {
	counts, err := c.api.CountTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("count tasks", err)
	}

	fmt.Printf("Active tasks: %d\n", counts.Active)
	fmt.Printf("Completed tasks: %d\n", counts.Completed)
	return nil
}
