package cli

import (
	"context"

	"tasktrack/internal/api"
)

// OverdueCommand handles the overdue command
type OverdueCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewOverdueCommand creates a new overdue command handler
func NewOverdueCommand(app *App) *OverdueCommand {
	return &OverdueCommand{api: app.api, app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the overdue command
func (c *OverdueCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.api.OverdueTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list overdue tasks", err)
	}

	c.app.printTasks(tasks)
	return nil
}
