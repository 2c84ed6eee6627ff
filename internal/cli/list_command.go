package cli

import (
	"context"

	"tasktrack/internal/api"
	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
)

// ListOptions carries the flag values for the list command
type ListOptions struct {
	Priority         string
	IncludeCompleted bool
}

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	app          *App
	opts         ListOptions
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts ListOptions) *ListCommand {
	return &ListCommand{api: app.api, app: app, opts: opts, errorHandler: NewErrorHandler()}
}

// Execute runs the list command: list [all|today|this-week|overdue]
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	var queryOpts domain.QueryOptions
	queryOpts.IncludeCompleted = c.opts.IncludeCompleted

	if len(args) > 0 {
		filter, ok := domain.ParseDateFilter(args[0])
		if !ok {
			return c.errorHandler.Handle("list tasks",
				errors.NewInvalidInputError("filter", args[0], "must be all, today, this-week or overdue"))
		}
		queryOpts.Date = filter
	}

	if c.opts.Priority != "" {
		priority, err := parsePriority(c.opts.Priority)
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		queryOpts.Priority = &priority
	}

	tasks, err := c.api.QueryTasks(ctx, queryOpts)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.app.printTasks(tasks)
	return nil
}
