package cli

import (
	"context"
	"io"
	"os"

	"tasktrack/internal/api"
	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
	"tasktrack/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler writing to stdout
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{api: app.api, out: os.Stdout, errorHandler: NewErrorHandler()}
}

// Execute runs the export command: export <csv|pdf>
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := args[0]

	tasks, err := c.api.QueryTasks(ctx, domain.QueryOptions{IncludeCompleted: true})
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	switch format {
	case "csv":
		err = export.WriteCSV(c.out, tasks)
	case "pdf":
		err = export.WritePDF(c.out, tasks, timeNow())
	default:
		err = errors.NewInvalidInputError("format", format, "must be csv or pdf")
	}
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}
	return nil
}
