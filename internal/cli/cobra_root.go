package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tasktrack/internal/api"
	"tasktrack/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tasktrack",
		Short: "A command-line task manager with due dates and priorities",
		Long: `TaskTrack is a single-user task manager. Tasks have a name, a due
date, a priority (High, Medium or Low) and a completion flag, and are
persisted to a JSON file (or optionally a SQLite database).

EXAMPLES:
  tasktrack add "Write report" 2026-09-01 High   # Add a task
  tasktrack list                                 # List open tasks
  tasktrack list this-week --priority High       # Filter by window and priority
  tasktrack done 3                               # Mark task 3 completed
  tasktrack edit 3 --due 2026-09-15              # Move a due date
  tasktrack overdue                              # Show overdue tasks
  tasktrack export csv > tasks.csv               # Export all tasks
  tasktrack serve                                # Start the web UI

CONFIGURATION:
  Configuration priority order: command-line flags > environment
  variables > config file (~/.tasktrack/config.toml) > defaults

  Storage:
    TASKTRACK_DATA_DIR                 Data directory (default: ~/.tasktrack)
    TASKTRACK_DATA_FILENAME            Data filename (default: tasks.json, or tasks.db for sqlite)
    TASKTRACK_BACKEND                  Storage backend: jsonfile or sqlite

  Server:
    TASKTRACK_ADDR                     Listen address (default: 127.0.0.1:8422)

  Display:
    TASKTRACK_DATE_DISPLAY_FORMAT      Date format (default: 2006-01-02)
    TASKTRACK_DISPLAY_OVERDUE_MARKER   Overdue marker (default: !)

  Application:
    TASKTRACK_APP_TIMEOUT              Command timeout (default: 60s)
    TASKTRACK_APP_VERBOSE              Enable verbose output`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with the given arguments
func (r *RootCommand) Execute(args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Display configuration
	flags.String("date-format", "", "Date display format (overrides TASKTRACK_DATE_DISPLAY_FORMAT)")
	flags.String("overdue-marker", "", "Overdue marker text (overrides TASKTRACK_DISPLAY_OVERDUE_MARKER)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TASKTRACK_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TASKTRACK_VALIDATION_TASK_NAME_MAX)")

	// Server configuration
	flags.String("addr", "", "Web server listen address (overrides TASKTRACK_ADDR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TASKTRACK_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKTRACK_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	app := NewApp(r.api, r.config)

	addCmd := &cobra.Command{
		Use:   "add [name] [due date] [priority]",
		Short: "Add a new task",
		Long: `Add a new task with a name, a due date and an optional priority.

The due date uses the YYYY-MM-DD format. Priority is High, Medium or
Low and defaults to Medium.

Examples:
  tasktrack add "Write report" 2026-09-01
  tasktrack add "Pay rent" 2026-09-01 High`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(app).Execute(ctx, args)
		},
	}

	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list [all|today|this-week|overdue]",
		Short: "List tasks",
		Long: `List tasks, optionally narrowed to a due-date window.

Completed tasks are hidden unless --completed is given. Results are
ordered by due date, with priority breaking ties.

Examples:
  tasktrack list                          # All open tasks
  tasktrack list today                    # Tasks due today
  tasktrack list this-week --completed    # This week, including finished
  tasktrack list --priority High          # Only High priority tasks`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(app, listOpts).Execute(ctx, args)
		},
	}
	listCmd.Flags().StringVar(&listOpts.Priority, "priority", "", "Only show tasks with this priority")
	listCmd.Flags().BoolVar(&listOpts.IncludeCompleted, "completed", false, "Include completed tasks")

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(app, true).Execute(ctx, args)
		},
	}

	undoneCmd := &cobra.Command{
		Use:   "undone [id]",
		Short: "Mark a completed task as open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(app, false).Execute(ctx, args)
		},
	}

	var editOpts EditOptions
	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a task",
		Long: `Edit one or more fields of an existing task. Fields not named by a
flag keep their current values.

Examples:
  tasktrack edit 3 --name "New name"
  tasktrack edit 3 --due 2026-09-15 --priority Low`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEditCommand(app, editOpts).Execute(ctx, args)
		},
	}
	editCmd.Flags().StringVar(&editOpts.Name, "name", "", "New task name")
	editCmd.Flags().StringVar(&editOpts.DueDate, "due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editOpts.Priority, "priority", "", "New priority (High, Medium or Low)")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task by ID. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(app).Execute(ctx, args)
		},
	}

	overdueCmd := &cobra.Command{
		Use:   "overdue",
		Short: "List overdue tasks",
		Long:  "List incomplete tasks whose due date has passed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewOverdueCommand(app).Execute(ctx, args)
		},
	}

	countsCmd := &cobra.Command{
		Use:   "counts",
		Short: "Show task counts",
		Long:  "Show how many tasks are active and how many are completed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCountsCommand(app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [csv|pdf]",
		Short: "Export tasks to stdout",
		Long: `Export all tasks, including completed ones, in the given format.

Examples:
  tasktrack export csv > tasks.csv
  tasktrack export pdf > tasks.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(app).Execute(ctx, args)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI and JSON API",
		Long: `Start an HTTP server exposing the task API under /v1 together with
a small web UI and Prometheus metrics. The server runs until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The server runs until a signal arrives, so no timeout here
			return NewServeCommand(app).Execute(context.Background(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		undoneCmd,
		editCmd,
		deleteCmd,
		overdueCmd,
		countsCmd,
		exportCmd,
		serveCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Display configuration
	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		r.config.Display.DateFormat = dateFormat
	}
	if marker, _ := flags.GetString("overdue-marker"); marker != "" {
		r.config.Display.OverdueMarker = marker
	}

	// Validation configuration
	if minLength, _ := flags.GetInt("task-name-min-length"); minLength > 0 {
		r.config.Validation.TaskNameMinLength = minLength
	}
	if maxLength, _ := flags.GetInt("task-name-max-length"); maxLength > 0 {
		r.config.Validation.TaskNameMaxLength = maxLength
	}

	// Server configuration
	if addr, _ := flags.GetString("addr"); addr != "" {
		r.config.Server.Addr = addr
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
