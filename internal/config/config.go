package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Backend names for the storage layer.
const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
)

// Default data filenames per backend, used when storage.filename is
// left empty.
const (
	defaultJSONFilename   = "tasks.json"
	defaultSQLiteFilename = "tasks.db"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Storage     StorageConfig
	Server      ServerConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir             string `env:"TASKTRACK_DATA_DIR" toml:"dir"`
	Filename        string `env:"TASKTRACK_DATA_FILENAME" toml:"filename"`
	Backend         string `env:"TASKTRACK_BACKEND" toml:"backend"`
	DirPermissions  uint32 `env:"TASKTRACK_DATA_DIR_PERMISSIONS" toml:"dir_permissions"`
	FilePermissions uint32 `env:"TASKTRACK_DATA_FILE_PERMISSIONS" toml:"file_permissions"`
}

// ServerConfig holds web server configuration
type ServerConfig struct {
	Addr             string        `env:"TASKTRACK_ADDR" toml:"addr"`
	ShutdownTimeout  time.Duration `env:"TASKTRACK_SHUTDOWN_TIMEOUT" toml:"shutdown_timeout"`
	MetricsNamespace string        `env:"TASKTRACK_METRICS_NAMESPACE" toml:"metrics_namespace"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TASKTRACK_VALIDATION_TASK_NAME_MIN" toml:"task_name_min_length"`
	TaskNameMaxLength int `env:"TASKTRACK_VALIDATION_TASK_NAME_MAX" toml:"task_name_max_length"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat    string `env:"TASKTRACK_DATE_DISPLAY_FORMAT" toml:"date_format"`
	OverdueMarker string `env:"TASKTRACK_DISPLAY_OVERDUE_MARKER" toml:"overdue_marker"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASKTRACK_APP_TIMEOUT" toml:"timeout"`
	Verbose bool          `env:"TASKTRACK_APP_VERBOSE" toml:"verbose"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".tasktrack")

	return &Config{
		Storage: StorageConfig{
			Dir: defaultDataDir,
			// Empty means the backend's own default filename
			Filename:        "",
			Backend:         BackendJSONFile,
			DirPermissions:  0755,
			FilePermissions: 0644,
		},
		Server: ServerConfig{
			Addr:             "127.0.0.1:8422",
			ShutdownTimeout:  5 * time.Second,
			MetricsNamespace: "tasktrack",
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Display: DisplayConfig{
			DateFormat:    "2006-01-02",
			OverdueMarker: "!",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDataPath returns the full path to the persisted task file (or
// database). When no filename is configured, the backend's default is
// used, so a sqlite store does not end up in a file named tasks.json.
func (c *Config) GetDataPath() string {
	filename := c.Storage.Filename
	if filename == "" {
		if c.Storage.Backend == BackendSQLite {
			filename = defaultSQLiteFilename
		} else {
			filename = defaultJSONFilename
		}
	}
	return filepath.Join(c.Storage.Dir, filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TASKTRACK_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TASKTRACK_DATA_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := os.Getenv("TASKTRACK_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if perms := os.Getenv("TASKTRACK_DATA_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}
	if perms := os.Getenv("TASKTRACK_DATA_FILE_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.FilePermissions = uint32(p)
		}
	}

	// Server configuration
	if addr := os.Getenv("TASKTRACK_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TASKTRACK_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}
	if namespace := os.Getenv("TASKTRACK_METRICS_NAMESPACE"); namespace != "" {
		c.Server.MetricsNamespace = namespace
	}

	// Validation configuration
	if minLen := os.Getenv("TASKTRACK_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TASKTRACK_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	// Display configuration
	if format := os.Getenv("TASKTRACK_DATE_DISPLAY_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if marker := os.Getenv("TASKTRACK_DISPLAY_OVERDUE_MARKER"); marker != "" {
		c.Display.OverdueMarker = marker
	}

	// Application configuration
	if timeout := os.Getenv("TASKTRACK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TASKTRACK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Backend != BackendJSONFile && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be jsonfile or sqlite"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
