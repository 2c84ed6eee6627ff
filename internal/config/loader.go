package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader reading the default
// config file location
func NewLoader() *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: DefaultFilePath(),
	}
}

// NewLoaderWithFile creates a loader reading a specific config file
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: path,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional TOML config file
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from the optional config file
	if err := l.config.LoadFromFile(l.filePath); err != nil {
		return nil, err
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DataDir         *string
	DataFilename    *string
	Backend         *string
	DirPermissions  *uint32
	FilePermissions *uint32

	// Server overrides
	Addr             *string
	ShutdownTimeout  *time.Duration
	MetricsNamespace *string

	// Validation overrides
	TaskNameMinLength *int
	TaskNameMaxLength *int

	// Display overrides
	DateFormat    *string
	OverdueMarker *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Storage overrides
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.DataFilename != nil {
		config.Storage.Filename = *overrides.DataFilename
	}
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.DirPermissions != nil {
		config.Storage.DirPermissions = *overrides.DirPermissions
	}
	if overrides.FilePermissions != nil {
		config.Storage.FilePermissions = *overrides.FilePermissions
	}

	// Server overrides
	if overrides.Addr != nil {
		config.Server.Addr = *overrides.Addr
	}
	if overrides.ShutdownTimeout != nil {
		config.Server.ShutdownTimeout = *overrides.ShutdownTimeout
	}
	if overrides.MetricsNamespace != nil {
		config.Server.MetricsNamespace = *overrides.MetricsNamespace
	}

	// Validation overrides
	if overrides.TaskNameMinLength != nil {
		config.Validation.TaskNameMinLength = *overrides.TaskNameMinLength
	}
	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}

	// Display overrides
	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.OverdueMarker != nil {
		config.Display.OverdueMarker = *overrides.OverdueMarker
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
