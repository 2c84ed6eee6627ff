package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with optional fields so a partial TOML file
// only overrides what it names. Durations are strings in the file
// ("30s", "2m") and parsed here.
type fileConfig struct {
	Storage struct {
		Dir             *string `toml:"dir"`
		Filename        *string `toml:"filename"`
		Backend         *string `toml:"backend"`
		DirPermissions  *uint32 `toml:"dir_permissions"`
		FilePermissions *uint32 `toml:"file_permissions"`
	} `toml:"storage"`
	Server struct {
		Addr             *string `toml:"addr"`
		ShutdownTimeout  *string `toml:"shutdown_timeout"`
		MetricsNamespace *string `toml:"metrics_namespace"`
	} `toml:"server"`
	Validation struct {
		TaskNameMinLength *int `toml:"task_name_min_length"`
		TaskNameMaxLength *int `toml:"task_name_max_length"`
	} `toml:"validation"`
	Display struct {
		DateFormat    *string `toml:"date_format"`
		OverdueMarker *string `toml:"overdue_marker"`
	} `toml:"display"`
	Application struct {
		Timeout *string `toml:"timeout"`
		Verbose *bool   `toml:"verbose"`
	} `toml:"application"`
}

// DefaultFilePath returns the conventional location of the optional
// config file. TASKTRACK_CONFIG overrides it.
func DefaultFilePath() string {
	if path := os.Getenv("TASKTRACK_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".tasktrack", "config.toml")
}

// LoadFromFile applies settings from a TOML config file on top of the
// current values. A missing file is not an error; a malformed file is.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return &ConfigError{Field: "file", Message: "cannot parse " + path + ": " + err.Error()}
	}

	// Storage
	if fc.Storage.Dir != nil {
		c.Storage.Dir = *fc.Storage.Dir
	}
	if fc.Storage.Filename != nil {
		c.Storage.Filename = *fc.Storage.Filename
	}
	if fc.Storage.Backend != nil {
		c.Storage.Backend = *fc.Storage.Backend
	}
	if fc.Storage.DirPermissions != nil {
		c.Storage.DirPermissions = *fc.Storage.DirPermissions
	}
	if fc.Storage.FilePermissions != nil {
		c.Storage.FilePermissions = *fc.Storage.FilePermissions
	}

	// Server
	if fc.Server.Addr != nil {
		c.Server.Addr = *fc.Server.Addr
	}
	if fc.Server.ShutdownTimeout != nil {
		if d, err := time.ParseDuration(*fc.Server.ShutdownTimeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}
	if fc.Server.MetricsNamespace != nil {
		c.Server.MetricsNamespace = *fc.Server.MetricsNamespace
	}

	// Validation
	if fc.Validation.TaskNameMinLength != nil {
		c.Validation.TaskNameMinLength = *fc.Validation.TaskNameMinLength
	}
	if fc.Validation.TaskNameMaxLength != nil {
		c.Validation.TaskNameMaxLength = *fc.Validation.TaskNameMaxLength
	}

	// Display
	if fc.Display.DateFormat != nil {
		c.Display.DateFormat = *fc.Display.DateFormat
	}
	if fc.Display.OverdueMarker != nil {
		c.Display.OverdueMarker = *fc.Display.OverdueMarker
	}

	// Application
	if fc.Application.Timeout != nil {
		if d, err := time.ParseDuration(*fc.Application.Timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}
