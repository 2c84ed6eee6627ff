package config

import (
	"fmt"

	"tasktrack/internal/repository"
	"tasktrack/internal/repository/jsonfile"
	"tasktrack/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendJSONFile:
		repo, err := jsonfile.New(config.GetDataPath(), jsonfile.Options{
			DirPermissions:  config.Storage.DirPermissions,
			FilePermissions: config.Storage.FilePermissions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize task file: %w", err)
		}
		return repo, nil
	case BackendSQLite:
		repo, err := sqlite.New(config.GetDataPath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend " + config.Storage.Backend}
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
