package main

import (
	"fmt"
	"os"

	"tasktrack/internal/api"
	"tasktrack/internal/cli"
	"tasktrack/internal/config"
)

func main() {
	// Load configuration: defaults, then config file, then environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the configured storage backend
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create API instance
	apiInstance := api.New(repo)

	// Build the command tree; flags apply their overrides before any
	// command runs
	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
