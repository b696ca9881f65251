package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/store/filestore"
	"github.com/jonathan/resume-builder/internal/templates"
)

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print detailed resume data summaries")
}

// loadConfig merges the optional config file with environment and built-in
// defaults. Flag values are applied by the individual commands on top.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		StorageDir:  config.DefaultStorageDir(),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ChromePath:  os.Getenv("CHROME_PATH"),
		Port:        8080,
		Verbose:     verbose,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.SchemaPath != "" {
		schemas.SetResumeSchemaPath(cfg.SchemaPath)
	}
	return cfg, nil
}

// openStore constructs the resume store over the configured persister:
// PostgreSQL when a database URL is set, the local file store otherwise.
// The returned cleanup releases the persister.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return store.New(ctx, database, templates.Builtin()), database.Close, nil
	}

	persister, err := filestore.New(cfg.StorageDir)
	if err != nil {
		return nil, nil, err
	}
	return store.New(ctx, persister, templates.Builtin()), func() {}, nil
}
