// Package main implements the entry point for the TaskNest API server,
// a task management backend with per-user tasks, categories, and tags.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pkarell/tasknest-api/internal/config"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status, version) and exit",
	)
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, initializes dependencies, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database connection", "error", err)
		}
	}()

	if migrateCmd != "" {
		return runMigrations(db, migrateCmd, appLogger)
	}

	ctx := context.Background()
	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return err
	}
	return nil
}

// usage note for operators running the binary directly
func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Configuration is read from config.yaml and TASKNEST_* environment variables.\n\n")
		flag.PrintDefaults()
	}
}
