package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/pkarell/tasknest-api/migrations"
)

// migrationTableName keeps goose's bookkeeping table namespaced to this
// application.
const migrationTableName = "tasknest_schema_migrations"

// runMigrations executes the given goose command against the embedded
// migration files and returns once it completes.
func runMigrations(db *sql.DB, command string, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName(migrationTableName)
	goose.SetLogger(&slogGooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	logger.Info("running migrations", "command", command)

	var err error
	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	logger.Info("migrations completed", "command", command)
	return nil
}

// slogGooseLogger adapts slog to goose's logger interface.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
