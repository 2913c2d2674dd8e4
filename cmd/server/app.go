package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pkarell/tasknest-api/internal/config"
	"github.com/pkarell/tasknest-api/internal/platform/postgres"
	"github.com/pkarell/tasknest-api/internal/service"
	"github.com/pkarell/tasknest-api/internal/service/auth"
	"github.com/pkarell/tasknest-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore     store.UserStore
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
	tagStore      store.TagStore

	// Services
	tokenService    auth.TokenService
	authService     service.AuthService
	taskService     service.TaskService
	categoryService service.CategoryService
	tagService      service.TagService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before wiring: configuration, logger, and database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.tagStore = postgres.NewPostgresTagStore(db, logger)

	// Services
	app.authService, err = service.NewAuthService(
		app.userStore,
		app.tokenService,
		auth.NewBcryptHasher(cfg.Auth.BCryptCost),
		auth.NewBcryptVerifier(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.categoryStore,
		app.tagStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize category service: %w", err)
	}

	app.tagService, err = service.NewTagService(app.tagStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tag service: %w", err)
	}

	return app, nil
}
