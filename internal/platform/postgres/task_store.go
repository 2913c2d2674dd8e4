package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
	"github.com/pkarell/tasknest-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Unlike the other stores it holds a *sql.DB rather than a DBTX, because
// writing a task touches both the tasks table and the task_tags join
// table and runs those statements inside its own transaction.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface.
func NewPostgresTaskStore(db *sql.DB, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create. The task row and its tag
// references are written atomically.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO tasks (id, user_id, title, description, completed, category_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err := tx.ExecContext(
			ctx,
			query,
			task.ID,
			task.UserID,
			task.Title,
			task.Description,
			task.Completed,
			task.CategoryID,
			task.CreatedAt,
			task.UpdatedAt,
		)
		if err != nil {
			return MapError(err)
		}

		return replaceTaskTags(ctx, tx, task.ID, task.TagIDs)
	})

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, category_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTaskRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	task.TagIDs, err = s.tagIDsForTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Update implements store.TaskStore.Update. The task row and its tag
// references are replaced atomically.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE tasks
			SET title = $2, description = $3, completed = $4, category_id = $5, updated_at = $6
			WHERE id = $1
		`
		result, err := tx.ExecContext(
			ctx,
			query,
			task.ID,
			task.Title,
			task.Description,
			task.Completed,
			task.CategoryID,
			task.UpdatedAt,
		)
		if err != nil {
			return MapError(err)
		}
		if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
			return err
		}

		return replaceTaskTags(ctx, tx, task.ID, task.TagIDs)
	})

	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.String("task_id", task.ID.String()))
		}
		return err
	}

	return nil
}

// Delete implements store.TaskStore.Delete. Tag references go with the
// task via ON DELETE CASCADE on task_tags.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// ListByUser implements store.TaskStore.ListByUser.
func (s *PostgresTaskStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, category_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return s.queryTasks(ctx, query, userID)
}

// ListIncompleteByUser implements store.TaskStore.ListIncompleteByUser.
func (s *PostgresTaskStore) ListIncompleteByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, category_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1 AND completed = FALSE
		ORDER BY created_at DESC
	`
	return s.queryTasks(ctx, query, userID)
}

// SearchByTitle implements store.TaskStore.SearchByTitle.
func (s *PostgresTaskStore) SearchByTitle(
	ctx context.Context,
	userID uuid.UUID,
	keyword string,
) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, category_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1 AND title ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`
	return s.queryTasks(ctx, query, userID, keyword)
}

// queryTasks runs a multi-row task query and loads tag references for
// each returned task.
func (s *PostgresTaskStore) queryTasks(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	for _, task := range tasks {
		task.TagIDs, err = s.tagIDsForTask(ctx, task.ID)
		if err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

// tagIDsForTask loads the tag references of a single task.
func (s *PostgresTaskStore) tagIDsForTask(
	ctx context.Context,
	taskID uuid.UUID,
) ([]uuid.UUID, error) {
	query := `
		SELECT tag_id
		FROM task_tags
		WHERE task_id = $1
		ORDER BY tag_id
	`
	rows, err := s.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, MapError(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return ids, nil
}

// replaceTaskTags rewrites the task_tags rows for a task inside the
// caller's transaction.
func replaceTaskTags(
	ctx context.Context,
	tx *sql.Tx,
	taskID uuid.UUID,
	tagIDs []uuid.UUID,
) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = $1`, taskID); err != nil {
		return MapError(err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2)`,
			taskID,
			tagID,
		)
		if err != nil {
			return MapError(err)
		}
	}

	return nil
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTaskRow reads a single task row, translating sql.ErrNoRows into
// store.ErrTaskNotFound.
func scanTaskRow(scanner rowScanner) (*domain.Task, error) {
	var task domain.Task
	var categoryID uuid.NullUUID

	err := scanner.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&categoryID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}

	if categoryID.Valid {
		id := categoryID.UUID
		task.CategoryID = &id
	}

	return &task, nil
}
