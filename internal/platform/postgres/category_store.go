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

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface.
func NewPostgresCategoryStore(db store.DBTX, log *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO categories (id, user_id, name, color, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		category.Description,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}

	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *PostgresCategoryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Category, error) {
	query := `
		SELECT id, user_id, name, color, description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, MapError(err)
	}

	return &category, nil
}

// Update implements store.CategoryStore.Update.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE categories
		SET name = $2, color = $3, description = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.Name,
		category.Color,
		category.Description,
		category.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Delete implements store.CategoryStore.Delete. Tasks referencing the
// category keep existing; their category_id column is set to NULL by the
// ON DELETE SET NULL constraint.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// ListByUser implements store.CategoryStore.ListByUser.
func (s *PostgresCategoryStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Category, error) {
	query := `
		SELECT id, user_id, name, color, description, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return categories, nil
}
