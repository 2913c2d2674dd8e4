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

// tagsUserNameConstraint is the unique constraint on (user_id, name).
const tagsUserNameConstraint = "tags_user_id_name_key"

// PostgresTagStore implements the store.TagStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTagStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTagStore creates a new PostgreSQL implementation of the
// TagStore interface.
func NewPostgresTagStore(db store.DBTX, log *slog.Logger) *PostgresTagStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresTagStore{
		db:     db,
		logger: log.With(slog.String("component", "tag_store")),
	}
}

// Ensure PostgresTagStore implements store.TagStore interface
var _ store.TagStore = (*PostgresTagStore)(nil)

// Create implements store.TagStore.Create.
func (s *PostgresTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tag.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tags (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, tag.ID, tag.UserID, tag.Name, tag.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err, tagsUserNameConstraint) {
			return store.ErrDuplicate
		}
		log.Error("failed to create tag",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return MapError(err)
	}

	return nil
}

// GetByID implements store.TagStore.GetByID.
func (s *PostgresTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE id = $1
	`

	var tag domain.Tag
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID,
		&tag.UserID,
		&tag.Name,
		&tag.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTagNotFound
		}
		return nil, MapError(err)
	}

	return &tag, nil
}

// Update implements store.TagStore.Update.
func (s *PostgresTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	query := `UPDATE tags SET name = $2 WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, tag.ID, tag.Name)
	if err != nil {
		if IsUniqueViolation(err, tagsUserNameConstraint) {
			return store.ErrDuplicate
		}
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTagNotFound)
}

// Delete implements store.TagStore.Delete. Rows in task_tags referencing
// the tag are removed by the ON DELETE CASCADE constraint.
func (s *PostgresTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTagNotFound)
}

// ListByUser implements store.TagStore.ListByUser.
func (s *PostgresTagStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Tag, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tags, nil
}

// FilterOwned implements store.TagStore.FilterOwned. It returns the subset
// of ids that exist and belong to userID, preserving the input order.
func (s *PostgresTagStore) FilterOwned(
	ctx context.Context,
	userID uuid.UUID,
	ids []uuid.UUID,
) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id FROM tags WHERE user_id = $1 AND id = ANY($2)`
	rows, err := s.db.QueryContext(ctx, query, userID, ids)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	owned := make(map[uuid.UUID]struct{}, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, MapError(err)
		}
		owned[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	filtered := make([]uuid.UUID, 0, len(owned))
	for _, id := range ids {
		if _, ok := owned[id]; ok {
			filtered = append(filtered, id)
			delete(owned, id)
		}
	}

	return filtered, nil
}
