package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
)

// TagStore defines the interface for tag data persistence.
type TagStore interface {
	// Create saves a new tag to the store.
	Create(ctx context.Context, tag *domain.Tag) error

	// GetByID retrieves a tag by its unique ID.
	// Returns ErrTagNotFound if the tag does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)

	// Update modifies an existing tag.
	// Returns ErrTagNotFound if the tag does not exist.
	Update(ctx context.Context, tag *domain.Tag) error

	// Delete removes a tag by its ID, along with its task associations.
	// Returns ErrTagNotFound if the tag does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns all tags owned by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error)

	// FilterOwned returns the subset of ids that identify tags owned by
	// the given user, preserving input order. Unknown and foreign ids are
	// dropped without error.
	FilterOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}
