package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// Update modifies an existing category.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category by its ID. Tasks referencing the category
	// keep existing with their category reference cleared.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns all categories owned by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
}
