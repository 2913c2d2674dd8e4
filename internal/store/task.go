package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Stores are capability-agnostic: GetByID fetches by id alone, and the
// per-user list methods filter inside the query. Ownership decisions are
// the service layer's responsibility.
type TaskStore interface {
	// Create saves a new task, including its tag references, atomically.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task (with its tag IDs) by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update replaces the task's mutable fields and its tag references
	// atomically. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns all tasks owned by the given user,
	// newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// ListIncompleteByUser returns the user's incomplete tasks, newest first.
	ListIncompleteByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// SearchByTitle returns the user's tasks whose title contains the
	// keyword, case-insensitively.
	SearchByTitle(ctx context.Context, userID uuid.UUID, keyword string) ([]*domain.Task, error)
}
