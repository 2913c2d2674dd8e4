package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
	"github.com/pkarell/tasknest-api/internal/store"
)

// TaskChanges carries the client-settable task fields for create and
// update operations. The owner is never part of it; it always comes from
// the authenticated identity.
type TaskChanges struct {
	Title       string
	Description string
	Completed   bool
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
}

// TaskService provides task operations scoped to an owning user.
//
// Every method takes the authenticated user's ID and guarantees that no
// task belonging to another user can be read or written through it. A
// task that exists but is owned by someone else is reported as
// store.ErrTaskNotFound, identically to one that does not exist.
type TaskService interface {
	// List returns all of the user's tasks, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// ListIncomplete returns the user's incomplete tasks, newest first.
	ListIncomplete(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Search returns the user's tasks whose title contains the keyword,
	// case-insensitively.
	Search(ctx context.Context, ownerID uuid.UUID, keyword string) ([]*domain.Task, error)

	// Get returns a single task owned by the user.
	Get(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// Create stores a new task owned by the user. Category and tag
	// references that the user does not own are silently dropped.
	Create(ctx context.Context, ownerID uuid.UUID, changes TaskChanges) (*domain.Task, error)

	// Update replaces the task's mutable fields. Category and tag
	// references that the user does not own are silently dropped.
	Update(ctx context.Context, ownerID, taskID uuid.UUID, changes TaskChanges) (*domain.Task, error)

	// Toggle flips the task's completion state and returns the result.
	Toggle(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// Delete removes the task.
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
	tagStore      store.TagStore
	logger        *slog.Logger
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	categoryStore store.CategoryStore,
	tagStore store.TagStore,
	log *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}
	if categoryStore == nil {
		return nil, domain.NewValidationError("categoryStore", "cannot be nil", domain.ErrValidation)
	}
	if tagStore == nil {
		return nil, domain.NewValidationError("tagStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:     taskStore,
		categoryStore: categoryStore,
		tagStore:      tagStore,
		logger:        log.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	return s.taskStore.ListByUser(ctx, ownerID)
}

// ListIncomplete implements TaskService.ListIncomplete.
func (s *taskServiceImpl) ListIncomplete(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Task, error) {
	return s.taskStore.ListIncompleteByUser(ctx, ownerID)
}

// Search implements TaskService.Search.
func (s *taskServiceImpl) Search(
	ctx context.Context,
	ownerID uuid.UUID,
	keyword string,
) ([]*domain.Task, error) {
	return s.taskStore.SearchByTitle(ctx, ownerID, keyword)
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	return s.getOwned(ctx, ownerID, taskID)
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	changes TaskChanges,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(ownerID, changes.Title, changes.Description)
	if err != nil {
		return nil, err
	}
	task.Completed = changes.Completed

	task.CategoryID, err = s.resolveCategory(ctx, ownerID, changes.CategoryID)
	if err != nil {
		return nil, err
	}

	task.TagIDs, err = s.resolveTags(ctx, ownerID, changes.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", ownerID.String()))
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	changes TaskChanges,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.getOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = changes.Title
	task.Description = changes.Description
	task.Completed = changes.Completed
	task.UpdatedAt = time.Now().UTC()

	task.CategoryID, err = s.resolveCategory(ctx, ownerID, changes.CategoryID)
	if err != nil {
		return nil, err
	}

	task.TagIDs, err = s.resolveTags(ctx, ownerID, changes.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	return task, nil
}

// Toggle implements TaskService.Toggle.
func (s *taskServiceImpl) Toggle(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.getOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	// Fetch first so a foreign task deletes nothing and reports not-found.
	if _, err := s.getOwned(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.taskStore.Delete(ctx, taskID)
}

// getOwned fetches a task by id and verifies ownership. An existing task
// owned by someone else is indistinguishable from a missing one.
func (s *taskServiceImpl) getOwned(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// resolveCategory validates that the referenced category belongs to the
// owner. A missing or foreign category is dropped to nil rather than
// rejected, so a task save never fails on a stale category reference.
func (s *taskServiceImpl) resolveCategory(
	ctx context.Context,
	ownerID uuid.UUID,
	categoryID *uuid.UUID,
) (*uuid.UUID, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := s.categoryStore.GetByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if category.UserID != ownerID {
		logger.FromContextOrDefault(ctx, s.logger).Debug("dropping foreign category reference",
			slog.String("category_id", categoryID.String()),
			slog.String("user_id", ownerID.String()))
		return nil, nil
	}

	id := category.ID
	return &id, nil
}

// resolveTags keeps only tag references the owner actually owns.
func (s *taskServiceImpl) resolveTags(
	ctx context.Context,
	ownerID uuid.UUID,
	tagIDs []uuid.UUID,
) ([]uuid.UUID, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	return s.tagStore.FilterOwned(ctx, ownerID, tagIDs)
}
