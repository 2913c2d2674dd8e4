package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
	"github.com/pkarell/tasknest-api/internal/store"
)

// CategoryChanges carries the client-settable category fields.
type CategoryChanges struct {
	Name        string
	Color       string
	Description string
}

// CategoryService provides category operations scoped to an owning user,
// under the same ownership discipline as TaskService: a foreign category
// is reported as store.ErrCategoryNotFound.
type CategoryService interface {
	// List returns all of the user's categories, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Category, error)

	// Get returns a single category owned by the user.
	Get(ctx context.Context, ownerID, categoryID uuid.UUID) (*domain.Category, error)

	// Create stores a new category owned by the user.
	Create(ctx context.Context, ownerID uuid.UUID, changes CategoryChanges) (*domain.Category, error)

	// Update replaces the category's mutable fields.
	Update(ctx context.Context, ownerID, categoryID uuid.UUID, changes CategoryChanges) (*domain.Category, error)

	// Delete removes the category. Tasks referencing it keep existing
	// with their reference cleared.
	Delete(ctx context.Context, ownerID, categoryID uuid.UUID) error
}

// categoryServiceImpl implements the CategoryService interface.
type categoryServiceImpl struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// Ensure categoryServiceImpl implements CategoryService interface
var _ CategoryService = (*categoryServiceImpl)(nil)

// NewCategoryService creates a new CategoryService.
func NewCategoryService(
	categoryStore store.CategoryStore,
	log *slog.Logger,
) (CategoryService, error) {
	if categoryStore == nil {
		return nil, domain.NewValidationError("categoryStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &categoryServiceImpl{
		categoryStore: categoryStore,
		logger:        log.With(slog.String("component", "category_service")),
	}, nil
}

// List implements CategoryService.List.
func (s *categoryServiceImpl) List(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Category, error) {
	return s.categoryStore.ListByUser(ctx, ownerID)
}

// Get implements CategoryService.Get.
func (s *categoryServiceImpl) Get(
	ctx context.Context,
	ownerID, categoryID uuid.UUID,
) (*domain.Category, error) {
	return s.getOwned(ctx, ownerID, categoryID)
}

// Create implements CategoryService.Create.
func (s *categoryServiceImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	changes CategoryChanges,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := domain.NewCategory(ownerID, changes.Name, changes.Color, changes.Description)
	if err != nil {
		return nil, err
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}

	return category, nil
}

// Update implements CategoryService.Update.
func (s *categoryServiceImpl) Update(
	ctx context.Context,
	ownerID, categoryID uuid.UUID,
	changes CategoryChanges,
) (*domain.Category, error) {
	category, err := s.getOwned(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = changes.Name
	category.Color = changes.Color
	category.Description = changes.Description
	category.UpdatedAt = time.Now().UTC()

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryStore.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete implements CategoryService.Delete.
func (s *categoryServiceImpl) Delete(ctx context.Context, ownerID, categoryID uuid.UUID) error {
	if _, err := s.getOwned(ctx, ownerID, categoryID); err != nil {
		return err
	}
	return s.categoryStore.Delete(ctx, categoryID)
}

// getOwned fetches a category by id and verifies ownership.
func (s *categoryServiceImpl) getOwned(
	ctx context.Context,
	ownerID, categoryID uuid.UUID,
) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != ownerID {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}
