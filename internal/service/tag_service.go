package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
	"github.com/pkarell/tasknest-api/internal/store"
)

// TagService provides tag operations scoped to an owning user. A foreign
// tag is reported as store.ErrTagNotFound.
type TagService interface {
	// List returns all of the user's tags, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Tag, error)

	// Get returns a single tag owned by the user.
	Get(ctx context.Context, ownerID, tagID uuid.UUID) (*domain.Tag, error)

	// Create stores a new tag owned by the user.
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error)

	// Update renames the tag.
	Update(ctx context.Context, ownerID, tagID uuid.UUID, name string) (*domain.Tag, error)

	// Delete removes the tag and its task associations.
	Delete(ctx context.Context, ownerID, tagID uuid.UUID) error
}

// tagServiceImpl implements the TagService interface.
type tagServiceImpl struct {
	tagStore store.TagStore
	logger   *slog.Logger
}

// Ensure tagServiceImpl implements TagService interface
var _ TagService = (*tagServiceImpl)(nil)

// NewTagService creates a new TagService.
func NewTagService(tagStore store.TagStore, log *slog.Logger) (TagService, error) {
	if tagStore == nil {
		return nil, domain.NewValidationError("tagStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &tagServiceImpl{
		tagStore: tagStore,
		logger:   log.With(slog.String("component", "tag_service")),
	}, nil
}

// List implements TagService.List.
func (s *tagServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Tag, error) {
	return s.tagStore.ListByUser(ctx, ownerID)
}

// Get implements TagService.Get.
func (s *tagServiceImpl) Get(
	ctx context.Context,
	ownerID, tagID uuid.UUID,
) (*domain.Tag, error) {
	return s.getOwned(ctx, ownerID, tagID)
}

// Create implements TagService.Create.
func (s *tagServiceImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
) (*domain.Tag, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := domain.NewTag(ownerID, name)
	if err != nil {
		return nil, err
	}

	if err := s.tagStore.Create(ctx, tag); err != nil {
		log.Error("failed to create tag",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}

	return tag, nil
}

// Update implements TagService.Update.
func (s *tagServiceImpl) Update(
	ctx context.Context,
	ownerID, tagID uuid.UUID,
	name string,
) (*domain.Tag, error) {
	tag, err := s.getOwned(ctx, ownerID, tagID)
	if err != nil {
		return nil, err
	}

	tag.Name = name
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	if err := s.tagStore.Update(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// Delete implements TagService.Delete.
func (s *tagServiceImpl) Delete(ctx context.Context, ownerID, tagID uuid.UUID) error {
	if _, err := s.getOwned(ctx, ownerID, tagID); err != nil {
		return err
	}
	return s.tagStore.Delete(ctx, tagID)
}

// getOwned fetches a tag by id and verifies ownership.
func (s *tagServiceImpl) getOwned(
	ctx context.Context,
	ownerID, tagID uuid.UUID,
) (*domain.Tag, error) {
	tag, err := s.tagStore.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag.UserID != ownerID {
		return nil, store.ErrTagNotFound
	}
	return tag, nil
}
