package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/store"
)

// MockTagStore implements store.TagStore for testing.
type MockTagStore struct {
	CreateFn      func(ctx context.Context, tag *domain.Tag) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	FilterOwnedFn func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	Tags map[uuid.UUID]*domain.Tag
}

// NewMockTagStore creates a new mock store with initialized defaults.
func NewMockTagStore() *MockTagStore {
	return &MockTagStore{
		Tags: make(map[uuid.UUID]*domain.Tag),
	}
}

var _ store.TagStore = (*MockTagStore)(nil)

// Create implements the TagStore interface.
func (m *MockTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tag)
	}

	for _, existing := range m.Tags {
		if existing.UserID == tag.UserID && existing.Name == tag.Name {
			return store.ErrDuplicate
		}
	}
	copied := *tag
	m.Tags[tag.ID] = &copied
	return nil
}

// GetByID implements the TagStore interface.
func (m *MockTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	tag, exists := m.Tags[id]
	if !exists {
		return nil, store.ErrTagNotFound
	}
	copied := *tag
	return &copied, nil
}

// Update implements the TagStore interface.
func (m *MockTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	if _, exists := m.Tags[tag.ID]; !exists {
		return store.ErrTagNotFound
	}
	copied := *tag
	m.Tags[tag.ID] = &copied
	return nil
}

// Delete implements the TagStore interface.
func (m *MockTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.Tags[id]; !exists {
		return store.ErrTagNotFound
	}
	delete(m.Tags, id)
	return nil
}

// ListByUser implements the TagStore interface.
func (m *MockTagStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Tag, error) {
	out := make([]*domain.Tag, 0)
	for _, tag := range m.Tags {
		if tag.UserID == userID {
			copied := *tag
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// FilterOwned implements the TagStore interface.
func (m *MockTagStore) FilterOwned(
	ctx context.Context,
	userID uuid.UUID,
	ids []uuid.UUID,
) ([]uuid.UUID, error) {
	if m.FilterOwnedFn != nil {
		return m.FilterOwnedFn(ctx, userID, ids)
	}

	if len(ids) == 0 {
		return nil, nil
	}
	filtered := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if tag, ok := m.Tags[id]; ok && tag.UserID == userID {
			filtered = append(filtered, id)
		}
	}
	return filtered, nil
}
