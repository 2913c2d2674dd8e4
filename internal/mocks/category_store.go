package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	CreateFn  func(ctx context.Context, category *domain.Category) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	Categories map[uuid.UUID]*domain.Category
}

// NewMockCategoryStore creates a new mock store with initialized defaults.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// Create implements the CategoryStore interface.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

// GetByID implements the CategoryStore interface.
func (m *MockCategoryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	category, exists := m.Categories[id]
	if !exists {
		return nil, store.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

// Update implements the CategoryStore interface.
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if _, exists := m.Categories[category.ID]; !exists {
		return store.ErrCategoryNotFound
	}
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

// Delete implements the CategoryStore interface.
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.Categories[id]; !exists {
		return store.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// ListByUser implements the CategoryStore interface.
func (m *MockCategoryStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0)
	for _, category := range m.Categories {
		if category.UserID == userID {
			copied := *category
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
