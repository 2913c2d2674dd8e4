package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// Update implements the TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// ListByUser implements the TaskStore interface.
func (m *MockTaskStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	return m.collect(func(t *domain.Task) bool {
		return t.UserID == userID
	}), nil
}

// ListIncompleteByUser implements the TaskStore interface.
func (m *MockTaskStore) ListIncompleteByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	return m.collect(func(t *domain.Task) bool {
		return t.UserID == userID && !t.Completed
	}), nil
}

// SearchByTitle implements the TaskStore interface.
func (m *MockTaskStore) SearchByTitle(
	ctx context.Context,
	userID uuid.UUID,
	keyword string,
) ([]*domain.Task, error) {
	lower := strings.ToLower(keyword)
	return m.collect(func(t *domain.Task) bool {
		return t.UserID == userID && strings.Contains(strings.ToLower(t.Title), lower)
	}), nil
}

// collect returns matching tasks, newest first, mirroring the SQL ordering.
func (m *MockTaskStore) collect(match func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if match(task) {
			copied := *task
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
