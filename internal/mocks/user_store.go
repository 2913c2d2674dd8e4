package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Data for default implementation, keyed by email
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}
