package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/mocks"
	"github.com/pkarell/tasknest-api/internal/store"
)

func newTestAuthService(t *testing.T, userStore store.UserStore) AuthService {
	t.Helper()
	svc, err := NewAuthService(
		userStore,
		&mocks.MockTokenService{},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{},
		nil,
	)
	require.NoError(t, err)
	return svc
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("registers a new user and issues a token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestAuthService(t, userStore)

		token, user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		// Token subject is the email, not the username or ID.
		assert.Equal(t, "token-for-alice@example.com", token)
		// The stored password is the hash, never the plaintext.
		assert.NotEqual(t, "password123", user.HashedPassword)

		stored, err := userStore.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestAuthService(t, userStore)

		_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, "other", "alice@example.com", "password456")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestAuthService(t, userStore)

		_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, "alice", "other@example.com", "password456")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("email conflict wins when both are taken", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestAuthService(t, userStore)

		_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, "alice", "alice@example.com", "password123")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestAuthService(t, userStore)

		_, _, err := svc.Register(ctx, "alice", "not-an-email", "password123")
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	register := func(t *testing.T) (AuthService, *mocks.MockUserStore) {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		svc := newTestAuthService(t, userStore)
		_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)
		return svc, userStore
	}

	t.Run("logs in with correct credentials", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		token, user, err := svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "token-for-alice@example.com", token)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		_, _, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("register then login round-trips", func(t *testing.T) {
		t.Parallel()
		svc, userStore := register(t)

		token, user, err := svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		var stored *domain.User
		stored, err = userStore.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})
}

func TestNewAuthServiceValidation(t *testing.T) {
	t.Parallel()

	_, err := NewAuthService(nil, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, nil)
	assert.Error(t, err)

	_, err = NewAuthService(mocks.NewMockUserStore(), nil, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, nil)
	assert.Error(t, err)
}
