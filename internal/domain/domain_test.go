package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := domain.NewUser("alice", "alice@example.com", "hashed-password")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		email    string
		hashed   string
		wantErr  error
	}{
		{"empty username", "", "alice@example.com", "hash", domain.ErrEmptyUsername},
		{"username too long", strings.Repeat("a", 101), "alice@example.com", "hash", domain.ErrUsernameTooLong},
		{"empty email", "alice", "", "hash", domain.ErrEmptyEmail},
		{"email without at sign", "alice", "alice.example.com", "hash", domain.ErrInvalidEmail},
		{"email without domain dot", "alice", "alice@example", "hash", domain.ErrInvalidEmail},
		{"email ending in at sign", "alice", "alice@", "hash", domain.ErrInvalidEmail},
		{"empty hashed password", "alice", "alice@example.com", "", domain.ErrEmptyHashedPassword},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			user, err := domain.NewUser(tc.username, tc.email, tc.hashed)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != domain.ErrInvalidEmail {
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid task starts incomplete", func(t *testing.T) {
		t.Parallel()
		task, err := domain.NewTask(userID, "Buy milk", "from the corner shop")
		require.NoError(t, err)
		assert.Equal(t, userID, task.UserID)
		assert.False(t, task.Completed)
		assert.Nil(t, task.CategoryID)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask(userID, "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("title too long rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask(userID, strings.Repeat("x", 256), "")
		assert.ErrorIs(t, err, domain.ErrTaskTitleTooLong)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask(uuid.Nil, "Buy milk", "")
		assert.ErrorIs(t, err, domain.ErrEmptyTaskOwner)
	})
}

func TestNewCategory(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	colorTests := []struct {
		name  string
		color string
		valid bool
	}{
		{"full hex", "#A1B2C3", true},
		{"shorthand hex", "#abc", true},
		{"empty is optional", "", true},
		{"missing hash", "A1B2C3", false},
		{"named color", "green", false},
		{"non-hex digits", "#GGHHII", false},
		{"wrong length", "#A1B2C", false},
	}

	for _, tc := range colorTests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			category, err := domain.NewCategory(userID, "Work", tc.color, "")
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.color, category.Color)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidCategoryColor)
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewCategory(userID, "", "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyCategoryName)
	})

	t.Run("name too long rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewCategory(userID, strings.Repeat("c", 101), "", "")
		assert.ErrorIs(t, err, domain.ErrCategoryNameTooLong)
	})
}

func TestNewTag(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid tag", func(t *testing.T) {
		t.Parallel()
		tag, err := domain.NewTag(userID, "work")
		require.NoError(t, err)
		assert.Equal(t, "work", tag.Name)
		assert.Equal(t, userID, tag.UserID)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTag(userID, "")
		assert.ErrorIs(t, err, domain.ErrEmptyTagName)
	})

	t.Run("name too long rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTag(userID, strings.Repeat("t", 51))
		assert.ErrorIs(t, err, domain.ErrTagNameTooLong)
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationError("title", "is required", domain.ErrValidation)
	assert.Equal(t, "title is required", err.Error())
	assert.ErrorIs(t, err, domain.ErrValidation)
}
