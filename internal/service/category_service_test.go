package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/mocks"
	"github.com/pkarell/tasknest-api/internal/store"
)

func newTestCategoryService(t *testing.T) CategoryService {
	t.Helper()
	svc, err := NewCategoryService(mocks.NewMockCategoryStore(), nil)
	require.NoError(t, err)
	return svc
}

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("create, get, update, delete round-trip", func(t *testing.T) {
		t.Parallel()
		svc := newTestCategoryService(t)

		created, err := svc.Create(ctx, ownerID, CategoryChanges{
			Name:        "work",
			Color:       "#00ff00",
			Description: "day job",
		})
		require.NoError(t, err)
		assert.Equal(t, ownerID, created.UserID)

		got, err := svc.Get(ctx, ownerID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "work", got.Name)

		updated, err := svc.Update(ctx, ownerID, created.ID, CategoryChanges{
			Name:  "work renamed",
			Color: "#0f0",
		})
		require.NoError(t, err)
		assert.Equal(t, "work renamed", updated.Name)
		assert.Equal(t, "#0f0", updated.Color)

		require.NoError(t, svc.Delete(ctx, ownerID, created.ID))

		_, err = svc.Get(ctx, ownerID, created.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("rejects an invalid color", func(t *testing.T) {
		t.Parallel()
		svc := newTestCategoryService(t)

		_, err := svc.Create(ctx, ownerID, CategoryChanges{
			Name:  "bad color",
			Color: "green",
		})
		assert.Error(t, err)
	})

	t.Run("empty color is allowed", func(t *testing.T) {
		t.Parallel()
		svc := newTestCategoryService(t)

		created, err := svc.Create(ctx, ownerID, CategoryChanges{Name: "plain"})
		require.NoError(t, err)
		assert.Empty(t, created.Color)
	})
}

func TestCategoryOwnershipScoping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	svc := newTestCategoryService(t)

	bobs, err := svc.Create(ctx, bob, CategoryChanges{Name: "bob's"})
	require.NoError(t, err)

	t.Run("foreign category reads as not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Get(ctx, alice, bobs.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("foreign category cannot be updated or deleted", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Update(ctx, alice, bobs.ID, CategoryChanges{Name: "hijacked"})
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)

		err = svc.Delete(ctx, alice, bobs.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("list excludes foreign categories", func(t *testing.T) {
		t.Parallel()
		listed, err := svc.List(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}
