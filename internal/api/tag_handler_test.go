package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/mocks"
	"github.com/pkarell/tasknest-api/internal/service"
)

func newTagRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.NewTagService(mocks.NewMockTagStore(), nil)
	require.NoError(t, err)

	h := NewTagHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/tags", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestTagHandler(t *testing.T) {
	t.Parallel()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("full lifecycle", func(t *testing.T) {
		t.Parallel()
		router := newTagRouter(t)

		rr := doAs(t, router, alice, http.MethodPost, "/api/tags/", TagRequest{Name: "urgent"})
		require.Equal(t, http.StatusCreated, rr.Code)

		var created TagResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, "urgent", created.Name)

		rr = doAs(t, router, alice, http.MethodPut, "/api/tags/"+created.ID.String(),
			TagRequest{Name: "someday"})
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doAs(t, router, alice, http.MethodGet, "/api/tags/", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var listed []TagResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, "someday", listed[0].Name)

		rr = doAs(t, router, alice, http.MethodDelete, "/api/tags/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("duplicate tag name returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTagRouter(t)

		rr := doAs(t, router, alice, http.MethodPost, "/api/tags/", TagRequest{Name: "urgent"})
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = doAs(t, router, alice, http.MethodPost, "/api/tags/", TagRequest{Name: "urgent"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("cross-user access returns 404", func(t *testing.T) {
		t.Parallel()
		router := newTagRouter(t)

		rr := doAs(t, router, bob, http.MethodPost, "/api/tags/", TagRequest{Name: "bob's"})
		require.Equal(t, http.StatusCreated, rr.Code)
		var created TagResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

		rr = doAs(t, router, alice, http.MethodGet, "/api/tags/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		t.Parallel()
		router := newTagRouter(t)

		rr := doAs(t, router, uuid.Nil, http.MethodGet, "/api/tags/", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
