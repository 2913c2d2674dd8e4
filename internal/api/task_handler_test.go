package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/mocks"
	"github.com/pkarell/tasknest-api/internal/service"
)

// taskAPIFixture wires the task handler behind a chi router so path
// parameters resolve, with identity injected straight into the context.
type taskAPIFixture struct {
	router http.Handler
	svc    service.TaskService
}

func newTaskAPIFixture(t *testing.T) *taskAPIFixture {
	t.Helper()
	svc, err := service.NewTaskService(
		mocks.NewMockTaskStore(),
		mocks.NewMockCategoryStore(),
		mocks.NewMockTagStore(),
		nil,
	)
	require.NoError(t, err)

	h := NewTaskHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)
		r.Get("/incomplete", h.ListIncomplete)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Put("/{id}/toggle", h.Toggle)
	})

	return &taskAPIFixture{router: r, svc: svc}
}

// do performs a request as the given user. A nil userID sends the request
// without an identity.
func (f *taskAPIFixture) do(
	t *testing.T,
	userID uuid.UUID,
	method, target string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if userID != uuid.Nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
		req = req.WithContext(ctx)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *taskAPIFixture) createTask(t *testing.T, userID uuid.UUID, title string) TaskResponse {
	t.Helper()
	rr := f.do(t, userID, http.MethodPost, "/api/tasks/", TaskRequest{Title: title})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestTaskHandlerCRUD(t *testing.T) {
	t.Parallel()
	alice := uuid.New()

	t.Run("create returns 201 with the task", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)

		created := f.createTask(t, alice, "write tests")
		assert.Equal(t, "write tests", created.Title)
		assert.False(t, created.Completed)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})

	t.Run("get returns the created task", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		created := f.createTask(t, alice, "write tests")

		rr := f.do(t, alice, http.MethodGet, "/api/tasks/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		created := f.createTask(t, alice, "first title")

		rr := f.do(t, alice, http.MethodPut, "/api/tasks/"+created.ID.String(), TaskRequest{
			Title:     "second title",
			Completed: true,
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "second title", got.Title)
		assert.True(t, got.Completed)
	})

	t.Run("delete returns 204 and removes the task", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		created := f.createTask(t, alice, "delete me")

		rr := f.do(t, alice, http.MethodDelete, "/api/tasks/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())

		rr = f.do(t, alice, http.MethodGet, "/api/tasks/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("toggle flips completion", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		created := f.createTask(t, alice, "flip me")

		rr := f.do(t, alice, http.MethodPut, "/api/tasks/"+created.ID.String()+"/toggle", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.Completed)
	})

	t.Run("list and search filter by keyword", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		f.createTask(t, alice, "buy milk")
		f.createTask(t, alice, "walk the dog")

		rr := f.do(t, alice, http.MethodGet, "/api/tasks/", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var listed []TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
		assert.Len(t, listed, 2)

		rr = f.do(t, alice, http.MethodGet, "/api/tasks/search?keyword=MILK", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var found []TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
		require.Len(t, found, 1)
		assert.Equal(t, "buy milk", found[0].Title)
	})

	t.Run("incomplete excludes completed tasks", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		done := f.createTask(t, alice, "already done")
		f.createTask(t, alice, "still open")

		rr := f.do(t, alice, http.MethodPut, "/api/tasks/"+done.ID.String()+"/toggle", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = f.do(t, alice, http.MethodGet, "/api/tasks/incomplete", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var open []TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &open))
		require.Len(t, open, 1)
		assert.Equal(t, "still open", open[0].Title)
	})
}

func TestTaskHandlerErrors(t *testing.T) {
	t.Parallel()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("missing identity returns 401", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)

		rr := f.do(t, uuid.Nil, http.MethodGet, "/api/tasks/", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("another user's task returns 404 without detail", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)
		created := f.createTask(t, bob, "bob's secret")

		rr := f.do(t, alice, http.MethodGet, "/api/tasks/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.NotContains(t, rr.Body.String(), "bob's secret")

		// Identical body for a genuinely missing task.
		missing := f.do(t, alice, http.MethodGet, "/api/tasks/"+uuid.NewString(), nil)
		assert.Equal(t, rr.Body.String(), missing.Body.String())
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)

		rr := f.do(t, alice, http.MethodGet, "/api/tasks/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("create without title returns 400", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)

		rr := f.do(t, alice, http.MethodPost, "/api/tasks/", TaskRequest{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("deleting a missing task returns 404", func(t *testing.T) {
		t.Parallel()
		f := newTaskAPIFixture(t)

		rr := f.do(t, alice, http.MethodDelete, "/api/tasks/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
