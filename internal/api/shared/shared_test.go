package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/api/shared"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		ctx := shared.SetTraceID(context.Background())
		traceID := shared.GetTraceID(ctx)
		assert.Len(t, traceID, 32, "trace ID should be 16 hex-encoded bytes")
	})

	t.Run("unset returns empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, shared.GetTraceID(context.Background()))
	})

	t.Run("unique per request", func(t *testing.T) {
		t.Parallel()
		first := shared.GetTraceID(shared.SetTraceID(context.Background()))
		second := shared.GetTraceID(shared.SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes body and content type", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		shared.RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"name": "groceries"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"name":"groceries"}`, rec.Body.String())
	})

	t.Run("nil data writes no body", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/test", nil)

		shared.RespondWithJSON(rec, req, http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace ID when present", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.TraceIDKey, "abc123"))

		shared.RespondWithError(rec, req, http.StatusNotFound, "Resource not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Resource not found","trace_id":"abc123"}`, rec.Body.String())
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		shared.RespondWithError(rec, req, http.StatusBadRequest, "Invalid input")

		assert.JSONEq(t, `{"error":"Invalid input"}`, rec.Body.String())
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"An unexpected error occurred",
		errors.New(`pq: connection to "postgres://user:secret@db/app" failed`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error)
	assert.NotContains(t, rec.Body.String(), "secret", "raw error must not reach the client")
}
