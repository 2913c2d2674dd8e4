package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarell/tasknest-api/internal/mocks"
	"github.com/pkarell/tasknest-api/internal/service"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	svc, err := service.NewAuthService(
		mocks.NewMockUserStore(),
		&mocks.MockTokenService{},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{},
		nil,
	)
	require.NoError(t, err)
	return NewAuthHandler(svc)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeAuthResponse(t *testing.T, rr *httptest.ResponseRecorder) AuthResponse {
	t.Helper()
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("returns 201 with token and registered message", func(t *testing.T) {
		t.Parallel()
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeAuthResponse(t, rr)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, "registered", resp.Message)
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		t.Parallel()
		h := newTestAuthHandler(t)

		first := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "other",
			Email:    "alice@example.com",
			Password: "password456",
		})
		assert.Equal(t, http.StatusBadRequest, second.Code)
		assert.Contains(t, second.Body.String(), "Email already in use")
	})

	t.Run("duplicate username returns 400", func(t *testing.T) {
		t.Parallel()
		h := newTestAuthHandler(t)

		first := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
			Email:    "other@example.com",
			Password: "password456",
		})
		assert.Equal(t, http.StatusBadRequest, second.Code)
		assert.Contains(t, second.Body.String(), "Username already in use")
	})

	t.Run("invalid payload returns 400", func(t *testing.T) {
		t.Parallel()
		h := newTestAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		h.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("short password returns 400", func(t *testing.T) {
		t.Parallel()
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T) *AuthHandler {
		t.Helper()
		h := newTestAuthHandler(t)
		rr := postJSON(t, h.Register, "/api/auth/register", RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
		return h
	}

	t.Run("returns 200 with token and login message", func(t *testing.T) {
		t.Parallel()
		h := register(t)

		rr := postJSON(t, h.Login, "/api/auth/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeAuthResponse(t, rr)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "login", resp.Message)
	})

	t.Run("unknown email returns 400", func(t *testing.T) {
		t.Parallel()
		h := register(t)

		rr := postJSON(t, h.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("wrong password returns 400", func(t *testing.T) {
		t.Parallel()
		h := register(t)

		rr := postJSON(t, h.Login, "/api/auth/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})
}
