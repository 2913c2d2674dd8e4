package api

import (
	"errors"
	"net/http"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/service"
	"github.com/pkarell/tasknest-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles the /api/auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		// Duplicate email and username report as plain 400s on this
		// endpoint, matching the mapping in MapErrorToStatusCode.
		if errors.Is(err, store.ErrEmailExists) || errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Message:  "registered",
	})
}

// Login handles the /api/auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// An unknown email and a wrong password both produce a 400 here.
		// The messages differ, which matches the public contract; the
		// token layer is where existence must not leak.
		if errors.Is(err, store.ErrUserNotFound) ||
			errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Message:  "login",
	})
}
