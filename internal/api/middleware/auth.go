package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/redact"
	"github.com/pkarell/tasknest-api/internal/service/auth"
)

// IdentityStore resolves a token subject to a stored user. Satisfied by
// store.UserStore.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthMiddleware binds authenticated identities to request contexts.
//
// It is split in two: Authenticate inspects credentials and never rejects
// a request, RequireAuth rejects requests that reached it without an
// identity. Routes serving both anonymous and authenticated clients take
// only the first; protected routes take both.
type AuthMiddleware struct {
	tokenService auth.TokenService
	users        IdentityStore
	logger       *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(
	tokenService auth.TokenService,
	users IdentityStore,
	log *slog.Logger,
) *AuthMiddleware {
	if log == nil {
		log = slog.Default()
	}
	return &AuthMiddleware{
		tokenService: tokenService,
		users:        users,
		logger:       log.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate extracts a bearer token from the Authorization header,
// validates it against its own subject, resolves the subject to a user,
// and binds the user's ID and email into the request context.
//
// It is a pure gate: on any failure the request proceeds without an
// identity, and the downstream RequireAuth (or the handler itself) decides
// whether that is acceptable. It never writes a response.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// An identity bound earlier in the chain wins; do not rebind.
		if _, ok := GetUserID(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			next.ServeHTTP(w, r)
			return
		}
		token := parts[1]

		subject, err := m.tokenService.ExtractSubject(token)
		if err != nil {
			m.logger.Debug("could not extract token subject",
				slog.String("error", redact.Error(err)))
			next.ServeHTTP(w, r)
			return
		}

		if err := m.tokenService.ValidateToken(r.Context(), token, subject); err != nil {
			m.logger.Debug("token validation failed",
				slog.String("error", redact.Error(err)))
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetByEmail(r.Context(), subject)
		if err != nil {
			// A valid token for a user that no longer exists. Proceed
			// unauthenticated; protected routes will reject downstream.
			m.logger.Debug("token subject has no matching user",
				slog.String("error", redact.Error(err)))
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		ctx = context.WithValue(ctx, shared.UserEmailContextKey, user.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that carry no authenticated identity with
// a 401. It must sit after Authenticate in the middleware chain.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r); !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// GetUserEmail extracts the authenticated user's email from the request
// context.
func GetUserEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(shared.UserEmailContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
