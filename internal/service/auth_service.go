package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
	"github.com/pkarell/tasknest-api/internal/service/auth"
	"github.com/pkarell/tasknest-api/internal/store"
)

// AuthService orchestrates registration and login: uniqueness checks,
// password hashing and verification, and token issuance. Tokens are keyed
// on the user's email, which acts as the subject everywhere else.
type AuthService interface {
	// Register creates a new user and returns an identity token for them.
	// Returns store.ErrEmailExists or store.ErrUsernameExists when the
	// email or username is already taken; the email check runs first.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)

	// Login verifies the credentials and returns an identity token.
	// Returns store.ErrUserNotFound for an unknown email and
	// ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// authServiceImpl implements the AuthService interface.
type authServiceImpl struct {
	userStore    store.UserStore
	tokenService auth.TokenService
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	logger       *slog.Logger
}

// Ensure authServiceImpl implements AuthService interface
var _ AuthService = (*authServiceImpl)(nil)

// NewAuthService creates a new AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	userStore store.UserStore,
	tokenService auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) (AuthService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if tokenService == nil {
		return nil, domain.NewValidationError("tokenService", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &authServiceImpl{
		userStore:    userStore,
		tokenService: tokenService,
		hasher:       hasher,
		verifier:     verifier,
		logger:       log.With(slog.String("component", "auth_service")),
	}, nil
}

// Register implements AuthService.Register.
func (s *authServiceImpl) Register(
	ctx context.Context,
	username, email, password string,
) (string, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Uniqueness pre-checks. The insert below still carries unique
	// constraints, so a race between two registrations loses cleanly at
	// the database; these checks just pick the error the client sees.
	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		return "", nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check email uniqueness", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	if _, err := s.userStore.GetByUsername(ctx, username); err == nil {
		return "", nil, store.ErrUsernameExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check username uniqueness", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(username, email, hashed)
	if err != nil {
		return "", nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if !store.IsDuplicateError(err) {
			log.Error("failed to create user",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
		}
		return "", nil, err
	}

	token, err := s.tokenService.IssueToken(ctx, user.Email)
	if err != nil {
		log.Error("failed to issue token after registration",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return token, user, nil
}

// Login implements AuthService.Login.
func (s *authServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (string, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password verification failed",
			slog.String("user_id", user.ID.String()))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.IssueToken(ctx, user.Email)
	if err != nil {
		log.Error("failed to issue token after login",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return token, user, nil
}
