package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pkarell/tasknest-api/internal/config"
	"github.com/pkarell/tasknest-api/internal/platform/logger"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA256
// signing with a process-wide symmetric key.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA256 signing.
// The signing key comes from configuration, is loaded once, and is never
// rotated while the process runs.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
	}, nil
}

// newTokenServiceWithTime builds a token service with an injected clock.
// Tests use it to exercise expiry without sleeping.
func newTokenServiceWithTime(
	secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
) *hmacTokenService {
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}

// IssueToken creates a signed token carrying the subject and time bounds.
func (s *hmacTokenService) IssueToken(ctx context.Context, subject string) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// ValidateToken verifies signature, expiry and subject.
func (s *hmacTokenService) ValidateToken(
	ctx context.Context,
	tokenString, expectedSubject string,
) error {
	log := logger.FromContext(ctx)

	claims, err := s.parse(tokenString, true)
	if err != nil {
		log.Debug("token validation failed", "error", err)
		return err
	}

	if claims.Subject != expectedSubject {
		log.Debug("token validation failed: subject mismatch")
		return ErrSubjectMismatch
	}

	return nil
}

// ExtractSubject returns the subject claim of a signature-verified token.
// Time bounds are deliberately not checked here; the caller decides what
// to do with a token that names a subject but has expired.
func (s *hmacTokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString, false)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// parse verifies the signature and optionally the registered time claims,
// mapping jwt library errors onto this package's sentinels.
func (s *hmacTokenService) parse(
	tokenString string,
	validateClaims bool,
) (*jwt.RegisteredClaims, error) {
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}
	if !validateClaims {
		parserOpts = append(parserOpts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		// Malformed tokens, bad signatures and everything else collapse
		// into a single invalid-token answer.
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
