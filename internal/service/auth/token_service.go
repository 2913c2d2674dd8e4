package auth

import (
	"context"
)

// TokenService defines operations for issuing and validating the signed,
// self-contained identity tokens used in place of server-side sessions.
type TokenService interface {
	// IssueToken creates a signed token embedding the given subject, an
	// issued-at of now and an expiry of now plus the configured lifetime.
	// Returns the token string or an error if signing fails.
	IssueToken(ctx context.Context, subject string) (string, error)

	// ValidateToken verifies the token's signature and time bounds and
	// checks that the embedded subject matches expectedSubject. Returns
	// nil when the token is valid for that subject; otherwise
	// ErrExpiredToken, ErrSubjectMismatch or ErrInvalidToken. Malformed
	// input is reported as ErrInvalidToken, never as a panic.
	ValidateToken(ctx context.Context, tokenString, expectedSubject string) error

	// ExtractSubject decodes the subject claim after verifying the
	// signature, without enforcing time bounds. The identity middleware
	// uses it to learn who a token claims to be before full validation.
	ExtractSubject(tokenString string) (string, error)
}
