package mocks

import (
	"context"

	"github.com/pkarell/tasknest-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing. The default
// behavior issues the subject itself prefixed with "token-for-" and
// validates by string comparison.
type MockTokenService struct {
	IssueTokenFn     func(ctx context.Context, subject string) (string, error)
	ValidateTokenFn  func(ctx context.Context, tokenString, expectedSubject string) error
	ExtractSubjectFn func(tokenString string) (string, error)
}

var _ auth.TokenService = (*MockTokenService)(nil)

const mockTokenPrefix = "token-for-"

// IssueToken implements the TokenService interface.
func (m *MockTokenService) IssueToken(ctx context.Context, subject string) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, subject)
	}
	return mockTokenPrefix + subject, nil
}

// ValidateToken implements the TokenService interface.
func (m *MockTokenService) ValidateToken(
	ctx context.Context,
	tokenString, expectedSubject string,
) error {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString, expectedSubject)
	}
	if tokenString != mockTokenPrefix+expectedSubject {
		return auth.ErrInvalidToken
	}
	return nil
}

// ExtractSubject implements the TokenService interface.
func (m *MockTokenService) ExtractSubject(tokenString string) (string, error) {
	if m.ExtractSubjectFn != nil {
		return m.ExtractSubjectFn(tokenString)
	}
	if len(tokenString) <= len(mockTokenPrefix) || tokenString[:len(mockTokenPrefix)] != mockTokenPrefix {
		return "", auth.ErrInvalidToken
	}
	return tokenString[len(mockTokenPrefix):], nil
}
