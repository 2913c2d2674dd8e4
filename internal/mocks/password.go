package mocks

import (
	"errors"

	"github.com/pkarell/tasknest-api/internal/service/auth"
)

// ErrMockPasswordMismatch is returned by the default MockPasswordVerifier
// on mismatch, mirroring bcrypt's mismatch error.
var ErrMockPasswordMismatch = errors.New("password mismatch")

// MockPasswordHasher implements auth.PasswordHasher for testing without the
// cost of real bcrypt. Hashes are the plaintext with a fixed prefix.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

const mockHashPrefix = "hashed:"

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return mockHashPrefix + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing,
// matching the hashes produced by MockPasswordHasher.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != mockHashPrefix+password {
		return ErrMockPasswordMismatch
	}
	return nil
}
