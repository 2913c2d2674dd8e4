package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors. All wrap ErrValidation.
var (
	ErrEmptyUserID         = fmt.Errorf("user ID cannot be empty: %w", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("username cannot be empty: %w", ErrValidation)
	ErrUsernameTooLong     = fmt.Errorf("username must be at most 100 characters long: %w", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("email cannot be empty: %w", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("hashed password cannot be empty: %w", ErrValidation)
)

// User represents a registered account. The password is stored only in
// hashed form; the plaintext never leaves the auth service.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username, email and
// already-hashed password. It generates a new UUID for the user ID and
// sets the creation timestamp. Returns an error if validation fails.
func NewUser(username, email, hashedPassword string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 100 {
		return ErrUsernameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format. Request
// payloads get the stricter validator/v10 "email" rule before reaching
// the domain; this is a last-resort structural check.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
