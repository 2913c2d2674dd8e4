package service

import "errors"

// Service-level errors surfaced by the auth flows. Duplicate-identity and
// not-found conditions reuse the store sentinels (store.ErrEmailExists,
// store.ErrUsernameExists, store.ErrUserNotFound) so callers have a single
// error taxonomy to match against.
var (
	// ErrInvalidCredentials indicates the email was found but the password
	// did not match its stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
