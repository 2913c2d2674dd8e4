package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/domain"
	"github.com/pkarell/tasknest-api/internal/service"
	"github.com/pkarell/tasknest-api/internal/service/auth"
	"github.com/pkarell/tasknest-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrSubjectMismatch),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors. Resources owned by another user surface as the
	// same not found sentinels, so this mapping never distinguishes
	// missing from not-owned.
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors. Duplicate and credential failures on the auth
	// endpoints report as 400, matching the public API contract.
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSubjectMismatch),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	// Credential and uniqueness errors on the auth endpoints
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already in use"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already in use"

	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrTagNotFound):
		return "Tag not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Bad request errors
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, store.ErrInvalidEntity):
		return SanitizeValidationError(err)

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response for err, using the status code
// and safe message derived from its type. A non-empty defaultMsg overrides
// the derived message. The raw error is logged, never sent to the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if defaultMsg != "" && status == http.StatusInternalServerError {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return "Invalid " + validationErr.Field + ": " + validationErr.Reason
	}

	errMsg := err.Error()

	// validator.ValidationErrors messages look like:
	// "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				if len(fieldParts) >= 5 {
					return "Invalid " + field + ": " + getValidationTagMessage(fieldParts[3])
				}
				return "Invalid " + field
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
