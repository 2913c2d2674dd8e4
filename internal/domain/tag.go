package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tag validation errors. All wrap ErrValidation.
var (
	ErrEmptyTagID     = fmt.Errorf("tag ID cannot be empty: %w", ErrValidation)
	ErrEmptyTagOwner  = fmt.Errorf("tag owner cannot be empty: %w", ErrValidation)
	ErrEmptyTagName   = fmt.Errorf("tag name cannot be empty: %w", ErrValidation)
	ErrTagNameTooLong = fmt.Errorf("tag name must be at most 50 characters long: %w", ErrValidation)
)

// Tag is a free-form label a user attaches to tasks. Tags are scoped to
// their owning user; two users can each have a "work" tag without conflict.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTag creates a new Tag owned by the given user.
func NewTag(userID uuid.UUID, name string) (*Tag, error) {
	tag := &Tag{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	return tag, nil
}

// Validate checks if the Tag has valid data.
func (t *Tag) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTagID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTagOwner
	}
	if t.Name == "" {
		return ErrEmptyTagName
	}
	if len(t.Name) > 50 {
		return ErrTagNameTooLong
	}
	return nil
}
