package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category validation errors. All wrap ErrValidation.
var (
	ErrEmptyCategoryID      = fmt.Errorf("category ID cannot be empty: %w", ErrValidation)
	ErrEmptyCategoryOwner   = fmt.Errorf("category owner cannot be empty: %w", ErrValidation)
	ErrEmptyCategoryName    = fmt.Errorf("category name cannot be empty: %w", ErrValidation)
	ErrCategoryNameTooLong  = fmt.Errorf("category name must be at most 100 characters long: %w", ErrValidation)
	ErrInvalidCategoryColor = fmt.Errorf("category color must be a hex value like #A1B2C3: %w", ErrValidation)
)

// Category groups a user's tasks. Like tasks, categories belong to exactly
// one user.
type Category struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory creates a new Category owned by the given user.
// Color and description are optional.
func NewCategory(userID uuid.UUID, name, color, description string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Color:       color,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyCategoryOwner
	}
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Name) > 100 {
		return ErrCategoryNameTooLong
	}
	if c.Color != "" && !validateHexColor(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}

// validateHexColor accepts "#RGB" shorthand or the full "#RRGGBB" form.
func validateHexColor(color string) bool {
	if len(color) != 4 && len(color) != 7 {
		return false
	}
	if color[0] != '#' {
		return false
	}
	for _, ch := range color[1:] {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
