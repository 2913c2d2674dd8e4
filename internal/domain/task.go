package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task validation errors. All wrap ErrValidation so callers can classify
// them with a single errors.Is check.
var (
	ErrEmptyTaskID      = fmt.Errorf("task ID cannot be empty: %w", ErrValidation)
	ErrEmptyTaskOwner   = fmt.Errorf("task owner cannot be empty: %w", ErrValidation)
	ErrEmptyTaskTitle   = fmt.Errorf("task title cannot be empty: %w", ErrValidation)
	ErrTaskTitleTooLong = fmt.Errorf("task title must be at most 255 characters long: %w", ErrValidation)
)

// Task is a single to-do item. Every task belongs to exactly one user;
// the owning user ID is set at creation and never changes. A task may
// reference one category and any number of tags, all of which must belong
// to the same user.
type Task struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Completed   bool        `json:"completed"`
	CategoryID  *uuid.UUID  `json:"category_id,omitempty"`
	TagIDs      []uuid.UUID `json:"tag_ids,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewTask creates a new incomplete Task owned by the given user.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if len(t.Title) > 255 {
		return ErrTaskTitleTooLong
	}
	return nil
}
