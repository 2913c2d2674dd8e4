package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkarell/tasknest-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// Token is the signed JWT used for API authorization.
	Token string `json:"token"`

	Username string `json:"username"`
	Email    string `json:"email"`

	// Message distinguishes the flow that produced the token,
	// "registered" or "login".
	Message string `json:"message"`
}

// TaskRequest defines the payload for task create and update endpoints.
type TaskRequest struct {
	Title       string      `json:"title"       validate:"required,max=255"`
	Description string      `json:"description" validate:"max=2000"`
	Completed   bool        `json:"completed"`
	CategoryID  *uuid.UUID  `json:"category_id"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

// TaskResponse defines the representation of a task returned to clients.
type TaskResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Completed   bool        `json:"completed"`
	CategoryID  *uuid.UUID  `json:"category_id,omitempty"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewTaskResponse converts a domain task into its API representation.
func NewTaskResponse(task *domain.Task) TaskResponse {
	tagIDs := task.TagIDs
	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CategoryID:  task.CategoryID,
		TagIDs:      tagIDs,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskListResponse converts a slice of domain tasks.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}
	return out
}

// CategoryRequest defines the payload for category create and update
// endpoints.
type CategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Color       string `json:"color"       validate:"omitempty,max=7"`
	Description string `json:"description" validate:"max=500"`
}

// CategoryResponse defines the representation of a category returned to
// clients.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse converts a domain category into its API representation.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Color:       category.Color,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// NewCategoryListResponse converts a slice of domain categories.
func NewCategoryListResponse(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, NewCategoryResponse(category))
	}
	return out
}

// TagRequest defines the payload for tag create and update endpoints.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// TagResponse defines the representation of a tag returned to clients.
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTagResponse converts a domain tag into its API representation.
func NewTagResponse(tag *domain.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
	}
}

// NewTagListResponse converts a slice of domain tags.
func NewTagListResponse(tags []*domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, NewTagResponse(tag))
	}
	return out
}
