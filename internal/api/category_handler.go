package api

import (
	"net/http"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/service"
)

// CategoryHandler handles category API requests.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	categories, err := h.categoryService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCategoryListResponse(categories))
}

// Get handles GET /api/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(r.Context(), userID, categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCategoryResponse(category))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := h.categoryService.Create(r.Context(), userID, service.CategoryChanges{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCategoryResponse(category))
}

// Update handles PUT /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := h.categoryService.Update(r.Context(), userID, categoryID, service.CategoryChanges{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCategoryResponse(category))
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), userID, categoryID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
