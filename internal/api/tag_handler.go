package api

import (
	"net/http"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/service"
)

// TagHandler handles tag API requests.
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new TagHandler with the given dependencies.
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	tags, err := h.tagService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tags")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTagListResponse(tags))
}

// Get handles GET /api/tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, tagID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.Get(r.Context(), userID, tagID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get tag")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTagResponse(tag))
}

// Create handles POST /api/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req TagRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tag, err := h.tagService.Create(r.Context(), userID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create tag")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTagResponse(tag))
}

// Update handles PUT /api/tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, tagID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req TagRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tag, err := h.tagService.Update(r.Context(), userID, tagID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update tag")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTagResponse(tag))
}

// Delete handles DELETE /api/tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, tagID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.tagService.Delete(r.Context(), userID, tagID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete tag")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
