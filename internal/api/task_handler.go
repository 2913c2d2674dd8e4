package api

import (
	"net/http"

	"github.com/pkarell/tasknest-api/internal/api/shared"
	"github.com/pkarell/tasknest-api/internal/service"
)

// TaskHandler handles task API requests. All routes it serves sit behind
// the authentication middleware, so a missing identity is a server-side
// wiring error rather than a client mistake.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// ListIncomplete handles GET /api/tasks/incomplete.
func (h *TaskHandler) ListIncomplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListIncomplete(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Search handles GET /api/tasks/search?keyword=.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	keyword := r.URL.Query().Get("keyword")

	tasks, err := h.taskService.Search(r.Context(), userID, keyword)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		CategoryID:  req.CategoryID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, service.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		CategoryID:  req.CategoryID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Toggle handles PUT /api/tasks/{id}/toggle.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Toggle(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to toggle task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
