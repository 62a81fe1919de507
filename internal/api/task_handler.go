package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/claydesk/flowtest-api/internal/api/middleware"
	"github.com/claydesk/flowtest-api/internal/domain"
	"github.com/claydesk/flowtest-api/internal/platform/logger"
	"github.com/claydesk/flowtest-api/internal/store"
)

// TaskHandler handles task CRUD API requests. All of its routes sit behind
// the auth middleware; the resolved principal is used for logging only,
// since tasks are not partitioned per user.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// Create handles POST /api/v1/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, req.Priority)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	created, err := h.taskStore.Create(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	requestLogger(r).Info("task created",
		"task_id", created.ID, "priority", created.Priority)

	RespondWithJSON(w, r, http.StatusOK, created)
}

// List handles GET /api/v1/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Get handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT /api/v1/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req TaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, store.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/v1/tasks/{id}. Deleting an absent task still
// reports success.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		// A malformed ID names no task, and deleting no task succeeds.
		RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// Complete handles PATCH /api/v1/tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskStore.Complete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	requestLogger(r).Info("task completed", "task_id", task.ID)

	RespondWithJSON(w, r, http.StatusOK, task)
}

// requestLogger returns the request-scoped logger, tagged with the
// authenticated principal when one is present. Tasks are not partitioned
// per user, so the principal matters for the audit trail only.
func requestLogger(r *http.Request) *slog.Logger {
	log := logger.FromContext(r.Context())
	if principal, ok := middleware.GetPrincipal(r); ok {
		log = log.With("principal", principal)
	}
	return log
}
