package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/store"
)

// TaskHandler handles task CRUD endpoints. Every operation is scoped to the
// authenticated user; task IDs belonging to other users behave exactly like
// IDs that do not exist.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With("component", "task_handler"),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), user.ID, req.Description, req.Completed)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// List handles GET /tasks with optional completed, sortBy, limit and skip
// query parameters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	opts := parseListOptions(r)

	tasks, err := h.taskService.ListTasks(r.Context(), user.ID, opts)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	// An owner with no matching tasks gets an empty array, not null.
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		// A malformed ID is indistinguishable from a missing task.
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), user.ID, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PATCH /tasks/{id}. Only description and completed may be
// patched; any other key fails the whole request and leaves the task
// unmodified.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	fields, err := decodePatch(r, "description", "completed")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}

	var patch service.TaskPatch
	if patch.Description, err = patchString(fields, "description"); err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}
	if patch.Completed, err = patchBool(fields, "completed"); err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), user.ID, id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), user.ID, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// parseListOptions builds TaskListOptions from the query string. Unrecognized
// or malformed values are ignored rather than rejected: completed accepts only
// the literal strings "true" and "false", sortBy accepts "field:asc" and
// "field:desc" over the known sortable fields, and limit/skip accept
// non-negative integers.
func parseListOptions(r *http.Request) store.TaskListOptions {
	var opts store.TaskListOptions
	query := r.URL.Query()

	switch query.Get("completed") {
	case "true":
		v := true
		opts.Completed = &v
	case "false":
		v := false
		opts.Completed = &v
	}

	opts.Sort = store.ParseTaskSort(query.Get("sortBy"))

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if skip, err := strconv.Atoi(query.Get("skip")); err == nil && skip > 0 {
		opts.Skip = skip
	}

	return opts
}
