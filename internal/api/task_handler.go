package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"session-todo/internal/api/shared"
	"session-todo/internal/domain"
	"session-todo/internal/platform/logger"
	"session-todo/internal/store"
)

// API metadata returned by the root endpoint.
const (
	apiName    = "Session To-Do List API"
	apiVersion = "1.0.0"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler backed by the given store.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// Info handles GET / requests. It returns a short API summary: name,
// version, endpoint catalog, and the current task count.
func (h *TaskHandler) Info(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskStore.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to read store state", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Message: apiName,
		Version: apiVersion,
		Endpoints: map[string]string{
			"GET /tasks":         "Get all tasks",
			"POST /tasks":        "Create a new task",
			"DELETE /tasks/{id}": "Delete a task by ID",
		},
		TotalTasks: stats.TaskCount,
	})
}

// ListTasks handles GET /tasks requests. Tasks are returned as a JSON
// array in insertion order; an empty store yields an empty array, never
// null.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskToResponse(task))
	}

	log.Debug("listed tasks", slog.Int("count", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateTask handles POST /tasks requests. The text is trimmed of
// surrounding whitespace and must then be between 1 and the maximum task
// text length; anything else is rejected with 422 before the store is
// touched.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r,
			http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	// Length limits apply after trimming, so the validate tag alone is not
	// enough: whitespace-only text passes "required".
	text := strings.TrimSpace(req.Text)
	if text == "" {
		shared.RespondWithError(w, r,
			http.StatusUnprocessableEntity, GetSafeErrorMessage(domain.ErrTaskTextEmpty))
		return
	}
	if utf8.RuneCountInString(text) > domain.MaxTaskTextLength {
		shared.RespondWithError(w, r,
			http.StatusUnprocessableEntity, GetSafeErrorMessage(domain.ErrTaskTextTooLong))
		return
	}

	task, err := h.taskStore.Create(r.Context(), text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int("text_length", utf8.RuneCountInString(task.Text)))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(*task))
}

// DeleteTask handles DELETE /tasks/{id} requests. A missing task yields
// 404 with a detail message naming the requested id; the store is left
// unchanged.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		log.Debug("invalid task id in path", slog.String("value", idParam))
		shared.RespondWithError(w, r,
			http.StatusUnprocessableEntity, GetSafeErrorMessage(domain.ErrInvalidID))
		return
	}

	task, err := h.taskStore.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("Task with id %d not found", id))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message:     fmt.Sprintf("Task with id %d deleted successfully", task.ID),
		DeletedTask: taskToResponse(*task),
	})
}

// Health handles GET /health requests, exposing the store counters.
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskStore.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to read store state", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:     "healthy",
		TasksCount: stats.TaskCount,
		NextID:     stats.NextID,
	})
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:   task.ID,
		Text: task.Text,
	}
}
