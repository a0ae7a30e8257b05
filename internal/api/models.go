package api

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
// Length limits apply to the text after surrounding whitespace has been
// trimmed, so the handler re-checks them post-trim.
type CreateTaskRequest struct {
	Text string `json:"text" validate:"required"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// DeleteTaskResponse defines the successful response for the task deletion
// endpoint, echoing the removed task for confirmation.
type DeleteTaskResponse struct {
	Message     string       `json:"message"`
	DeletedTask TaskResponse `json:"deleted_task"`
}

// InfoResponse defines the response for the root endpoint: a short API
// summary with the endpoint catalog and current task count.
type InfoResponse struct {
	Message    string            `json:"message"`
	Version    string            `json:"version"`
	Endpoints  map[string]string `json:"endpoints"`
	TotalTasks int               `json:"total_tasks"`
}

// HealthResponse defines the response for the health check endpoint. It
// exposes the store counters so the volatile, reset-on-restart semantics
// are observable.
type HealthResponse struct {
	Status     string `json:"status"`
	TasksCount int    `json:"tasks_count"`
	NextID     int64  `json:"next_id"`
}
