package store

import (
	"context"

	"session-todo/internal/domain"
)

// Stats is a read-only snapshot of the store's internal counters, exposed
// for the health and info endpoints.
type Stats struct {
	// TaskCount is the number of tasks currently held in the store.
	TaskCount int

	// NextID is the identifier that will be assigned to the next created
	// task. It starts at 1 and only ever increases.
	NextID int64
}

// TaskStore defines the interface for task storage operations.
type TaskStore interface {
	// List returns all stored tasks in insertion order. The returned slice
	// is a copy and safe for the caller to retain.
	List(ctx context.Context) ([]domain.Task, error)

	// Create trims the given text, assigns the next identifier, and appends
	// a new task to the store. Returns the created task.
	// Returns an error wrapping ErrInvalidEntity if the text fails domain
	// validation.
	Create(ctx context.Context, text string) (*domain.Task, error)

	// Delete removes the task with the given ID and returns its data for
	// confirmation. The identifier is never reused.
	// Returns an error wrapping ErrTaskNotFound if no task with the given
	// ID exists; the store is left unchanged in that case.
	Delete(ctx context.Context, id int64) (*domain.Task, error)

	// Stats returns a snapshot of the store's task count and next
	// identifier.
	Stats(ctx context.Context) (Stats, error)
}
