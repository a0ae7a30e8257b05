package memory

import (
	"context"
	"fmt"
	"sync"

	"session-todo/internal/domain"
	"session-todo/internal/store"
)

// Compile-time check that TaskStore satisfies the store interface.
var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore holds tasks in process memory. Tasks are kept in insertion
// order and identifiers are assigned from a counter that starts at 1 and
// is never decremented, so an ID is never reused even after its task has
// been deleted.
//
// The mutex guards the slice and the counter as a pair; the HTTP server
// handles requests concurrently and create/delete would otherwise race on
// the counter.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []domain.Task
	nextID int64
}

// NewTaskStore creates an empty TaskStore with the identifier counter at 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		nextID: 1,
	}
}

// List returns a copy of all stored tasks in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks, nil
}

// Create trims the text, assigns the next identifier, and appends the new
// task. The counter is only advanced on success, so a validation failure
// does not burn an ID.
func (s *TaskStore) Create(ctx context.Context, text string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(s.nextID, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.tasks = append(s.tasks, *task)
	s.nextID++

	return task, nil
}

// Delete scans for the task with the given ID, removes it in place, and
// returns its data. Surviving tasks keep their relative order.
func (s *TaskStore) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			deleted := task
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return &deleted, nil
		}
	}

	return nil, fmt.Errorf("%w: id %d", store.ErrTaskNotFound, id)
}

// Stats returns the current task count and the next identifier.
func (s *TaskStore) Stats(ctx context.Context) (store.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return store.Stats{
		TaskCount: len(s.tasks),
		NextID:    s.nextID,
	}, nil
}
