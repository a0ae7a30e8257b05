package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTaskTextLength is the maximum number of characters allowed in a
// task's text after surrounding whitespace has been trimmed.
const MaxTaskTextLength = 200

// Task-specific validation errors
var (
	// ErrTaskIDInvalid is returned when a task ID is zero or negative.
	ErrTaskIDInvalid = errors.New("task ID must be a positive integer")

	// ErrTaskTextEmpty is returned when a task's text is empty or contains
	// only whitespace.
	ErrTaskTextEmpty = errors.New("task text cannot be empty")

	// ErrTaskTextTooLong is returned when a task's text exceeds
	// MaxTaskTextLength characters after trimming.
	ErrTaskTextTooLong = errors.New("task text exceeds maximum length")
)

// Task represents a single to-do entry. The ID is assigned by the store at
// creation time and is never reused, even after the task is deleted. Text
// is immutable once the task has been created.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// NewTask creates a new Task with the given ID and text. Surrounding
// whitespace is trimmed from the text before validation.
// Returns an error if validation fails.
func NewTask(id int64, text string) (*Task, error) {
	task := &Task{
		ID:   id,
		Text: strings.TrimSpace(text),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrTaskIDInvalid
	}

	if t.Text == "" {
		return ErrTaskTextEmpty
	}

	if utf8.RuneCountInString(t.Text) > MaxTaskTextLength {
		return ErrTaskTextTooLong
	}

	return nil
}
