package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"session-todo/internal/domain"
	"session-todo/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation errors on task input
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrTaskTextEmpty),
		errors.Is(err, domain.ErrTaskTextTooLong):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, domain.ErrTaskTextEmpty):
		return "Task text cannot be empty"

	case errors.Is(err, domain.ErrTaskTextTooLong):
		return fmt.Sprintf("Task text must be at most %d characters", domain.MaxTaskTextLength)

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid task ID"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid task data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts a validator error into a user-friendly
// message without exposing struct internals.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fieldErr := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fieldErr.Field(), getValidationTagMessage(fieldErr.Tag()))
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error
// messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
