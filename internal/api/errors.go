package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ucsb-cs156/campus-records-api/internal/api/shared"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
)

// genericErrorMessage is sent for every failure that is not the client's fault.
const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. Token and role failures never reach handlers: they
// are resolved by Authenticate and RequireRole.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrNotFound):
		return "Record not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Record already exists"

	default:
		return genericErrorMessage
	}
}

// HandleAPIError writes the status and safe message for err. The full error
// is only logged, redacted, never sent. customMessage, when set, replaces
// the message of 5xx responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, customMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError && customMessage != "" {
		message = customMessage
	}

	if status == http.StatusBadRequest {
		shared.RespondWithErrorAndLog(w, r, status, message, err, shared.WithElevatedLogLevel())
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
