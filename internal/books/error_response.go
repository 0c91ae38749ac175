package books

// error_response.go maps books package errors to the JSON error envelope
// returned to the client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shelfstack/bookstore/internal/logger"
)

// ErrorResponse is the error envelope returned by every failing request:
//
//	{"error": {"message": "...", "status": 404}}
//
// Validation failures additionally carry the per-field messages in
// error.details.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the payload inside the error envelope
type ErrorBody struct {
	// A human-readable description of the failure
	Message string `json:"message" example:"book with isbn 999 not found"`

	// The HTTP status code returned
	Status int `json:"status" example:"404"`

	// Per-field validation messages (validation failures only)
	Details []string `json:"details,omitempty"`
}

// MapErrorToResponse maps a books.Error (or generic error) to the error
// envelope and the HTTP status it should be sent with.
//
// Internal errors are sanitized for the response; the full error message is
// logged server-side by RespondWithErrorResponse.
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	var bookErr *Error
	if errors.As(err, &bookErr) {
		return errorResponseFromBooks(bookErr)
	}

	// fallback - an unmapped error type is a bug; return an internal error
	// response and log the unmapped error
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
	)
	return &ErrorResponse{
		Error: ErrorBody{
			Message: "An internal error occurred",
			Status:  http.StatusInternalServerError,
		},
	}
}

// errorResponseFromBooks maps a *books.Error to the error envelope.
// internal error causes are sanitized for the response but remain available
// to the server-side log via Error().
func errorResponseFromBooks(err *Error) *ErrorResponse {
	var status int
	var message string

	switch err.Code() {
	case ErrCodeValidation:
		status = http.StatusBadRequest
		message = err.message
	case ErrCodeMalformedRequest:
		status = http.StatusBadRequest
		message = err.message
	case ErrCodeNotFound:
		status = http.StatusNotFound
		message = err.message
	case ErrCodeDuplicateISBN:
		status = http.StatusConflict
		message = err.message
	case ErrCodeRateLimitExceeded:
		status = http.StatusTooManyRequests
		message = err.message
	case ErrCodeRequestTooLarge:
		status = http.StatusRequestEntityTooLarge
		message = err.message
	default:
		// internal errors: never leak the underlying cause to the client
		status = http.StatusInternalServerError
		message = "An internal error occurred"
	}

	return &ErrorResponse{
		Error: ErrorBody{
			Message: message,
			Status:  status,
			Details: err.Details(),
		},
	}
}
