package books

// responses.go provides helper functions for sending HTTP responses from the books API handlers.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shelfstack/bookstore/internal/logger"
)

// BookResponse wraps a single book: {"book": {...}}
type BookResponse struct {
	Book Book `json:"book"`
}

// BooksResponse wraps the full listing: {"books": [...]}
// the array is present (possibly empty) even when the table has no rows
type BooksResponse struct {
	Books []Book `json:"books"`
}

// MessageResponse wraps a confirmation message: {"message": "Book deleted"}
type MessageResponse struct {
	Message string `json:"message" example:"Book deleted"`
}

// RespondWithErrorResponse sends the error envelope as a JSON payload.
//
// It logs the full error details server-side and sends a sanitized response
// to the client.
func RespondWithErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse := MapErrorToResponse(err, r)

	// Log the full error details server-side
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Warn("Request failed",
		slog.String("error", err.Error()),
		slog.Int("status_code", errorResponse.Error.Status),
	)

	RespondWithJSONPayload(w, errorResponse.Error.Status, errorResponse)
}

// RespondWithJSONPayload sends a JSON response with the given status code
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// If encoding fails, log it but don't try to send another response
			// (headers are already written)
			slog.Error("Failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}
