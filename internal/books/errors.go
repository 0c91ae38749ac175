package books

// errors.go defines the error codes used by the books API

import "fmt"

// Error represents a structured error from the books package.
type Error struct {
	// code classifies the failure
	code ErrorCode

	// message is a human-readable error message
	message string

	// details carries the per-field validation messages (validation errors only)
	details []string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *Error) Code() ErrorCode   { return e.code }
func (e *Error) Details() []string { return e.details }
func (e *Error) Unwrap() error     { return e.wrapped }

// ErrorCode classifies errors returned by the books API.
// The code determines the HTTP status of the response (see error_response.go).
type ErrorCode int

const (

	// ErrCodeValidation is used when the request body fails schema validation
	// (missing required fields, non-positive pages, unknown fields, etc.)
	ErrCodeValidation ErrorCode = iota + 1

	// ErrCodeMalformedRequest is used when the request body is not parseable JSON
	// or a field carries the wrong JSON type
	ErrCodeMalformedRequest

	// ErrCodeNotFound is used when no book matches the requested isbn
	ErrCodeNotFound

	// ErrCodeDuplicateISBN is used when a create collides with an existing isbn
	ErrCodeDuplicateISBN

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge

	// ErrCodeInternalError is used when an internal server error occurs
	// (database connectivity failures end up here)
	ErrCodeInternalError
)

// NewValidationError creates a validation error for invalid input.
// details holds the per-field messages shown to the client.
//
// The returned error will have code ErrCodeValidation.
func NewValidationError(msg string, details []string) error {
	return &Error{code: ErrCodeValidation, message: msg, details: details}
}

// NewMalformedRequestError creates an error for unparseable request bodies.
//
// The returned error will have code ErrCodeMalformedRequest.
func NewMalformedRequestError(msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewNotFoundError creates an error for a lookup that matched no book.
//
// The returned error will have code ErrCodeNotFound.
func NewNotFoundError(msg string) error {
	return &Error{code: ErrCodeNotFound, message: msg}
}

// NewDuplicateISBNError creates an error for a create that collides with an
// existing isbn.
//
// The returned error will have code ErrCodeDuplicateISBN.
func NewDuplicateISBNError(msg string) error {
	return &Error{code: ErrCodeDuplicateISBN, message: msg}
}

// NewInternalError creates an internal error for unexpected failures.
//
// The returned error will have code ErrCodeInternalError.
func NewInternalError(msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
// Use this for database failures and other errors that should not normally
// occur - the wrapped cause is logged server-side but never sent to the client.
//
// The returned error will have code ErrCodeInternalError.
func WrapInternalError(err error, msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
//
// The returned error will have code ErrCodeRateLimitExceeded.
func NewRateLimitError(msg string) error {
	return &Error{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
//
// The returned error will have code ErrCodeRequestTooLarge.
func NewRequestTooLargeError(msg string) error {
	return &Error{code: ErrCodeRequestTooLarge, message: msg}
}
