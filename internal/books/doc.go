// Package books contains the book catalog domain: the Book model, request
// decoding and validation, and the error types returned by the books API.
//
// **types**
// The Book model and the create/update request structs are in book.go.
// Request structs use pointer fields so a missing field can be distinguished
// from a zero value during validation.
//
// **validation**
// Requests are decoded with DisallowUnknownFields and validated with
// go-playground/validator. Validation failures collect every per-field
// message so the client sees the full list in one response.
//
// **error handling**
// All errors surfaced by the books endpoints are *books.Error values mapped
// to the JSON error envelope in error_response.go.
// Use RespondWithErrorResponse() to create and send the error response.
//
// **testing**
// The handlers are tested two ways: unit tests against the in-memory store
// (internal/books/handlers) and end-2-end integration tests against a live
// Postgres database - see test/integration for details.
package books
