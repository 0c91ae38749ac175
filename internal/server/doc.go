// Package server provides the HTTP server for the bookstore service.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Routing and middleware are wired here; the book catalog handlers live in
// internal/books/handlers and the infrastructure handlers (health, readiness,
// version) in internal/server/handlers.
//
// middleware is in internal/server/middleware
package server
