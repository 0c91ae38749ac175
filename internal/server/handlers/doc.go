// commonhandlers provides general infrastructure HTTP handlers
// (health, readiness, version)
//
// the book catalog handlers live in internal/books/handlers
package commonhandlers
