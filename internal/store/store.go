// Package store provides durable CRUD on book rows.
//
// The BookStore interface keeps the HTTP layer away from raw queries: the
// server runs on PostgresStore, handler unit tests run on MemoryStore. Both
// return the same sentinel errors so callers never branch on the backend.
package store

import (
	"context"
	"errors"

	"github.com/shelfstack/bookstore/internal/books"
)

// ErrNotFound is returned by reads, updates and deletes that match no row.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned by Insert when the isbn already exists.
var ErrDuplicateISBN = errors.New("book with this isbn already exists")

// BookStore is the persistence interface for book records.
type BookStore interface {
	// Insert stores a new book. Returns ErrDuplicateISBN if the isbn is taken.
	Insert(ctx context.Context, book books.Book) (books.Book, error)

	// ListAll returns every book ordered by title.
	ListAll(ctx context.Context) ([]books.Book, error)

	// FindByISBN returns the book with the given isbn, or ErrNotFound.
	FindByISBN(ctx context.Context, isbn string) (books.Book, error)

	// Update replaces every field except the isbn. Returns ErrNotFound if
	// no book has the given isbn.
	Update(ctx context.Context, isbn string, book books.Book) (books.Book, error)

	// Delete removes the book with the given isbn, or returns ErrNotFound.
	Delete(ctx context.Context, isbn string) error
}
