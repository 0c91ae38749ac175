package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shelfstack/bookstore/internal/books"
)

// MemoryStore is an in-memory BookStore used by handler unit tests.
// It honours the same sentinel errors as PostgresStore.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[string]books.Book
}

// NewMemoryStore constructs a MemoryStore seeded with the provided books.
func NewMemoryStore(seed []books.Book) *MemoryStore {
	s := &MemoryStore{
		books: make(map[string]books.Book, len(seed)),
	}
	for _, book := range seed {
		s.books[book.ISBN] = book
	}
	return s
}

func (s *MemoryStore) Insert(_ context.Context, book books.Book) (books.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[book.ISBN]; exists {
		return books.Book{}, ErrDuplicateISBN
	}

	s.books[book.ISBN] = book
	return book, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]books.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]books.Book, 0, len(s.books))
	for _, book := range s.books {
		result = append(result, book)
	}

	// match the ORDER BY title of the Postgres implementation
	sort.Slice(result, func(i, j int) bool {
		return result[i].Title < result[j].Title
	})

	return result, nil
}

func (s *MemoryStore) FindByISBN(_ context.Context, isbn string) (books.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return books.Book{}, ErrNotFound
	}
	return book, nil
}

func (s *MemoryStore) Update(_ context.Context, isbn string, book books.Book) (books.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return books.Book{}, ErrNotFound
	}

	book.ISBN = isbn
	s.books[isbn] = book
	return book, nil
}

func (s *MemoryStore) Delete(_ context.Context, isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return ErrNotFound
	}

	delete(s.books, isbn)
	return nil
}
