package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfstack/bookstore/internal/books"
)

func sampleBook(isbn, title string) books.Book {
	return books.Book{
		ISBN:      isbn,
		AmazonURL: "http://a.co/" + isbn,
		Author:    "An Author",
		Language:  "english",
		Pages:     100,
		Publisher: "A Publisher",
		Title:     title,
		Year:      2020,
	}
}

func TestMemoryStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	book := sampleBook("1", "First")
	inserted, err := s.Insert(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, book, inserted)

	found, err := s.FindByISBN(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, book, found)
}

func TestMemoryStore_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore([]books.Book{sampleBook("1", "First")})

	_, err := s.Insert(ctx, sampleBook("1", "Impostor"))
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	// the original row is untouched
	found, err := s.FindByISBN(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "First", found.Title)
}

func TestMemoryStore_FindMissing(t *testing.T) {
	s := NewMemoryStore(nil)

	_, err := s.FindByISBN(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListAllOrdersByTitle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore([]books.Book{
		sampleBook("1", "Zebras"),
		sampleBook("2", "Aardvarks"),
		sampleBook("3", "Mongooses"),
	})

	listing, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 3)
	assert.Equal(t, "Aardvarks", listing[0].Title)
	assert.Equal(t, "Mongooses", listing[1].Title)
	assert.Equal(t, "Zebras", listing[2].Title)
}

func TestMemoryStore_ListAllEmpty(t *testing.T) {
	s := NewMemoryStore(nil)

	listing, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listing)
	assert.Empty(t, listing)
}

func TestMemoryStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore([]books.Book{sampleBook("1", "First")})

	replacement := sampleBook("1", "First, Revised")
	updated, err := s.Update(ctx, "1", replacement)
	require.NoError(t, err)
	assert.Equal(t, "First, Revised", updated.Title)

	// update never changes the key, even if the replacement carries another isbn
	rogue := sampleBook("other", "Rogue")
	updated, err = s.Update(ctx, "1", rogue)
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ISBN)

	_, err = s.Update(ctx, "999", replacement)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore([]books.Book{sampleBook("1", "First")})

	require.NoError(t, s.Delete(ctx, "1"))

	// second delete reports not found
	assert.ErrorIs(t, s.Delete(ctx, "1"), ErrNotFound)

	_, err := s.FindByISBN(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)
}
