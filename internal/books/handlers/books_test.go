package bookhandlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfstack/bookstore/internal/books"
	bookhandlers "github.com/shelfstack/bookstore/internal/books/handlers"
	"github.com/shelfstack/bookstore/internal/store"
)

// newTestRouter mounts the book routes on a chi router backed by an
// in-memory store, mirroring the server's route layout
func newTestRouter(seed []books.Book) (*chi.Mux, *store.MemoryStore) {
	memStore := store.NewMemoryStore(seed)

	router := chi.NewRouter()
	router.Route("/books", func(r chi.Router) {
		r.Post("/", bookhandlers.HandleCreateBook(memStore))
		r.Get("/", bookhandlers.HandleListBooks(memStore))
		r.Get("/{isbn}", bookhandlers.HandleGetBook(memStore))
		r.Put("/{isbn}", bookhandlers.HandleUpdateBook(memStore))
		r.Delete("/{isbn}", bookhandlers.HandleDeleteBook(memStore))
	})

	return router, memStore
}

func testBook() books.Book {
	return books.Book{
		ISBN:      "0691161518",
		AmazonURL: "http://a.co/eobPtX2",
		Author:    "Matthew Lane",
		Language:  "english",
		Pages:     264,
		Publisher: "Princeton University Press",
		Title:     "Power-Up",
		Year:      2017,
	}
}

func serveJSON(t *testing.T, router *chi.Mux, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandleCreateBook(t *testing.T) {
	t.Run("valid payload returns 201 with the book", func(t *testing.T) {
		router, memStore := newTestRouter(nil)

		rr := serveJSON(t, router, http.MethodPost, "/books", testBook())
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp books.BookResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, testBook(), resp.Book)

		stored, err := memStore.FindByISBN(context.Background(), testBook().ISBN)
		require.NoError(t, err)
		assert.Equal(t, testBook(), stored)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		router, _ := newTestRouter(nil)

		payload := map[string]any{
			"isbn":       "1",
			"amazon_url": "http://a.co/x",
			"author":     "A",
			"language":   "english",
			"pages":      10,
			"publisher":  "P",
			"year":       2000,
		}

		rr := serveJSON(t, router, http.MethodPost, "/books", payload)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp books.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusBadRequest, resp.Error.Status)
		assert.Contains(t, resp.Error.Details, "title is required")
	})

	t.Run("duplicate isbn returns 409", func(t *testing.T) {
		router, _ := newTestRouter([]books.Book{testBook()})

		rr := serveJSON(t, router, http.MethodPost, "/books", testBook())
		require.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleListBooks(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		router, _ := newTestRouter(nil)

		rr := serveJSON(t, router, http.MethodGet, "/books", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		assert.JSONEq(t, `{"books": []}`, rr.Body.String())
	})

	t.Run("books are ordered by title", func(t *testing.T) {
		zebra := testBook()
		zebra.ISBN = "2"
		zebra.Title = "Zebras"

		aardvark := testBook()
		aardvark.ISBN = "1"
		aardvark.Title = "Aardvarks"

		router, _ := newTestRouter([]books.Book{zebra, aardvark})

		rr := serveJSON(t, router, http.MethodGet, "/books", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp books.BooksResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Books, 2)
		assert.Equal(t, "Aardvarks", resp.Books[0].Title)
		assert.Equal(t, "Zebras", resp.Books[1].Title)
	})
}

func TestHandleGetBook(t *testing.T) {
	router, _ := newTestRouter([]books.Book{testBook()})

	t.Run("existing isbn", func(t *testing.T) {
		rr := serveJSON(t, router, http.MethodGet, "/books/0691161518", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp books.BookResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, testBook(), resp.Book)
	})

	t.Run("nonexistent isbn", func(t *testing.T) {
		rr := serveJSON(t, router, http.MethodGet, "/books/999", nil)
		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp books.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, resp.Error.Status)
		assert.Contains(t, resp.Error.Message, "999")
	})
}

func TestHandleUpdateBook(t *testing.T) {
	updatePayload := func() map[string]any {
		return map[string]any{
			"amazon_url": "http://a.co/eobPtX2",
			"author":     "Matthew Lane",
			"language":   "english",
			"pages":      264,
			"publisher":  "Princeton University Press",
			"title":      "Power-Up, Revised Edition",
			"year":       2019,
		}
	}

	t.Run("full replace", func(t *testing.T) {
		router, _ := newTestRouter([]books.Book{testBook()})

		rr := serveJSON(t, router, http.MethodPut, "/books/0691161518", updatePayload())
		require.Equal(t, http.StatusOK, rr.Code)

		var resp books.BookResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Power-Up, Revised Edition", resp.Book.Title)
		assert.Equal(t, 2019, resp.Book.Year)
		assert.Equal(t, "0691161518", resp.Book.ISBN)
	})

	t.Run("unknown field rejected and store untouched", func(t *testing.T) {
		router, memStore := newTestRouter([]books.Book{testBook()})

		payload := updatePayload()
		payload["badField"] = "nope"

		rr := serveJSON(t, router, http.MethodPut, "/books/0691161518", payload)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		stored, err := memStore.FindByISBN(context.Background(), "0691161518")
		require.NoError(t, err)
		assert.Equal(t, testBook(), stored)
	})

	t.Run("body isbn differing from path rejected", func(t *testing.T) {
		router, _ := newTestRouter([]books.Book{testBook()})

		payload := updatePayload()
		payload["isbn"] = "something-else"

		rr := serveJSON(t, router, http.MethodPut, "/books/0691161518", payload)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp books.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error.Details, "isbn cannot be changed")
	})

	t.Run("body isbn matching path accepted", func(t *testing.T) {
		router, _ := newTestRouter([]books.Book{testBook()})

		payload := updatePayload()
		payload["isbn"] = "0691161518"

		rr := serveJSON(t, router, http.MethodPut, "/books/0691161518", payload)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("nonexistent isbn", func(t *testing.T) {
		router, _ := newTestRouter(nil)

		rr := serveJSON(t, router, http.MethodPut, "/books/999", updatePayload())
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleDeleteBook(t *testing.T) {
	router, _ := newTestRouter([]books.Book{testBook()})

	rr := serveJSON(t, router, http.MethodDelete, "/books/0691161518", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "Book deleted"}`, rr.Body.String())

	// deleting the same book again is a 404
	rr = serveJSON(t, router, http.MethodDelete, "/books/0691161518", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
