// Package bookhandlers implements the five book catalog endpoints.
//
// Each handler decodes and validates the request, delegates to the BookStore
// and maps store sentinel errors to the books error envelope. Handlers never
// issue queries directly.
package bookhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shelfstack/bookstore/internal/books"
	"github.com/shelfstack/bookstore/internal/logger"
	"github.com/shelfstack/bookstore/internal/store"
)

// HandleCreateBook godoc
//
//	@Summary	Create a new book
//	@Tags		Books
//	@Accept		json
//	@Produce	json
//	@Param		book	body		books.CreateBookRequest	true	"Book details (all fields required)"
//	@Success	201		{object}	books.BookResponse
//	@Failure	400		{object}	books.ErrorResponse	"Validation failed or malformed body"
//	@Failure	409		{object}	books.ErrorResponse	"A book with this isbn already exists"
//	@Router		/books [post]
func HandleCreateBook(bookStore store.BookStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req books.CreateBookRequest
		if err := books.DecodeRequest(r, &req); err != nil {
			books.RespondWithErrorResponse(w, r, err)
			return
		}

		if err := books.ValidateRequest(&req); err != nil {
			books.RespondWithErrorResponse(w, r, err)
			return
		}

		created, err := bookStore.Insert(r.Context(), req.Book())
		if err != nil {
			if errors.Is(err, store.ErrDuplicateISBN) {
				books.RespondWithErrorResponse(w, r,
					books.NewDuplicateISBNError(fmt.Sprintf("book with isbn %s already exists", *req.ISBN)))
				return
			}
			books.RespondWithErrorResponse(w, r, books.WrapInternalError(err, "failed to create book"))
			return
		}

		logger.ContextWithLogAttrs(r.Context(), slog.String("isbn", created.ISBN))

		books.RespondWithJSONPayload(w, http.StatusCreated, books.BookResponse{Book: created})
	}
}

// HandleListBooks godoc
//
//	@Summary	List all books
//	@Tags		Books
//	@Produce	json
//	@Success	200	{object}	books.BooksResponse
//	@Router		/books [get]
func HandleListBooks(bookStore store.BookStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allBooks, err := bookStore.ListAll(r.Context())
		if err != nil {
			books.RespondWithErrorResponse(w, r, books.WrapInternalError(err, "failed to list books"))
			return
		}

		books.RespondWithJSONPayload(w, http.StatusOK, books.BooksResponse{Books: allBooks})
	}
}

// HandleGetBook godoc
//
//	@Summary	Get a book by isbn
//	@Tags		Books
//	@Produce	json
//	@Param		isbn	path		string	true	"Book isbn"
//	@Success	200		{object}	books.BookResponse
//	@Failure	404		{object}	books.ErrorResponse	"No book with this isbn"
//	@Router		/books/{isbn} [get]
func HandleGetBook(bookStore store.BookStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")

		book, err := bookStore.FindByISBN(r.Context(), isbn)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				books.RespondWithErrorResponse(w, r,
					books.NewNotFoundError(fmt.Sprintf("book with isbn %s not found", isbn)))
				return
			}
			books.RespondWithErrorResponse(w, r, books.WrapInternalError(err, "failed to get book"))
			return
		}

		books.RespondWithJSONPayload(w, http.StatusOK, books.BookResponse{Book: book})
	}
}

// HandleUpdateBook godoc
//
//	@Summary		Update a book
//	@Description	Replaces every field of the book except the isbn, which is immutable.
//	@Description	A body isbn is rejected unless it matches the path isbn.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			isbn	path		string					true	"Book isbn"
//	@Param			book	body		books.UpdateBookRequest	true	"Replacement field values"
//	@Success		200		{object}	books.BookResponse
//	@Failure		400		{object}	books.ErrorResponse	"Validation failed or malformed body"
//	@Failure		404		{object}	books.ErrorResponse	"No book with this isbn"
//	@Router			/books/{isbn} [put]
func HandleUpdateBook(bookStore store.BookStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")

		var req books.UpdateBookRequest
		if err := books.DecodeRequest(r, &req); err != nil {
			books.RespondWithErrorResponse(w, r, err)
			return
		}

		// the isbn is the book's identity - a body isbn may restate it but
		// never change it
		if req.ISBN != nil && *req.ISBN != isbn {
			books.RespondWithErrorResponse(w, r,
				books.NewValidationError("validation failed: 1 invalid field(s)",
					[]string{"isbn cannot be changed"}))
			return
		}

		if err := books.ValidateRequest(&req); err != nil {
			books.RespondWithErrorResponse(w, r, err)
			return
		}

		updated, err := bookStore.Update(r.Context(), isbn, req.Book(isbn))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				books.RespondWithErrorResponse(w, r,
					books.NewNotFoundError(fmt.Sprintf("book with isbn %s not found", isbn)))
				return
			}
			books.RespondWithErrorResponse(w, r, books.WrapInternalError(err, "failed to update book"))
			return
		}

		books.RespondWithJSONPayload(w, http.StatusOK, books.BookResponse{Book: updated})
	}
}

// HandleDeleteBook godoc
//
//	@Summary	Delete a book
//	@Tags		Books
//	@Produce	json
//	@Param		isbn	path		string	true	"Book isbn"
//	@Success	200		{object}	books.MessageResponse
//	@Failure	404		{object}	books.ErrorResponse	"No book with this isbn"
//	@Router		/books/{isbn} [delete]
func HandleDeleteBook(bookStore store.BookStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")

		if err := bookStore.Delete(r.Context(), isbn); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				books.RespondWithErrorResponse(w, r,
					books.NewNotFoundError(fmt.Sprintf("book with isbn %s not found", isbn)))
				return
			}
			books.RespondWithErrorResponse(w, r, books.WrapInternalError(err, "failed to delete book"))
			return
		}

		books.RespondWithJSONPayload(w, http.StatusOK, books.MessageResponse{Message: "Book deleted"})
	}
}
