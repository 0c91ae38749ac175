package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shelfstack/bookstore/internal/books"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

const (
	insertBookSQL = `INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING isbn`

	listBooksSQL = `SELECT isbn, amazon_url, author, language, pages, publisher, title, year
FROM books
ORDER BY title`

	findBookSQL = `SELECT isbn, amazon_url, author, language, pages, publisher, title, year
FROM books
WHERE isbn = $1`

	updateBookSQL = `UPDATE books
SET amazon_url = $2, author = $3, language = $4, pages = $5, publisher = $6, title = $7, year = $8
WHERE isbn = $1
RETURNING isbn, amazon_url, author, language, pages, publisher, title, year`

	deleteBookSQL = `DELETE FROM books
WHERE isbn = $1
RETURNING isbn`
)

// PostgresStore implements BookStore on a pgx connection pool.
// Every operation is a single statement; there are no multi-row transactions.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Insert(ctx context.Context, book books.Book) (books.Book, error) {
	err := s.pool.QueryRow(ctx, insertBookSQL,
		book.ISBN,
		book.AmazonURL,
		book.Author,
		book.Language,
		book.Pages,
		book.Publisher,
		book.Title,
		book.Year,
	).Scan(&book.ISBN)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return books.Book{}, ErrDuplicateISBN
		}
		return books.Book{}, fmt.Errorf("failed to insert book: %w", err)
	}

	return book, nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]books.Book, error) {
	rows, err := s.pool.Query(ctx, listBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	result := make([]books.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		result = append(result, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book rows: %w", err)
	}

	return result, nil
}

func (s *PostgresStore) FindByISBN(ctx context.Context, isbn string) (books.Book, error) {
	book, err := scanBook(s.pool.QueryRow(ctx, findBookSQL, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return books.Book{}, ErrNotFound
		}
		return books.Book{}, fmt.Errorf("failed to find book: %w", err)
	}

	return book, nil
}

func (s *PostgresStore) Update(ctx context.Context, isbn string, book books.Book) (books.Book, error) {
	updated, err := scanBook(s.pool.QueryRow(ctx, updateBookSQL,
		isbn,
		book.AmazonURL,
		book.Author,
		book.Language,
		book.Pages,
		book.Publisher,
		book.Title,
		book.Year,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return books.Book{}, ErrNotFound
		}
		return books.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, isbn string) error {
	var deletedISBN string
	err := s.pool.QueryRow(ctx, deleteBookSQL, isbn).Scan(&deletedISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}

	return nil
}

// scanBook reads one book row in the column order used by all queries above
func scanBook(row pgx.Row) (books.Book, error) {
	var book books.Book
	err := row.Scan(
		&book.ISBN,
		&book.AmazonURL,
		&book.Author,
		&book.Language,
		&book.Pages,
		&book.Publisher,
		&book.Title,
		&book.Year,
	)
	return book, err
}
