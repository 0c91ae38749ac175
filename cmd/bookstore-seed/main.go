// bookstore-seed inserts a small sample catalog through the book store.
// Rows that already exist are skipped, so the command is safe to re-run.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shelfstack/bookstore/internal/books"
	"github.com/shelfstack/bookstore/internal/logger"
	"github.com/shelfstack/bookstore/internal/store"
	"github.com/shelfstack/bookstore/internal/version"
)

var sampleBooks = []books.Book{
	{
		ISBN:      "0691161518",
		AmazonURL: "http://a.co/eobPtX2",
		Author:    "Matthew Lane",
		Language:  "english",
		Pages:     264,
		Publisher: "Princeton University Press",
		Title:     "Power-Up: Unlocking the Hidden Mathematics in Video Games",
		Year:      2017,
	},
	{
		ISBN:      "0131103628",
		AmazonURL: "http://a.co/cprogramming",
		Author:    "Brian W. Kernighan",
		Language:  "english",
		Pages:     272,
		Publisher: "Prentice Hall",
		Title:     "The C Programming Language",
		Year:      1988,
	},
	{
		ISBN:      "0134190440",
		AmazonURL: "http://a.co/gopl",
		Author:    "Alan A. A. Donovan",
		Language:  "english",
		Pages:     380,
		Publisher: "Addison-Wesley",
		Title:     "The Go Programming Language",
		Year:      2015,
	},
	{
		ISBN:      "1593279507",
		AmazonURL: "http://a.co/eloquentjs",
		Author:    "Marijn Haverbeke",
		Language:  "english",
		Pages:     472,
		Publisher: "No Starch Press",
		Title:     "Eloquent JavaScript",
		Year:      2018,
	},
	{
		ISBN:      "0201633612",
		AmazonURL: "http://a.co/designpatterns",
		Author:    "Erich Gamma",
		Language:  "english",
		Pages:     416,
		Publisher: "Addison-Wesley",
		Title:     "Design Patterns: Elements of Reusable Object-Oriented Software",
		Year:      1994,
	},
	{
		ISBN:      "0735619670",
		AmazonURL: "http://a.co/codecomplete",
		Author:    "Steve McConnell",
		Language:  "english",
		Pages:     960,
		Publisher: "Microsoft Press",
		Title:     "Code Complete",
		Year:      2004,
	},
}

func main() {
	cmd := &cobra.Command{
		Use:   "bookstore-seed",
		Short: "Seed the books table with sample data",
		Long:  `Insert a small sample catalog into the books table via the book store`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(os.Getenv("LOG_LEVEL")), "dev")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	bookStore := store.NewPostgresStore(pool)

	inserted := 0
	for _, book := range sampleBooks {
		if _, err := bookStore.Insert(ctx, book); err != nil {
			if errors.Is(err, store.ErrDuplicateISBN) {
				appLogger.Warn("book already exists, skipping",
					slog.String("isbn", book.ISBN),
					slog.String("title", book.Title),
				)
				continue
			}
			return fmt.Errorf("failed to insert book %s: %w", book.ISBN, err)
		}

		appLogger.Info("inserted book",
			slog.String("isbn", book.ISBN),
			slog.String("title", book.Title),
		)
		inserted++
	}

	appLogger.Info("seed complete",
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(sampleBooks)-inserted),
	)
	return nil
}
