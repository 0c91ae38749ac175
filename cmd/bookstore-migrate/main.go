// bookstore-migrate runs the goose schema migrations in sql/schema.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/shelfstack/bookstore/internal/version"
)

var migrationsDir string

func main() {
	rootCmd := &cobra.Command{
		Use:               "bookstore-migrate",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Manage the bookstore database schema",
		Long:              `Apply, roll back and inspect the goose migrations for the books database`,
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "sql/schema", "directory containing the goose migrations")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrationDB(func(db *sql.DB) error {
					if err := goose.Up(db, migrationsDir); err != nil {
						return fmt.Errorf("failed to run migrations: %w", err)
					}
					fmt.Println("Migrations applied successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrationDB(func(db *sql.DB) error {
					if err := goose.Down(db, migrationsDir); err != nil {
						return fmt.Errorf("failed to rollback migration: %w", err)
					}
					fmt.Println("Migration rolled back successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrationDB(func(db *sql.DB) error {
					return goose.Status(db, migrationsDir)
				})
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a new SQL migration file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := goose.Create(nil, migrationsDir, args[0], "sql"); err != nil {
					return fmt.Errorf("failed to create migration: %w", err)
				}
				fmt.Printf("Migration created: %s\n", args[0])
				return nil
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withMigrationDB connects to DATABASE_URL and hands goose a database/sql
// handle backed by the pgx pool
func withMigrationDB(fn func(db *sql.DB) error) error {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return fn(db)
}
