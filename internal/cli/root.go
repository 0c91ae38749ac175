// Package cli implements the bookstore-client commands.
//
// The client talks to a running bookstore-server over HTTP. The server URL
// comes from BOOKSTORE_URL (default http://localhost:8080).
package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shelfstack/bookstore/internal/config"
	"github.com/shelfstack/bookstore/internal/logger"
	"github.com/shelfstack/bookstore/internal/version"
)

var (
	cfg       *config.ClientEnvironment
	appLogger *slog.Logger
	client    *apiClient
)

var rootCmd = &cobra.Command{
	Use:               "bookstore-client",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Book catalog API client",
	Long:              `bookstore-client exercises the bookstore-server book catalog endpoints`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.NewClientConfig()
		if err != nil {
			log.Printf("failed to load configuration: %v", err.Error())
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), "dev")
		client = newAPIClient(cfg.ServerURL, cfg.RequestTimeout)
		return nil
	},
}

func Execute() {
	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}
