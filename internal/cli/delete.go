package cli

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <isbn>",
	Short: "Delete a book by isbn",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appLogger.Debug("Delete command", slog.String("isbn", args[0]))
		return client.do(http.MethodDelete, "/books/"+args[0], nil)
	},
}
