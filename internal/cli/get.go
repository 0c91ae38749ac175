package cli

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <isbn>",
	Short: "Get a book by isbn",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appLogger.Debug("Get command", slog.String("isbn", args[0]))
		return client.do(http.MethodGet, "/books/"+args[0], nil)
	},
}
