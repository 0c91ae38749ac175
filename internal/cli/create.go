package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <book.json>",
	Short: "Create a new book",
	Long:  `Create a book from a JSON file containing all required fields (use - to read from stdin)`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBookFile(args[0])
		if err != nil {
			return err
		}
		return client.do(http.MethodPost, "/books", body)
	},
}
