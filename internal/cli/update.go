package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <isbn> <book.json>",
	Short: "Replace a book's fields",
	Long:  `Replace every field of an existing book except the isbn (use - to read from stdin)`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBookFile(args[1])
		if err != nil {
			return err
		}
		return client.do(http.MethodPut, "/books/"+args[0], body)
	},
}
