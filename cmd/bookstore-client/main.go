// bookstore-client is a developer CLI for exercising the bookstore API.
package main

import "github.com/shelfstack/bookstore/internal/cli"

func main() {
	cli.Execute()
}
