// Command provision creates or updates hotels, menus and tables from the
// command line. Every subcommand is an idempotent upsert.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
