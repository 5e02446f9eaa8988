// Package main is the entry point for the dotconf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/dotconf/cmd/dotconf/commands"
	"github.com/thoreinstein/dotconf/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.Suggestion(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(errors.ExitCode(err))
	}
}
