// Package main is the entry point for the pintas CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pintas-sh/pintas/cmd/pintas/commands"
	"github.com/pintas-sh/pintas/internal/errors"
)

// main is the sole boundary where errors become process exit codes.
// Silent ExitErrors (the internal run path) produce no output at all:
// shims and shell hooks consume the code programmatically.
func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Silent {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errors.ExitUser)
}
