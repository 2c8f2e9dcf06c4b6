// Package main is the entry point for the kiplot CLI.
package main

import (
	"os"

	"github.com/thoreinstein/kiplot/cmd/kiplot/commands"
	"github.com/thoreinstein/kiplot/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
